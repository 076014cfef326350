package main

// HintGrid is the belief state for one hand slot: one flag per identity,
// true while that identity is still possible for the slot's occupant.
// Flags only ever flip true to false until the slot's card is replaced,
// at which point the grid is reopened with initialHints.
type HintGrid [25]bool

// CardCounts is a per-identity census of copies accounted for from some
// perspective: discarded, used up on the table, or sitting in a hand the
// perspective can see.
type CardCounts [25]int

func initialHints() HintGrid {
	var g HintGrid
	for i := range g {
		g[i] = true
	}
	return g
}

// applyHint returns the grid narrowed by one hint. included says whether
// this slot was named in the hinted set. An identity survives only if the
// truthfulness of "this identity belongs to the hinted group" agrees with
// what the slot's owner was told, so a hint that names two red slots also
// strips red from every slot it did not name.
func applyHint(included bool, grid HintGrid, hintType HintType, hintColour Colour, hintValue int) HintGrid {
	var out HintGrid
	for i := range grid {
		card := cardAt(i)
		var matches bool
		if hintType == HintColour {
			matches = card.Colour == hintColour
		} else {
			matches = card.Value == hintValue
		}
		out[i] = grid[i] && matches == included
	}
	return out
}

// possibleCardsFromHints yields every identity still allowed by the grid
// that has at least one copy unaccounted for in the census, in stable
// index order. The census filter is what lets a player pin down a card by
// elimination alone, without an informative hint.
func possibleCardsFromHints(grid HintGrid, counts CardCounts) []Card {
	var cards []Card
	for i := range grid {
		card := cardAt(i)
		if grid[i] && cardCopies(card.Value)-counts[i] > 0 {
			cards = append(cards, card)
		}
	}
	return cards
}
