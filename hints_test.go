package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridWithOnly builds a grid that allows exactly the given identities.
func gridWithOnly(cards ...Card) HintGrid {
	var g HintGrid
	for _, card := range cards {
		g[cardIndex(card.Colour, card.Value)] = true
	}
	return g
}

func trueCount(g HintGrid) int {
	n := 0
	for _, b := range g {
		if b {
			n++
		}
	}
	return n
}

func TestInitialHintsAllOpen(t *testing.T) {
	assert.Equal(t, 25, trueCount(initialHints()))
}

func TestApplyColourHintIncluded(t *testing.T) {
	// An included slot keeps exactly the matching colour, all values.
	grid := applyHint(true, initialHints(), HintColour, ColourRed, 0)
	for i := 0; i < 25; i++ {
		card := cardAt(i)
		assert.Equal(t, card.Colour == ColourRed, grid[i], "identity %s", card)
	}
}

func TestApplyColourHintExcluded(t *testing.T) {
	// A slot left out of a red hint loses only the red identities; value
	// knowledge is untouched by a colour hint.
	grid := applyHint(false, initialHints(), HintColour, ColourRed, 0)
	for i := 0; i < 25; i++ {
		card := cardAt(i)
		assert.Equal(t, card.Colour != ColourRed, grid[i], "identity %s", card)
	}
}

func TestApplyValueHint(t *testing.T) {
	included := applyHint(true, initialHints(), HintValue, 0, 3)
	excluded := applyHint(false, initialHints(), HintValue, 0, 3)
	for i := 0; i < 25; i++ {
		card := cardAt(i)
		assert.Equal(t, card.Value == 3, included[i], "included, identity %s", card)
		assert.Equal(t, card.Value != 3, excluded[i], "excluded, identity %s", card)
	}
}

func TestApplyHintMonotonic(t *testing.T) {
	// Flags only ever flip true to false: entries already excluded stay
	// excluded no matter what hints follow.
	grid := applyHint(false, initialHints(), HintColour, ColourBlue, 0)
	narrowed := applyHint(true, grid, HintValue, 0, 2)
	for i := 0; i < 25; i++ {
		if !grid[i] {
			assert.False(t, narrowed[i], "identity %s came back", cardAt(i))
		}
	}
	assert.Less(t, trueCount(narrowed), trueCount(grid))
}

func TestApplyHintCrossNarrowing(t *testing.T) {
	// "blue" then "2" pins the slot to exactly blue 2.
	grid := applyHint(true, initialHints(), HintColour, ColourBlue, 0)
	grid = applyHint(true, grid, HintValue, 0, 2)
	assert.Equal(t, gridWithOnly(Card{ColourBlue, 2}), grid)
}

func TestPossibleCardsFromHints(t *testing.T) {
	var counts CardCounts
	possible := possibleCardsFromHints(initialHints(), counts)
	require.Len(t, possible, 25)

	// Accounting for every copy of an identity removes it even while the
	// grid still allows it: deduction by card counting.
	counts[cardIndex(ColourRed, 5)] = cardCopies(5)
	possible = possibleCardsFromHints(initialHints(), counts)
	require.Len(t, possible, 24)
	assert.NotContains(t, possible, Card{ColourRed, 5})

	// A grid exclusion removes the identity regardless of the census.
	grid := applyHint(false, initialHints(), HintColour, ColourGreen, 0)
	possible = possibleCardsFromHints(grid, CardCounts{})
	require.Len(t, possible, 20)
	for _, card := range possible {
		assert.NotEqual(t, ColourGreen, card.Colour)
	}
}
