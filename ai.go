package main

import "math/rand"

// hintSpec identifies one candidate hint: a colour or a value aimed at a
// single player.
type hintSpec struct {
	Type   HintType
	Colour Colour
	Value  int
}

func (s hintSpec) action(target int) Action {
	a := Action{Name: ActionHint, TargetPlayer: target, HintType: s.Type}
	if s.Type == HintColour {
		a.HintColour = s.Colour
	} else {
		a.HintValue = s.Value
	}
	return a
}

// SelectAction picks one action for player using only what that player is
// allowed to know about their own hand: the hint grids plus the public
// census excluding their own cards. Ground truth is consulted only for
// other players' hands, which are visible.
//
// Priority: certain play, certain discard, forced random move when no
// hint tokens remain, then a hint that helps another player resolve an
// actionable card. Ties everywhere break on the lowest slot index and on
// canonical colour order followed by ascending values. Returns false when
// no hint is worth giving to anyone.
func SelectAction(g *GameState, player int, actions []Action) (Action, bool) {
	usable := g.UsableCards(player)
	grids := g.HintGrids[player]
	counts := g.CardCounts(player)

	if ids := g.PlayableFromHints(usable, grids, counts); len(ids) > 0 {
		log.Debugf("[player %d] card %d is certainly playable", player, ids[0])
		return findCardAction(actions, ActionPlay, ids), true
	}

	if ids := g.DiscardableFromHints(usable, grids, counts); len(ids) > 0 {
		log.Debugf("[player %d] card %d is certainly safe to discard", player, ids[0])
		return findCardAction(actions, ActionDiscard, ids), true
	}

	if g.HintsRemaining == 0 {
		// Forced move: nothing is certain and no tokens are left.
		log.Debugf("[player %d] no hints left, moving at random", player)
		return actions[rand.Intn(len(actions))], true
	}

	for step := 1; step < g.NumPlayers; step++ {
		other := (player + step) % g.NumPlayers
		if action, ok := g.hintForPlayer(player, other, actions); ok {
			return action, true
		}
	}
	return Action{}, false
}

// findCardAction returns the first play/discard action whose slot is in
// ids; action order makes this the lowest qualifying slot index.
func findCardAction(actions []Action, name ActionName, ids []int) Action {
	for _, action := range actions {
		if action.Name == name && containsInt(ids, action.CardID) {
			return action
		}
	}
	return Action{}
}

// findHintAction locates the generator's maximal truthful hint matching
// the chosen (target, type, value); step 3 of SelectAction guarantees the
// generator offered hints, so a match always exists.
func findHintAction(actions []Action, target int, spec hintSpec) Action {
	for _, action := range actions {
		if action.Name != ActionHint || action.TargetPlayer != target || action.HintType != spec.Type {
			continue
		}
		if spec.Type == HintColour && action.HintColour == spec.Colour {
			return action
		}
		if spec.Type == HintValue && action.HintValue == spec.Value {
			return action
		}
	}
	return Action{}
}

// hintForPlayer looks for a hint worth giving to other: one that helps
// resolve a slot the other player could act on but cannot yet identify
// from their own grids. Tokens are only spent on a player while every one
// of their actionable slots still carries excess possibilities; if any is
// already pinned down they can act unaided and the next player is tried.
func (g *GameState) hintForPlayer(player, other int, actions []Action) (Action, bool) {
	canPlay := g.PlayableCards(other)
	canDiscard := g.DiscardableCards(other)

	playNeeded := make(map[hintSpec]map[int]bool)
	discardNeeded := make(map[hintSpec]map[int]bool)
	needsHint := make(map[int]bool)

	// A slot needs a hint while its grid still allows an identity on an
	// off-colour or off-value; the card's own colour and value are the
	// hint candidates that would strip those.
	collect := func(ids []int, needed map[hintSpec]map[int]bool) {
		for _, id := range ids {
			card := *g.Hands[other][id]
			grid := g.HintGrids[other][id]
			for i := range grid {
				if !grid[i] {
					continue
				}
				possible := cardAt(i)
				if possible.Colour != card.Colour {
					addNeeded(needed, hintSpec{Type: HintColour, Colour: card.Colour}, id)
					needsHint[id] = true
				}
				if possible.Value != card.Value {
					addNeeded(needed, hintSpec{Type: HintValue, Value: card.Value}, id)
					needsHint[id] = true
				}
			}
		}
	}
	collect(canPlay, playNeeded)
	collect(canDiscard, discardNeeded)

	for _, id := range canPlay {
		if !needsHint[id] {
			return Action{}, false
		}
	}
	for _, id := range canDiscard {
		if !needsHint[id] {
			return Action{}, false
		}
	}

	otherUsable := g.UsableCards(other)
	// The recipient's census, as the acting player can compute it: both
	// hands excluded, public information only.
	otherCounts := g.CardCounts(player, other)

	// simulate applies the candidate as the real action would: inclusion
	// is the truthful match against each slot's actual card.
	simulate := func(spec hintSpec) []HintGrid {
		updated := make([]HintGrid, handSize)
		for id := 0; id < handSize; id++ {
			included := false
			if card := g.Hands[other][id]; card != nil {
				if spec.Type == HintColour {
					included = card.Colour == spec.Colour
				} else {
					included = card.Value == spec.Value
				}
			}
			updated[id] = applyHint(included, g.HintGrids[other][id], spec.Type, spec.Colour, spec.Value)
		}
		return updated
	}

	// pick prefers the first candidate whose simulated application makes
	// some slot certain ("good hint"), then falls back to the candidate
	// covering the most needed slots.
	pick := func(needed map[hintSpec]map[int]bool, certain func([]int, []HintGrid, CardCounts) []int) (hintSpec, bool) {
		specs := orderedSpecs(needed)
		if len(specs) == 0 {
			return hintSpec{}, false
		}
		var best hintSpec
		bestCover := -1
		for _, spec := range specs {
			if len(certain(otherUsable, simulate(spec), otherCounts)) > 0 {
				log.Debugf("[player %d] good hint for player %d: %v", player, other, spec.action(other).hintName())
				return spec, true
			}
			if cover := len(needed[spec]); cover > bestCover {
				best, bestCover = spec, cover
			}
		}
		log.Debugf("[player %d] fallback hint for player %d covers %d cards", player, other, bestCover)
		return best, true
	}

	if spec, ok := pick(playNeeded, g.PlayableFromHints); ok {
		return findHintAction(actions, other, spec), true
	}
	if spec, ok := pick(discardNeeded, g.DiscardableFromHints); ok {
		return findHintAction(actions, other, spec), true
	}
	return Action{}, false
}

func addNeeded(needed map[hintSpec]map[int]bool, spec hintSpec, id int) {
	if needed[spec] == nil {
		needed[spec] = make(map[int]bool)
	}
	needed[spec][id] = true
}

// orderedSpecs walks the candidate hints in the fixed order used for
// tie-breaking: colours in canonical order, then values ascending.
func orderedSpecs(needed map[hintSpec]map[int]bool) []hintSpec {
	var specs []hintSpec
	for _, colour := range allColours {
		if spec := (hintSpec{Type: HintColour, Colour: colour}); len(needed[spec]) > 0 {
			specs = append(specs, spec)
		}
	}
	for _, value := range allValues {
		if spec := (hintSpec{Type: HintValue, Value: value}); len(needed[spec]) > 0 {
			specs = append(specs, spec)
		}
	}
	return specs
}
