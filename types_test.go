package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 50)

	var counts CardCounts
	for _, card := range deck {
		counts[cardIndex(card.Colour, card.Value)]++
	}
	for _, colour := range allColours {
		for _, value := range allValues {
			assert.Equal(t, cardCopies(value), counts[cardIndex(colour, value)],
				"wrong number of copies of %s %d", colour, value)
		}
	}
}

func TestCardIndexRoundTrip(t *testing.T) {
	for i := 0; i < 25; i++ {
		card := cardAt(i)
		assert.Equal(t, i, cardIndex(card.Colour, card.Value))
	}
	assert.Equal(t, 0, cardIndex(ColourRed, 1))
	assert.Equal(t, 24, cardIndex(ColourWhite, 5))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "play card 2", Action{Name: ActionPlay, CardID: 2}.String())
	assert.Equal(t, "discard card 0", Action{Name: ActionDiscard}.String())

	hint := Action{Name: ActionHint, TargetPlayer: 3, CardIDs: []int{0, 2}, HintType: HintColour, HintColour: ColourRed}
	assert.Equal(t, "hint player 3: cards [0 2] are red", hint.String())

	hint = Action{Name: ActionHint, TargetPlayer: 1, CardIDs: []int{4}, HintType: HintValue, HintValue: 5}
	assert.Equal(t, "hint player 1: cards [4] are 5", hint.String())
}
