package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// Colour is one of the five firework colours using a typed enum.
type Colour int

const (
	ColourRed Colour = iota
	ColourYellow
	ColourGreen
	ColourBlue
	ColourWhite
)

// String returns the string representation of a Colour.
func (c Colour) String() string {
	return []string{"red", "yellow", "green", "blue", "white"}[c]
}

// allColours fixes the iteration order wherever colours are walked, so
// action generation and rendering stay deterministic.
var allColours = []Colour{ColourRed, ColourYellow, ColourGreen, ColourBlue, ColourWhite}

// allValues fixes the iteration order for card values.
var allValues = []int{1, 2, 3, 4, 5}

// cardCopies returns how many copies of a value exist per colour in the
// fixed 50-card deck: three 1s, two each of 2-4, a single 5.
func cardCopies(value int) int {
	return []int{3, 2, 2, 2, 1}[value-1]
}

// Card is one concrete (colour, value) identity. There are 25 distinct
// identities and 50 cards in a deck.
type Card struct {
	Colour Colour
	Value  int
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Colour, c.Value)
}

// cardIndex maps a (colour, value) pair onto 0..24 for the fixed-size
// grid and census arrays.
func cardIndex(colour Colour, value int) int {
	return int(colour)*5 + value - 1
}

// cardAt is the inverse of cardIndex.
func cardAt(index int) Card {
	return Card{Colour(index / 5), index%5 + 1}
}

// NewDeck builds the fixed 50-card multiset and shuffles it in place.
func NewDeck() []Card {
	var deck []Card
	for _, colour := range allColours {
		for _, value := range allValues {
			for n := 0; n < cardCopies(value); n++ {
				deck = append(deck, Card{colour, value})
			}
		}
	}
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// HintType says which dimension of a card a hint names.
type HintType int

const (
	HintColour HintType = iota
	HintValue
)

// String returns the string representation of a HintType.
func (h HintType) String() string {
	return []string{"colour", "value"}[h]
}

// ActionName identifies the three kinds of moves.
type ActionName int

const (
	ActionDiscard ActionName = iota
	ActionPlay
	ActionHint
)

// String returns the string representation of an ActionName.
func (a ActionName) String() string {
	return []string{"discard", "play", "hint"}[a]
}

// Action is one legal move. CardID is the hand slot for a discard or a
// play; the remaining fields describe a hint. Hints are always maximal
// and truthful: CardIDs names exactly the target's slots matching the
// hinted colour or value.
type Action struct {
	Name         ActionName
	CardID       int
	TargetPlayer int
	CardIDs      []int
	HintType     HintType
	HintColour   Colour
	HintValue    int
}

func (a Action) String() string {
	switch a.Name {
	case ActionHint:
		return fmt.Sprintf("hint player %d: cards %s are %s", a.TargetPlayer, formatCardIDs(a.CardIDs), a.hintName())
	default:
		return fmt.Sprintf("%s card %d", a.Name, a.CardID)
	}
}

func (a Action) hintName() string {
	if a.HintType == HintColour {
		return a.HintColour.String()
	}
	return fmt.Sprintf("%d", a.HintValue)
}

func formatCardIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func containsInt(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
