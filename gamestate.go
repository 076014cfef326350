package main

const (
	handSize         = 5
	maxHints         = 8
	startingMistakes = 3
)

// GameStatus is the terminal condition of a game. ApplyAction returns it
// as a value instead of raising, so callers are forced to handle
// termination explicitly.
type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusLastCopyDiscarded
	StatusOutOfMistakes
	StatusNoActions
	StatusNoGoodMove
)

// Reason returns the human-readable game-over reason.
func (s GameStatus) Reason() string {
	switch s {
	case StatusLastCopyDiscarded:
		return "the last copy of an unplayed card was discarded"
	case StatusOutOfMistakes:
		return "ran out of mistakes"
	case StatusNoActions:
		return "no legal actions remain"
	case StatusNoGoodMove:
		return "no good move found"
	}
	return "in progress"
}

// DiscardPile keeps the ordered sequence of discarded and misplayed cards
// plus a per-identity count for census and last-copy checks.
type DiscardPile struct {
	Cards  []Card
	counts CardCounts
}

func (d *DiscardPile) Add(card Card) {
	d.Cards = append(d.Cards, card)
	d.counts[cardIndex(card.Colour, card.Value)]++
}

func (d *DiscardPile) Count(card Card) int {
	return d.counts[cardIndex(card.Colour, card.Value)]
}

// GameState owns everything: deck, hands, discard pile, table, token
// counters, and every player's hint grids indexed by (player, slot).
// The grids live here rather than on per-player mirrors so the knowledge
// and the hands it describes can never drift apart.
type GameState struct {
	NumPlayers int
	Deck       []Card
	Hands      [][]*Card // nil entry = emptied slot with no replacement
	Discards   DiscardPile
	Table      [5]int // highest value played per colour, 0 if none

	HintsRemaining    int
	MistakesRemaining int

	HintGrids [][]HintGrid
}

// NewGameState deals hands from a pre-shuffled deck, popping from the
// end. The deck must hold the fixed 50-card composition.
func NewGameState(numPlayers int, deck []Card) *GameState {
	if numPlayers < 2 || numPlayers > 5 {
		log.Fatalf("Cannot create a game with %d players; need between 2 and 5.", numPlayers)
	}
	g := &GameState{
		NumPlayers:        numPlayers,
		Deck:              deck,
		HintsRemaining:    maxHints,
		MistakesRemaining: startingMistakes,
	}
	for p := 0; p < numPlayers; p++ {
		hand := make([]*Card, handSize)
		grids := make([]HintGrid, handSize)
		for i := 0; i < handSize; i++ {
			hand[i] = g.drawCard()
			grids[i] = initialHints()
		}
		g.Hands = append(g.Hands, hand)
		g.HintGrids = append(g.HintGrids, grids)
	}
	return g
}

func (g *GameState) drawCard() *Card {
	if len(g.Deck) == 0 {
		return nil
	}
	card := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return &card
}

// Score is the sum of the highest played value per colour, 0 to 25.
func (g *GameState) Score() int {
	score := 0
	for _, v := range g.Table {
		score += v
	}
	return score
}

// UsableCards returns the indices of the player's non-empty slots, in
// ascending order.
func (g *GameState) UsableCards(player int) []int {
	var ids []int
	for i, card := range g.Hands[player] {
		if card != nil {
			ids = append(ids, i)
		}
	}
	return ids
}

// RequiredCards returns the identities that would currently advance the
// table: the next value for every colour not yet at 5. At most one entry
// per colour.
func (g *GameState) RequiredCards() []Card {
	var cards []Card
	for _, colour := range allColours {
		if g.Table[colour] < 5 {
			cards = append(cards, Card{colour, g.Table[colour] + 1})
		}
	}
	return cards
}

// isRequired reports whether playing this card would advance the table.
func (g *GameState) isRequired(card Card) bool {
	return g.Table[card.Colour]+1 == card.Value
}

// isOnTable reports whether a card of this identity has been played.
func (g *GameState) isOnTable(card Card) bool {
	return card.Value <= g.Table[card.Colour]
}

// copiesRemaining reports whether any copy of this identity survives
// outside the discard pile.
func (g *GameState) copiesRemaining(card Card) bool {
	return cardCopies(card.Value)-g.Discards.Count(card) > 0
}

// safeToDiscard reports whether losing one copy of this identity cannot
// strand the table: either the identity has already been played, or more
// than one undiscarded copy exists.
func (g *GameState) safeToDiscard(card Card) bool {
	return g.isOnTable(card) || cardCopies(card.Value)-g.Discards.Count(card) > 1
}

// AvailableActions enumerates every legal move for the player: a discard
// and a play per usable slot, and if hint tokens remain, one maximal
// truthful hint per distinct colour and per distinct value in each other
// player's hand. Ordering is deterministic: slots ascending, targets
// ascending, colours in canonical order, then values ascending.
func (g *GameState) AvailableActions(player int) []Action {
	var actions []Action
	for _, id := range g.UsableCards(player) {
		actions = append(actions, Action{Name: ActionDiscard, CardID: id})
	}
	for _, id := range g.UsableCards(player) {
		actions = append(actions, Action{Name: ActionPlay, CardID: id})
	}
	if g.HintsRemaining == 0 {
		return actions
	}
	for other := 0; other < g.NumPlayers; other++ {
		if other == player {
			continue
		}
		byColour := make(map[Colour][]int)
		byValue := make(map[int][]int)
		for id, card := range g.Hands[other] {
			if card != nil {
				byColour[card.Colour] = append(byColour[card.Colour], id)
				byValue[card.Value] = append(byValue[card.Value], id)
			}
		}
		for _, colour := range allColours {
			if ids := byColour[colour]; len(ids) > 0 {
				actions = append(actions, Action{Name: ActionHint, TargetPlayer: other, CardIDs: ids, HintType: HintColour, HintColour: colour})
			}
		}
		for _, value := range allValues {
			if ids := byValue[value]; len(ids) > 0 {
				actions = append(actions, Action{Name: ActionHint, TargetPlayer: other, CardIDs: ids, HintType: HintValue, HintValue: value})
			}
		}
	}
	return actions
}

// CardCounts returns the per-identity census from a given perspective:
// discarded copies, copies used up on the table (values 1..table[c] per
// colour), and copies in every hand whose owner is not excluded. A player
// reasoning about their own cards excludes themself; a player evaluating
// a hint for a recipient excludes both, matching what the recipient can
// infer from public information alone.
func (g *GameState) CardCounts(exclude ...int) CardCounts {
	var counts CardCounts
	for _, card := range g.Discards.Cards {
		counts[cardIndex(card.Colour, card.Value)]++
	}
	for _, colour := range allColours {
		for v := 1; v <= g.Table[colour]; v++ {
			counts[cardIndex(colour, v)]++
		}
	}
	for player := 0; player < g.NumPlayers; player++ {
		if containsInt(exclude, player) {
			continue
		}
		for _, card := range g.Hands[player] {
			if card != nil {
				counts[cardIndex(card.Colour, card.Value)]++
			}
		}
	}
	return counts
}

// cardIDsWhere is the shared core of the four certainty queries: a slot
// qualifies when every identity its possibility source still allows
// satisfies pred. An empty possibility set qualifies vacuously.
func cardIDsWhere(usable []int, possible func(cardID int) []Card, pred func(Card) bool) []int {
	var ids []int
	for _, id := range usable {
		certain := true
		for _, card := range possible(id) {
			if !pred(card) {
				certain = false
				break
			}
		}
		if certain {
			ids = append(ids, id)
		}
	}
	return ids
}

// PlayableFromHints returns the slots that are certainly playable from
// the hint grids and census alone: every possible identity is required.
func (g *GameState) PlayableFromHints(usable []int, grids []HintGrid, counts CardCounts) []int {
	return cardIDsWhere(usable, func(id int) []Card {
		return possibleCardsFromHints(grids[id], counts)
	}, g.isRequired)
}

// DiscardableFromHints returns the slots that are certainly safe to
// discard from the hint grids and census alone.
func (g *GameState) DiscardableFromHints(usable []int, grids []HintGrid, counts CardCounts) []int {
	return cardIDsWhere(usable, func(id int) []Card {
		return possibleCardsFromHints(grids[id], counts)
	}, g.safeToDiscard)
}

// PlayableCards is the ground-truth variant of PlayableFromHints, applied
// to the actual identities. Only meaningful for hands the caller may see.
func (g *GameState) PlayableCards(player int) []int {
	return cardIDsWhere(g.UsableCards(player), func(id int) []Card {
		return []Card{*g.Hands[player][id]}
	}, g.isRequired)
}

// DiscardableCards is the ground-truth variant of DiscardableFromHints.
func (g *GameState) DiscardableCards(player int) []int {
	return cardIDsWhere(g.UsableCards(player), func(id int) []Card {
		return []Card{*g.Hands[player][id]}
	}, g.safeToDiscard)
}

// removeCard empties the slot and reopens its hint grid; the grid now
// describes whatever card is drawn into the slot next.
func (g *GameState) removeCard(player, cardID int) Card {
	card := *g.Hands[player][cardID]
	g.Hands[player][cardID] = nil
	g.HintGrids[player][cardID] = initialHints()
	return card
}

// discardCard routes a card onto the discard pile and checks whether the
// game was just lost by stranding an identity the table still needs.
func (g *GameState) discardCard(card Card) GameStatus {
	g.Discards.Add(card)
	if !g.isOnTable(card) && !g.copiesRemaining(card) {
		return StatusLastCopyDiscarded
	}
	return StatusInProgress
}

func (g *GameState) drawInto(player, cardID int) {
	if card := g.drawCard(); card != nil {
		g.Hands[player][cardID] = card
	}
}

// ApplyAction mutates the game in place and reports the resulting status.
// Callers must only pass actions drawn from AvailableActions for the same
// player and state; malformed actions are a contract violation the core
// does not defend against.
func (g *GameState) ApplyAction(player int, action Action) GameStatus {
	switch action.Name {
	case ActionDiscard:
		card := g.removeCard(player, action.CardID)
		status := g.discardCard(card)
		if g.HintsRemaining < maxHints {
			g.HintsRemaining++
		}
		g.drawInto(player, action.CardID)
		return status

	case ActionPlay:
		card := g.removeCard(player, action.CardID)
		status := StatusInProgress
		if g.isRequired(card) {
			g.Table[card.Colour]++
		} else {
			g.MistakesRemaining--
			status = g.discardCard(card)
			if status == StatusInProgress && g.MistakesRemaining == 0 {
				status = StatusOutOfMistakes
			}
		}
		g.drawInto(player, action.CardID)
		return status

	case ActionHint:
		g.HintsRemaining--
		grids := g.HintGrids[action.TargetPlayer]
		for id := 0; id < handSize; id++ {
			grids[id] = applyHint(containsInt(action.CardIDs, id), grids[id], action.HintType, action.HintColour, action.HintValue)
		}
	}
	return StatusInProgress
}
