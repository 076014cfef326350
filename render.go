package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var C = struct {
	Good, Bad, Info, Warn, Header, Prompt *color.Color
}{
	Good:   color.New(color.FgGreen),
	Bad:    color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// colourPalette maps card colours onto terminal colours. White cards use
// hi-white so they stay visible on light backgrounds.
var colourPalette = map[Colour]*color.Color{
	ColourRed:    color.New(color.FgRed),
	ColourYellow: color.New(color.FgYellow),
	ColourGreen:  color.New(color.FgGreen),
	ColourBlue:   color.New(color.FgBlue),
	ColourWhite:  color.New(color.FgHiWhite),
}

func colourizeCard(card Card) string {
	return colourPalette[card.Colour].Sprintf("%s %d", card.Colour, card.Value)
}

func formatTableStacks(g *GameState) string {
	parts := make([]string, 0, len(allColours))
	for _, colour := range allColours {
		parts = append(parts, colourPalette[colour].Sprintf("%s:%d", colour, g.Table[colour]))
	}
	return strings.Join(parts, "  ")
}

func formatHand(hand []*Card) string {
	parts := make([]string, 0, len(hand))
	for _, card := range hand {
		if card == nil {
			parts = append(parts, "--")
		} else {
			parts = append(parts, colourizeCard(*card))
		}
	}
	return strings.Join(parts, " | ")
}

func formatDiscards(pile DiscardPile) string {
	if len(pile.Cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(pile.Cards))
	for _, card := range pile.Cards {
		parts = append(parts, colourizeCard(card))
	}
	return strings.Join(parts, ", ")
}

// renderGame prints the full game view from one player's perspective.
// The viewer's own hand is never revealed: it renders purely from what
// the hint grids and public census disclose.
func renderGame(g *GameState, viewer int) {
	fmt.Printf("table: %s\n", formatTableStacks(g))
	fmt.Printf("discards: %s\n", formatDiscards(g.Discards))
	fmt.Printf("hints: %d  mistakes: %d  deck: %d  score: %d\n",
		g.HintsRemaining, g.MistakesRemaining, len(g.Deck), g.Score())

	for p := 0; p < g.NumPlayers; p++ {
		if p == viewer {
			fmt.Printf("* player %d: %s\n", p, maskedHand(g, p))
		} else {
			fmt.Printf("  player %d: %s\n", p, formatHand(g.Hands[p]))
		}
	}
	displayKnowledge(g, viewer)
}

// maskedHand summarises the viewer's own slots without revealing the true
// identities: each non-empty slot shows its remaining possibility count.
func maskedHand(g *GameState, viewer int) string {
	counts := g.CardCounts(viewer)
	parts := make([]string, 0, handSize)
	for id, card := range g.Hands[viewer] {
		if card == nil {
			parts = append(parts, "--")
			continue
		}
		possible := possibleCardsFromHints(g.HintGrids[viewer][id], counts)
		parts = append(parts, fmt.Sprintf("?(%d)", len(possible)))
	}
	return strings.Join(parts, " | ")
}

// displayKnowledge renders the viewer's hint grids: one row per slot, one
// column per colour, each cell listing the values still possible with the
// digit repeated once per copy not yet publicly accounted for.
func displayKnowledge(g *GameState, viewer int) {
	counts := g.CardCounts(viewer)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Player %d's knowledge", viewer))

	header := table.Row{"Card"}
	for _, colour := range allColours {
		header = append(header, colourPalette[colour].Sprint(colour))
	}
	t.AppendHeader(header)

	for id := 0; id < handSize; id++ {
		row := table.Row{id}
		for _, colour := range allColours {
			if g.Hands[viewer][id] == nil {
				row = append(row, "")
				continue
			}
			row = append(row, knowledgeCell(g.HintGrids[viewer][id], counts, colour))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func knowledgeCell(grid HintGrid, counts CardCounts, colour Colour) string {
	var parts []string
	for _, value := range allValues {
		i := cardIndex(colour, value)
		remaining := cardCopies(value) - counts[i]
		if grid[i] && remaining > 0 {
			parts = append(parts, strings.Repeat(strconv.Itoa(value), remaining))
		}
	}
	return colourPalette[colour].Sprint(strings.Join(parts, " "))
}
