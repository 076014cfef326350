package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// actionSelector decides one player's move. A false return means the
// selector found no move worth making, which ends the game.
type actionSelector func(g *GameState, player int, actions []Action) (Action, bool)

// GameRecord is what one finished game reduces to for reporting.
type GameRecord struct {
	Score  int
	Status GameStatus
	Turns  int
}

// aiSelector adapts SelectAction to the actionSelector shape.
func aiSelector(g *GameState, player int, actions []Action) (Action, bool) {
	return SelectAction(g, player, actions)
}

// runGame drives one game to completion: strictly round-robin, one
// selector per seat, stopping when the legal-action set is empty, a
// selector gives up, or ApplyAction reports a terminal status. A viewer
// of -1 renders each turn from the acting player's perspective; a fixed
// viewer keeps that seat's hand masked even on other players' turns.
func runGame(g *GameState, selectors []actionSelector, render bool, viewer int, delay time.Duration) GameRecord {
	record := GameRecord{}
	player := 0
	for {
		actions := g.AvailableActions(player)
		if len(actions) == 0 {
			record.Status = StatusNoActions
			break
		}

		if render {
			view := player
			if viewer >= 0 {
				view = viewer
			}
			C.Header.Printf("\n--- Turn %d: player %d ---\n", record.Turns+1, player)
			renderGame(g, view)
		}

		action, ok := selectors[player](g, player, actions)
		if !ok {
			record.Status = StatusNoGoodMove
			break
		}
		record.Turns++

		if render {
			C.Info.Printf("player %d: %s\n", player, action)
			time.Sleep(delay)
		}
		log.Debugf("turn %d: player %d: %s", record.Turns, player, action)

		if status := g.ApplyAction(player, action); status != StatusInProgress {
			record.Status = status
			break
		}
		player = (player + 1) % g.NumPlayers
	}
	record.Score = g.Score()
	return record
}

// runWatch plays one fully rendered AI game.
func runWatch(numPlayers int, delay time.Duration) {
	g := NewGameState(numPlayers, NewDeck())
	selectors := make([]actionSelector, numPlayers)
	for i := range selectors {
		selectors[i] = aiSelector
	}

	record := runGame(g, selectors, true, -1, delay)
	printGameOver(record)
}

func printGameOver(record GameRecord) {
	C.Header.Println("\n--- GAME OVER ---")
	switch record.Status {
	case StatusLastCopyDiscarded, StatusOutOfMistakes:
		C.Bad.Printf("reason: %s\n", record.Status.Reason())
	default:
		C.Info.Printf("reason: %s\n", record.Status.Reason())
	}
	if record.Score > 20 {
		C.Good.Printf("final score: %d / 25 after %d turns\n", record.Score, record.Turns)
	} else {
		C.Info.Printf("final score: %d / 25 after %d turns\n", record.Score, record.Turns)
	}
}

// runBatch plays numGames AI-only games and reports aggregate statistics.
func runBatch(numGames, numPlayers int) {
	selectors := make([]actionSelector, numPlayers)
	for i := range selectors {
		selectors[i] = aiSelector
	}

	records := make([]GameRecord, 0, numGames)
	for i := 0; i < numGames; i++ {
		g := NewGameState(numPlayers, NewDeck())
		records = append(records, runGame(g, selectors, false, -1, 0))
	}
	printBatchStats(records)
}

func printBatchStats(records []GameRecord) {
	minScore, maxScore, totalScore, totalTurns := 26, -1, 0, 0
	reasons := make(map[GameStatus]int)
	for _, r := range records {
		if r.Score < minScore {
			minScore = r.Score
		}
		if r.Score > maxScore {
			maxScore = r.Score
		}
		totalScore += r.Score
		totalTurns += r.Turns
		reasons[r.Status]++
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%d games", len(records)))
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"min score", minScore},
		{"mean score", fmt.Sprintf("%.2f", float64(totalScore)/float64(len(records)))},
		{"max score", maxScore},
		{"mean turns", fmt.Sprintf("%.1f", float64(totalTurns)/float64(len(records)))},
	})
	t.AppendSeparator()
	for _, status := range []GameStatus{StatusLastCopyDiscarded, StatusOutOfMistakes, StatusNoActions, StatusNoGoodMove} {
		if n := reasons[status]; n > 0 {
			t.AppendRow(table.Row{status.Reason(), n})
		}
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
