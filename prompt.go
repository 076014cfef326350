package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

func promptForString(line *liner.State, prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := line.Prompt("")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Println("\nGoodbye!")
				os.Exit(0)
			}
			log.Fatalf("Error reading line: %v", err)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func promptForInt(line *liner.State, prompt string, min, max int) int {
	for {
		input := promptForString(line, prompt)
		num, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

func promptForSelection(line *liner.State, prompt string, options []string) int {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, opt)
		}
		input := promptForString(line, "Enter number: ")
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return num - 1
		}
		C.Warn.Println("Invalid selection.")
	}
}

// humanSelector wraps a liner prompt into an actionSelector for one seat.
// All input errors are retried here; GameState never sees a malformed
// action.
func humanSelector(line *liner.State) actionSelector {
	return func(g *GameState, player int, actions []Action) (Action, bool) {
		return selectActionHuman(line, g, player, actions), true
	}
}

func selectActionHuman(line *liner.State, g *GameState, player int, actions []Action) Action {
	kinds := []string{"discard", "play"}
	if hasHintActions(actions) {
		kinds = append(kinds, "hint")
	}

	for {
		choice := kinds[promptForSelection(line, "Which type of action do you want to perform?", kinds)]
		switch choice {
		case "discard", "play":
			name := ActionDiscard
			if choice == "play" {
				name = ActionPlay
			}
			ids := g.UsableCards(player)
			id := promptForInt(line, fmt.Sprintf("Which card would you like to %s? %v: ", choice, ids), 0, handSize-1)
			if !containsInt(ids, id) {
				C.Warn.Printf("Card %d is not in your hand.\n", id)
				continue
			}
			return Action{Name: name, CardID: id}

		case "hint":
			action, ok := selectHintHuman(line, g, player, actions)
			if !ok {
				continue
			}
			return action
		}
	}
}

func selectHintHuman(line *liner.State, g *GameState, player int, actions []Action) (Action, bool) {
	var targets []int
	for _, action := range actions {
		if action.Name == ActionHint && !containsInt(targets, action.TargetPlayer) {
			targets = append(targets, action.TargetPlayer)
		}
	}

	options := make([]string, len(targets))
	for i, target := range targets {
		options[i] = fmt.Sprintf("player %d: %s", target, formatHand(g.Hands[target]))
	}
	target := targets[promptForSelection(line, "Which player would you like to hint?", options)]

	var hints []Action
	var hintNames []string
	for _, action := range actions {
		if action.Name == ActionHint && action.TargetPlayer == target {
			hints = append(hints, action)
			hintNames = append(hintNames, fmt.Sprintf("cards %s are %s", formatCardIDs(action.CardIDs), action.hintName()))
		}
	}
	hintNames = append(hintNames, "back")

	picked := promptForSelection(line, "Which hint would you like to give?", hintNames)
	if picked == len(hints) {
		return Action{}, false
	}
	return hints[picked], true
}

// runPlay puts a human in seat 0 with AI partners.
func runPlay(line *liner.State, numPlayers int) {
	selectors := make([]actionSelector, numPlayers)
	selectors[0] = humanSelector(line)
	for i := 1; i < numPlayers; i++ {
		selectors[i] = aiSelector
	}

	g := NewGameState(numPlayers, NewDeck())
	record := runGame(g, selectors, true, 0, 0)
	printGameOver(record)
}

func hasHintActions(actions []Action) bool {
	for _, action := range actions {
		if action.Name == ActionHint {
			return true
		}
	}
	return false
}
