package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	numPlayers := flag.Int("players", 5, "Number of players (2-5)")
	seed := flag.Int64("seed", 0, "Deck shuffle seed (0 = time-based)")
	delay := flag.Duration("delay", 50*time.Millisecond, "Pause between rendered AI turns")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	if *numPlayers < 2 || *numPlayers > 5 {
		log.Fatalf("Cannot play with %d players; need between 2 and 5.", *numPlayers)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rand.Seed(*seed)
	log.Debugf("seed: %d", *seed)

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return
	}

	switch args[0] {
	case "watch":
		runWatch(*numPlayers, *delay)
	case "play":
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)
		runPlay(line, *numPlayers)
	case "sim":
		if len(args) != 2 {
			printUsage()
			return
		}
		numGames, err := strconv.Atoi(args[1])
		if err != nil || numGames < 1 {
			printUsage()
			return
		}
		C.Header.Printf("--- Running %d Games ---\n", numGames)
		runBatch(numGames, *numPlayers)
	default:
		printUsage()
	}
}

func printUsage() {
	fmt.Println(C.Header.Sprint("\n--- Hanabi Toolbox ---"))
	fmt.Println("Usage:")
	fmt.Println(C.Prompt.Sprint("  go run . watch"))
	fmt.Println("    To watch a single rendered AI game.")
	fmt.Println(C.Prompt.Sprint("  go run . play"))
	fmt.Println("    To play seat 0 yourself alongside AI partners.")
	fmt.Println(C.Prompt.Sprint("  go run . sim <games>"))
	fmt.Println("    To run a batch of AI games and report statistics.")
	fmt.Println("\nFlags:")
	fmt.Println("  -players N         Number of players, 2-5 (default 5).")
	fmt.Println("  -seed N            Fix the shuffle seed for reproducible games.")
	fmt.Println("  -loglevel debug    Enable detailed AI reasoning traces.")
}
