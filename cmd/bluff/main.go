package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/bluffgame/bluff/cli"
	"github.com/bluffgame/bluff/game"
	"github.com/bluffgame/bluff/store"
)

func main() {
	cfg, err := cli.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	names := promptSeatNames()

	g, err := game.NewGame(names, rng)
	if err != nil {
		logger.Error("could not start a game", "error", err)
		os.Exit(1)
	}

	games := store.NewInMemoryGameStore()
	gameID := store.NewGameID()
	if err := games.AddGame(gameID, g); err != nil {
		logger.Error("could not register the game", "error", err)
		os.Exit(1)
	}
	logger.Info("game created", "id", gameID, "seats", len(names), "seed", seed)

	pterm.Info.Printfln("%s acts first", g.CurrentPlayer().Name)

	session := cli.New(games.FindGame(gameID), logger)
	if err := session.Run(); err != nil {
		logger.Error("session ended abnormally", "error", err)
		os.Exit(1)
	}
}

// newLogger writes session diagnostics to the configured log file,
// falling back to the terminal when the file cannot be opened.
func newLogger(cfg cli.Config) *slog.Logger {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			return slog.New(slog.NewTextHandler(f, nil))
		}
		pterm.Warning.Printfln("could not open %s: %v", cfg.LogFile, err)
	}
	return slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
}

func promptSeatNames() []string {
	var numSeats int
	for {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Number of players (2-10)").
			Show()

		n, err := strconv.Atoi(input)
		if err != nil || n < 2 || n > 10 {
			pterm.Warning.Println("Between 2 and 10 players required")
			continue
		}
		numSeats = n
		break
	}

	names := make([]string, 0, numSeats)
	for i := 0; i < numSeats; i++ {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Name for seat %d", i)).
			Show()
		if name == "" {
			name = fmt.Sprintf("player-%d", i)
		}
		names = append(names, name)
	}
	return names
}
