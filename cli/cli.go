// Package cli is the interactive collaborator around the game engine: a
// command loop, input parsing and console rendering. It holds no game
// state of its own; everything flows through the engine's operations.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/bluffgame/bluff/deck"
	"github.com/bluffgame/bluff/game"
	"github.com/bluffgame/bluff/protocol"
)

// CLI runs an interactive session over a single game instance.
type CLI struct {
	game   *game.Game
	logger *slog.Logger
}

// New constructs a CLI session
func New(g *game.Game, logger *slog.Logger) *CLI {
	return &CLI{game: g, logger: logger}
}

// Run drives the game loop until a winner is confirmed or the session is
// quit. The first action of the game must be a play; afterwards the
// current player chooses between playing, challenging and passing. A
// challenge never advances the turn by itself.
func (c *CLI) Run() error {
	for !c.game.Over() {
		renderState(c.game)

		seat := c.game.CurrentSeat()
		actor := c.game.CurrentPlayer()

		pterm.DefaultSection.Printfln("%s's turn", actor.Name)
		pterm.Println(renderHand(actor))

		cmd := protocol.Play
		if _, declared := c.game.DeclaredRank(); declared {
			input, err := pterm.DefaultInteractiveTextInput.
				WithDefaultText("1) play  2) challenge  3) pass  q) quit").
				Show()
			if err != nil {
				return err
			}
			cmd = ParseCommand(input)
		}

		var acted, holdTurn bool
		switch cmd {
		case protocol.Play:
			acted = c.playTurn(seat, actor)
		case protocol.Challenge:
			acted = c.challengeTurn(seat)
			holdTurn = true // Challenge decides seat transfer itself
		case protocol.Pass:
			acted, holdTurn = c.passTurn(seat, actor)
		case protocol.Quit:
			c.logger.Info("session quit", "player", actor.Name)
			return nil
		default:
			pterm.Warning.Println("Unrecognised choice")
		}
		if !acted {
			continue
		}

		if winner, ok := c.game.CheckWinner(); ok {
			c.logger.Info("winner confirmed", "player", winner.Name)
			renderScores(c.game, winner)
			return nil
		}

		if !holdTurn {
			c.game.NextTurn()
		}
	}

	return nil
}

func (c *CLI) playTurn(seat int, actor *game.Player) bool {
	if actor.HandCount() == 0 {
		// unresolved rule: an emptied hand behind an invalid play stays
		// in the rotation but has nothing to lay
		pterm.Warning.Printfln("%s has no cards left to play", actor.Name)
		return true
	}

	input, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Card indices to play, e.g. 0 2 4").
		Show()
	if err != nil {
		pterm.Error.Println(err)
		return false
	}

	indices, err := ParseCardIndices(input, actor.HandCount())
	if err != nil {
		pterm.Error.Println(err)
		return false
	}

	cards := make([]deck.Card, 0, len(indices))
	for _, idx := range indices {
		cards = append(cards, actor.Hand[idx])
	}

	declared, ok := c.game.DeclaredRank()
	if !ok {
		rankInput, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Declare a rank %v", c.game.ValidDeclaredRanks())).
			Show()
		if err != nil {
			pterm.Error.Println(err)
			return false
		}
		declared, err = ParseDeclaredRank(rankInput)
		if err != nil {
			pterm.Error.Println(err)
			return false
		}
	}

	if err := c.game.PlayCards(seat, cards, declared); err != nil {
		pterm.Error.Println(err)
		return false
	}

	pterm.Success.Printfln("%s lays %d card(s), declared as %s", actor.Name, len(cards), declared)
	c.logger.Info("play", "player", actor.Name, "cards", len(cards), "declared", declared.String())
	return true
}

func (c *CLI) challengeTurn(seat int) bool {
	targets := []int{}
	for target, p := range c.game.Players() {
		if target != seat && p.PlayedCount() > 0 {
			targets = append(targets, target)
		}
	}
	if len(targets) == 0 {
		pterm.Warning.Println("No player has cards to challenge")
		return false
	}

	for _, target := range targets {
		p, _ := c.game.Player(target)
		pterm.Info.Printfln("Seat %d: %s (%d played)", target, p.Name, p.PlayedCount())
	}

	input, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Seat to challenge").
		Show()
	if err != nil {
		pterm.Error.Println(err)
		return false
	}

	target, err := ParseChallengeTarget(input, targets)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}

	refuted, desc, err := c.game.Challenge(seat, target)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}

	pterm.Info.Println(desc)
	c.logger.Info("challenge", "challenger", seat, "target", target, "refuted", refuted)
	return true
}

// passTurn records a pass and, when it completes the round, resolves it.
// The second return asks the loop not to advance the turn, because the
// resolution already reseated play at the last acting seat.
func (c *CLI) passTurn(seat int, actor *game.Player) (bool, bool) {
	desc, err := c.game.Pass(seat)
	if err != nil {
		pterm.Error.Println(err)
		return false, false
	}

	pterm.Info.Println(desc)
	c.logger.Info("pass", "player", actor.Name)

	if !c.game.AllPassed() {
		return true, false
	}

	c.game.ResolveAllPassed()
	rank, _ := c.game.DeclaredRank()
	pterm.Info.Printfln("Every seat passed: the table is discarded and the declared rank moves on to %s", rank)
	c.logger.Info("round resolved", "declared", rank.String())
	return true, true
}
