package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bluffgame/bluff/deck"
)

var (
	ErrInvalidSeatCount    = errors.New("between 2 and 10 players required")
	ErrCardNotOwned        = errors.New("card is not in the player's hand")
	ErrInvalidDeclaredRank = errors.New("invalid declared rank")
	ErrNoTargetPlay        = errors.New("target player has no played cards")
	ErrSeatIndexOutOfRange = errors.New("seat index out of range")
	ErrNotCurrentActor     = errors.New("not this player's turn")
	ErrGameOver            = errors.New("game is already over")
)

const (
	minSeats           = 2
	maxSeats           = 10
	singleDeckMaxSeats = 6
)

// Game is the rule engine for the bluffing game. It owns the seated
// players, the community and discard areas, the declared rank and the
// turn state. Every card dealt at construction is always in exactly one
// of: a hand, a played area, the community area or the discard area.
//
// The engine is a sequential single-writer state machine. Each operation
// validates fully before touching any zone, so a failed operation leaves
// every zone unchanged. Callers embedding the engine in a concurrent
// setting must serialise mutating calls per game instance.
type Game struct {
	players        []*Player
	currentSeat    int
	communityArea  []deck.Card
	discardArea    []deck.Card
	declaredRank   deck.Rank
	rankDeclared   bool
	lastActingSeat int
	passedSeats    map[int]struct{}
	firstRound     bool
	over           bool
	numDecks       int
}

// NewGame seats the named players in order, builds and shuffles the
// deck(s), deals an equal hand to every seat with any remainder going to
// the community area, and picks the first acting seat at random. One deck
// serves 2-6 seats, two decks 7-10; any other seat count fails with
// ErrInvalidSeatCount.
//
// All randomness comes from rng, so a fixed seed reproduces the deal and
// the first actor exactly.
func NewGame(names []string, rng *rand.Rand) (*Game, error) {
	if len(names) < minSeats || len(names) > maxSeats {
		return nil, ErrInvalidSeatCount
	}

	numDecks := 1
	if len(names) > singleDeckMaxSeats {
		numDecks = 2
	}

	g := &Game{
		players:        make([]*Player, 0, len(names)),
		communityArea:  []deck.Card{},
		discardArea:    []deck.Card{},
		lastActingSeat: -1,
		passedSeats:    map[int]struct{}{},
		firstRound:     true,
		numDecks:       numDecks,
	}
	for _, name := range names {
		g.players = append(g.players, NewPlayer(name))
	}

	d := deck.New(numDecks)
	d.Shuffle(rng)

	perSeat := len(d) / len(g.players)
	for _, p := range g.players {
		p.AddCards(d.Deal(perSeat))
		p.SortHand()
	}
	g.communityArea = append(g.communityArea, d.Deal(len(d))...)

	g.currentSeat = rng.Intn(len(g.players))

	return g, nil
}

// Players returns the seated players in fixed seat order.
func (g *Game) Players() []*Player {
	return g.players
}

// Player returns the player at the given seat.
func (g *Game) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= len(g.players) {
		return nil, ErrSeatIndexOutOfRange
	}
	return g.players[seat], nil
}

// CurrentSeat returns the seat whose turn it is.
func (g *Game) CurrentSeat() int {
	return g.currentSeat
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.currentSeat]
}

// LastActingSeat returns the seat that made the most recent successful
// play, or -1 before the first play of the game.
func (g *Game) LastActingSeat() int {
	return g.lastActingSeat
}

// DeclaredRank returns the rank all players currently play under. The
// second return is false until the first play of the game declares one.
func (g *Game) DeclaredRank() (deck.Rank, bool) {
	return g.declaredRank, g.rankDeclared
}

// FirstRound reports whether no play has been made yet.
func (g *Game) FirstRound() bool {
	return g.firstRound
}

// Over reports whether a winner has been confirmed.
func (g *Game) Over() bool {
	return g.over
}

// NumDecks returns the deck multiplicity chosen at construction.
func (g *Game) NumDecks() int {
	return g.numDecks
}

// CommunityArea returns the cards currently without an attributed claim.
func (g *Game) CommunityArea() []deck.Card {
	return g.communityArea
}

// DiscardArea returns the cards permanently out of circulation.
func (g *Game) DiscardArea() []deck.Card {
	return g.discardArea
}

// ValidDeclaredRanks returns the twelve ranks eligible for a fresh
// declaration. The wildcard ace only becomes the declared rank through
// round advancement.
func (g *Game) ValidDeclaredRanks() []deck.Rank {
	ranks := make([]deck.Rank, 0, 12)
	for _, r := range deck.Ranks() {
		if r != deck.Ace {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// PlayCards lays cards from the actor's hand into their played area,
// claimed as the declared rank. Any cards left in the actor's played area
// from their own earlier play first move to the community area, the prior
// claim having been superseded unverified.
//
// The turn does not advance here; the caller advances it with NextTurn.
func (g *Game) PlayCards(seat int, cards []deck.Card, declared deck.Rank) error {
	if g.over {
		return ErrGameOver
	}
	if seat != g.currentSeat {
		return ErrNotCurrentActor
	}
	if declared < deck.Ace || declared > deck.King {
		return ErrInvalidDeclaredRank
	}
	if declared == deck.Ace && (!g.rankDeclared || g.declaredRank != deck.Ace) {
		// declarations are limited to the twelve non-wildcard ranks; the
		// ace only becomes declarable once round advancement has made it
		// the round's rank
		return ErrInvalidDeclaredRank
	}

	actor := g.players[seat]
	if !ownsAll(actor.Hand, cards) {
		return ErrCardNotOwned
	}

	if len(actor.PlayedArea) > 0 {
		g.communityArea = append(g.communityArea, actor.PlayedArea...)
		actor.ClearPlayedArea()
	}

	if err := actor.PlayCards(cards); err != nil {
		return err
	}

	g.declaredRank = declared
	g.rankDeclared = true
	g.lastActingSeat = seat
	g.passedSeats = map[int]struct{}{}
	g.firstRound = false

	return nil
}

// Challenge resolves a challenge against the target's played area and
// returns whether the challenge was refuted, with a description of the
// outcome.
//
// Refuted (the target was truthful): the challenger's hand receives the
// whole community area plus the target's played area, and the turn moves
// to the challenger. Upheld (the target was bluffing): the target takes
// their played cards back into their hand, the community area is left
// alone and the acting seat does not change.
func (g *Game) Challenge(challengerSeat, targetSeat int) (bool, string, error) {
	if g.over {
		return false, "", ErrGameOver
	}
	challenger, err := g.Player(challengerSeat)
	if err != nil {
		return false, "", err
	}
	target, err := g.Player(targetSeat)
	if err != nil {
		return false, "", err
	}
	if len(target.PlayedArea) == 0 {
		return false, "", ErrNoTargetPlay
	}

	truthful := true
	for _, c := range target.PlayedArea {
		if !c.Matches(g.declaredRank) {
			truthful = false
			break
		}
	}

	if truthful {
		challenger.AddCards(g.communityArea)
		challenger.AddCards(target.PlayedArea)
		g.communityArea = []deck.Card{}
		target.ClearPlayedArea()
		g.currentSeat = challengerSeat

		desc := fmt.Sprintf("%s's challenge failed: %s's cards were genuine", challenger.Name, target.Name)
		return true, desc, nil
	}

	target.AddCards(target.PlayedArea)
	target.ClearPlayedArea()

	desc := fmt.Sprintf("%s's challenge succeeded: %s was bluffing", challenger.Name, target.Name)
	return false, desc, nil
}

// Pass records that the seat has passed since the most recent successful
// play. The record is wiped by every successful play.
func (g *Game) Pass(seat int) (string, error) {
	if g.over {
		return "", ErrGameOver
	}
	player, err := g.Player(seat)
	if err != nil {
		return "", err
	}

	g.passedSeats[seat] = struct{}{}

	return fmt.Sprintf("%s passes", player.Name), nil
}

// AllPassed reports whether every seat other than the one due to resume
// has passed since the most recent successful play. It is always false
// before the first play of the game.
func (g *Game) AllPassed() bool {
	if g.lastActingSeat < 0 {
		return false
	}
	for seat := range g.players {
		if seat == g.lastActingSeat {
			continue
		}
		if _, passed := g.passedSeats[seat]; !passed {
			return false
		}
	}
	return true
}

// ResolveAllPassed ends a fully-passed round: every non-empty played area
// and the whole community area move to the discard area for good, the
// turn returns to the seat that played last, and the declared rank
// advances to the next rank in cyclic order, wrapping from King to Ace.
func (g *Game) ResolveAllPassed() {
	for _, p := range g.players {
		if len(p.PlayedArea) > 0 {
			g.discardArea = append(g.discardArea, p.PlayedArea...)
			p.ClearPlayedArea()
		}
	}
	if len(g.communityArea) > 0 {
		g.discardArea = append(g.discardArea, g.communityArea...)
		g.communityArea = []deck.Card{}
	}

	if g.lastActingSeat >= 0 {
		g.currentSeat = g.lastActingSeat
	}
	if g.rankDeclared {
		g.declaredRank = g.declaredRank.Next()
	}

	g.passedSeats = map[int]struct{}{}
}

// CheckWinner reports the winner, if there is one. A player wins once
// their hand is empty and their non-empty played area stands up to the
// declared rank. An empty hand behind a play that would lose a challenge
// does not win; the game continues.
func (g *Game) CheckWinner() (*Player, bool) {
	for _, p := range g.players {
		if len(p.Hand) != 0 || len(p.PlayedArea) == 0 {
			continue
		}

		valid := true
		for _, c := range p.PlayedArea {
			if !c.Matches(g.declaredRank) {
				valid = false
				break
			}
		}
		if valid {
			g.over = true
			return p, true
		}
	}
	return nil, false
}

// NextTurn advances the turn to the next seat in fixed order, wrapping.
// It is not used after a challenge: Challenge decides seat transfer
// itself.
func (g *Game) NextTurn() {
	g.currentSeat = (g.currentSeat + 1) % len(g.players)
}

// ownsAll reports whether every requested card has a matching occurrence
// remaining in the hand, counting duplicates once per request.
func ownsAll(hand, cards []deck.Card) bool {
	available := map[deck.Card]int{}
	for _, c := range hand {
		available[c]++
	}
	for _, c := range cards {
		if available[c] == 0 {
			return false
		}
		available[c]--
	}
	return true
}
