package game

import (
	"sort"

	uuid "github.com/satori/go.uuid"

	"github.com/bluffgame/bluff/deck"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a seated player. A player owns exactly two card
// containers: the hand, and the played area holding cards currently laid
// face-up under the active declared rank.
type Player struct {
	ID         string
	Name       string
	Hand       []deck.Card
	PlayedArea []deck.Card
}

// NewPlayer constructs a player with empty containers
func NewPlayer(name string) *Player {
	return &Player{
		ID:         NewID(),
		Name:       name,
		Hand:       []deck.Card{},
		PlayedArea: []deck.Card{},
	}
}

// AddCards appends cards to the player's hand.
func (p *Player) AddCards(cards []deck.Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCards removes one matching occurrence per requested card from the
// hand, so a hand holding two copies of the same card (two decks in play)
// keeps the other copy. If any requested card has no occurrence remaining
// the hand is left unchanged and ErrCardNotOwned is returned.
func (p *Player) RemoveCards(cards []deck.Card) error {
	available := map[deck.Card]int{}
	for _, c := range p.Hand {
		available[c]++
	}
	for _, c := range cards {
		if available[c] == 0 {
			return ErrCardNotOwned
		}
		available[c]--
	}

	toRemove := map[deck.Card]int{}
	for _, c := range cards {
		toRemove[c]++
	}

	newHand := make([]deck.Card, 0, len(p.Hand)-len(cards))
	for _, c := range p.Hand {
		if toRemove[c] > 0 {
			toRemove[c]--
			continue
		}
		newHand = append(newHand, c)
	}
	p.Hand = newHand

	return nil
}

// PlayCards moves cards from the hand to the played area. The move is
// atomic: if any card is not in the hand, neither container changes.
func (p *Player) PlayCards(cards []deck.Card) error {
	if err := p.RemoveCards(cards); err != nil {
		return err
	}
	p.PlayedArea = append(p.PlayedArea, cards...)
	return nil
}

// ClearPlayedArea empties the played area.
func (p *Player) ClearPlayedArea() {
	p.PlayedArea = []deck.Card{}
}

// HandCount returns the number of cards left in the hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// PlayedCount returns the number of cards in the played area.
func (p *Player) PlayedCount() int {
	return len(p.PlayedArea)
}

// Score sums the point values of the remaining hand. It is only used for
// end-of-game reporting.
func (p *Player) Score() int {
	score := 0
	for _, c := range p.Hand {
		score += c.Rank.PointValue()
	}
	return score
}

// SortHand orders the hand by rank, then suit, for display. Hand order
// has no significance to the rules.
func (p *Player) SortHand() {
	sort.Slice(p.Hand, func(i, j int) bool {
		if p.Hand[i].Rank != p.Hand[j].Rank {
			return p.Hand[i].Rank < p.Hand[j].Rank
		}
		return p.Hand[i].Suit < p.Hand[j].Suit
	})
}
