package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bluffgame/bluff/deck"
	utils "github.com/bluffgame/bluff/internal"
)

func TestPlayerAddAndRemoveCards(t *testing.T) {
	t.Run("added cards land in the hand", func(t *testing.T) {
		p := NewPlayer("Ana")
		p.AddCards([]deck.Card{{Rank: deck.Five, Suit: deck.Hearts}, {Rank: deck.Nine, Suit: deck.Clubs}})

		utils.AssertEqual(t, p.HandCount(), 2)
		utils.AssertEqual(t, p.PlayedCount(), 0)
	})

	t.Run("removal takes one occurrence per requested card", func(t *testing.T) {
		// two decks in play: the hand can hold two copies of the same card
		twin := deck.Card{Rank: deck.Seven, Suit: deck.Spades}
		p := NewPlayer("Bo")
		p.AddCards([]deck.Card{twin, {Rank: deck.Two, Suit: deck.Hearts}, twin})

		err := p.RemoveCards([]deck.Card{twin})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, p.HandCount(), 2)
		assert.Contains(t, p.Hand, twin)
	})

	t.Run("removing a card the player does not hold fails without mutating", func(t *testing.T) {
		p := NewPlayer("Cal")
		p.AddCards([]deck.Card{{Rank: deck.Three, Suit: deck.Diamonds}})
		before := append([]deck.Card{}, p.Hand...)

		err := p.RemoveCards([]deck.Card{{Rank: deck.Three, Suit: deck.Diamonds}, {Rank: deck.King, Suit: deck.Spades}})
		assert.ErrorIs(t, err, ErrCardNotOwned)
		utils.AssertDeepEqual(t, p.Hand, before)
	})
}

func TestPlayerPlayCards(t *testing.T) {
	t.Run("moves cards from hand to played area", func(t *testing.T) {
		p := NewPlayer("Ana")
		cards := []deck.Card{{Rank: deck.Queen, Suit: deck.Hearts}, {Rank: deck.Queen, Suit: deck.Clubs}}
		p.AddCards(cards)
		p.AddCards([]deck.Card{{Rank: deck.Two, Suit: deck.Spades}})

		err := p.PlayCards(cards)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, p.HandCount(), 1)
		utils.AssertDeepEqual(t, p.PlayedArea, cards)
	})

	t.Run("is atomic on failure", func(t *testing.T) {
		p := NewPlayer("Bo")
		p.AddCards([]deck.Card{{Rank: deck.Four, Suit: deck.Hearts}})

		err := p.PlayCards([]deck.Card{{Rank: deck.Four, Suit: deck.Hearts}, {Rank: deck.Four, Suit: deck.Clubs}})
		assert.ErrorIs(t, err, ErrCardNotOwned)
		utils.AssertEqual(t, p.HandCount(), 1)
		utils.AssertEqual(t, p.PlayedCount(), 0)
	})

	t.Run("clearing the played area touches nothing else", func(t *testing.T) {
		p := NewPlayer("Cal")
		p.AddCards([]deck.Card{{Rank: deck.Six, Suit: deck.Hearts}, {Rank: deck.Six, Suit: deck.Clubs}})
		utils.AssertNoError(t, p.PlayCards([]deck.Card{{Rank: deck.Six, Suit: deck.Hearts}}))

		p.ClearPlayedArea()
		utils.AssertEqual(t, p.PlayedCount(), 0)
		utils.AssertEqual(t, p.HandCount(), 1)
	})
}

func TestPlayerScore(t *testing.T) {
	p := NewPlayer("Di")
	p.AddCards([]deck.Card{
		{Rank: deck.Ace, Suit: deck.Spades},   // 3
		{Rank: deck.King, Suit: deck.Hearts},  // 3
		{Rank: deck.Five, Suit: deck.Clubs},   // 1
		{Rank: deck.Ten, Suit: deck.Diamonds}, // 1
	})

	utils.AssertEqual(t, p.Score(), 8)
}

func TestPlayerSortHand(t *testing.T) {
	p := NewPlayer("Ana")
	p.AddCards([]deck.Card{
		{Rank: deck.King, Suit: deck.Spades},
		{Rank: deck.Ace, Suit: deck.Hearts},
		{Rank: deck.King, Suit: deck.Hearts},
		{Rank: deck.Two, Suit: deck.Clubs},
	})
	p.SortHand()

	want := []deck.Card{
		{Rank: deck.Ace, Suit: deck.Hearts},
		{Rank: deck.Two, Suit: deck.Clubs},
		{Rank: deck.King, Suit: deck.Hearts},
		{Rank: deck.King, Suit: deck.Spades},
	}
	utils.AssertDeepEqual(t, p.Hand, want)
}
