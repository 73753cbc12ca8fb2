package deck

import "fmt"

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Next returns the rank that follows r, wrapping from King back to Ace.
func (r Rank) Next() Rank {
	return (r + 1) % Rank(len(rankNames))
}

// PointValue returns the scoring value of the rank. Face cards and the
// ace are worth 3 points, all other ranks 1.
func (r Rank) PointValue() int {
	switch r {
	case Ace, Jack, Queen, King:
		return 3
	}
	return 1
}

// ParseRank maps a display symbol ("A", "2" ... "10", "J", "Q", "K") to
// its Rank.
func ParseRank(symbol string) (Rank, error) {
	for i, name := range rankNames {
		if name == symbol {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", symbol)
}

// Ranks returns all thirteen ranks in cyclic order, starting at Ace.
func Ranks() []Rank {
	ranks := make([]Rank, len(rankNames))
	for i := range rankNames {
		ranks[i] = Rank(i)
	}
	return ranks
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"♥", "♦", "♣", "♠"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Card represents a playing card. Cards are plain values: two cards with
// the same rank and suit are interchangeable, and duplicates exist when
// more than one deck is in play.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank, suit int) (Card, error) {
	if rank < 0 || rank > int(King) || suit < 0 || suit > int(Spades) {
		return Card{}, fmt.Errorf("rank %d suit %d out of range", rank, suit)
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

// Matches reports whether the card satisfies a declared rank. The ace is
// a universal wildcard and satisfies any declaration.
func (c Card) Matches(declared Rank) bool {
	return c.Rank == declared || c.Rank == Ace
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
