package deck

import "math/rand"

// deckSize is the number of cards in a single standard deck.
const deckSize = 52

// Deck represents one or more decks' worth of cards
type Deck []Card

// New creates numDecks standard decks' worth of cards as a single
// undealt pile.
func New(numDecks int) Deck {
	cards := make(Deck, 0, numDecks*deckSize)
	for i := 0; i < numDecks; i++ {
		for suit := range suitNames {
			for rank := range rankNames {
				cards = append(cards, Card{Rank: Rank(rank), Suit: Suit(suit)})
			}
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards using the supplied randomness
// source, so deals are reproducible under a fixed seed.
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
