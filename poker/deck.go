package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: FullDeck(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// NewOrderedDeck creates a deck in FullDeck order. Nothing is shuffled until
// Shuffle is called.
func NewOrderedDeck(rng *rand.Rand) *Deck {
	return &Deck{
		cards: FullDeck(),
		rng:   rng,
	}
}

// FullDeck returns all 52 cards, clubs first, each suit from Two to Ace.
func FullDeck() Cards {
	cards := make(Cards, 0, DeckSize)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Clone returns an independent copy sharing the RNG.
func (d *Deck) Clone() *Deck {
	return &Deck{
		cards: append(Cards(nil), d.cards...),
		next:  d.next,
		rng:   d.rng,
	}
}

// WithRand returns a copy of the deck drawing randomness from rng.
func (d *Deck) WithRand(rng *rand.Rand) *Deck {
	c := d.Clone()
	c.rng = rng
	return c
}

// Remove takes the given cards out of the deck, e.g. known hole cards or a
// fixed board. Dealt cards are returned to the deck first.
func (d *Deck) Remove(cards ...Card) error {
	d.next = 0
	for _, c := range cards {
		i := -1
		for j, dc := range d.cards {
			if dc == c.High() {
				i = j
				break
			}
		}
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrCardNotInDeck, c)
		}
		d.cards = append(d.cards[:i], d.cards[i+1:]...)
	}
	return nil
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. The returned slice aliases the deck and
// is only valid until the next Shuffle.
func (d *Deck) Deal(n int) (Cards, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughCards, n, d.CardsRemaining())
	}
	cards := d.cards[d.next : d.next+n : d.next+n]
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: deck is empty", ErrNotEnoughCards)
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Size returns the number of cards the deck holds, dealt or not.
func (d *Deck) Size() int {
	return len(d.cards)
}
