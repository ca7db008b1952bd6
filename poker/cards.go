package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Rank is a card rank. Aces are stored as Ace (14) and only become AceLow (1)
// through an explicit conversion.
type Rank uint8

const (
	AceLow Rank = iota + 1
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
	Ace
)

// Suit is a card suit. Suits carry no ordering.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// AceMode selects how aces compare against other ranks.
type AceMode uint8

const (
	AcesHigh AceMode = iota
	AcesLow
)

const (
	rankChars = "A23456789TJQKA"
	suitChars = "CDHS"
)

var rankNames = [...]string{
	AceLow: "Ace",
	Two:    "Two",
	Three:  "Three",
	Four:   "Four",
	Five:   "Five",
	Six:    "Six",
	Seven:  "Seven",
	Eight:  "Eight",
	Nine:   "Nine",
	Ten:    "Ten",
	Jack:   "Jack",
	Queen:  "Queen",
	King:   "King",
	Ace:    "Ace",
}

var rankPlurals = [...]string{
	AceLow: "Aces",
	Two:    "Twos",
	Three:  "Threes",
	Four:   "Fours",
	Five:   "Fives",
	Six:    "Sixes",
	Seven:  "Sevens",
	Eight:  "Eights",
	Nine:   "Nines",
	Ten:    "Tens",
	Jack:   "Jacks",
	Queen:  "Queens",
	King:   "Kings",
	Ace:    "Aces",
}

// NewRank validates a numeric rank.
func NewRank(v int) (Rank, error) {
	if v < int(AceLow) || v > int(Ace) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, v)
	}
	return Rank(v), nil
}

// Valid reports whether r is within AceLow..Ace.
func (r Rank) Valid() bool {
	return r >= AceLow && r <= Ace
}

// Value returns the numeric value of r under the given ace mode.
func (r Rank) Value(mode AceMode) int {
	switch {
	case mode == AcesLow && r == Ace:
		return int(AceLow)
	case mode == AcesHigh && r == AceLow:
		return int(Ace)
	}
	return int(r)
}

// Low returns r with an ace mapped to AceLow.
func (r Rank) Low() Rank {
	if r == Ace {
		return AceLow
	}
	return r
}

// High returns r with an ace mapped to Ace.
func (r Rank) High() Rank {
	if r == AceLow {
		return Ace
	}
	return r
}

// String returns the single character notation for the rank.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankChars[r-1 : r]
}

// Name returns the rank's English name, e.g. "King".
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Plural returns the plural English name, e.g. "Kings".
func (r Rank) Plural() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankPlurals[r]
}

// CompareRanks returns -1, 0 or 1 comparing a against b under mode.
func CompareRanks(a, b Rank, mode AceMode) int {
	av, bv := a.Value(mode), b.Value(mode)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

// NewSuit validates a numeric suit.
func NewSuit(v int) (Suit, error) {
	if v < int(Clubs) || v > int(Spades) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, v)
	}
	return Suit(v), nil
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitChars[s : s+1]
}

// Card is an immutable (rank, suit) pair. The zero Card is invalid.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard builds a card, rejecting out of range ranks and suits.
func NewCard(rank Rank, suit Suit) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if err := c.validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c Card) validate() error {
	if !c.Rank.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRank, c.Rank)
	}
	if !c.Suit.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSuit, c.Suit)
	}
	return nil
}

// String returns the two character notation, e.g. "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by rank only.
func (c Card) Compare(other Card, mode AceMode) int {
	return CompareRanks(c.Rank, other.Rank, mode)
}

// Low returns a copy of c with an ace demoted to AceLow.
func (c Card) Low() Card {
	return Card{Rank: c.Rank.Low(), Suit: c.Suit}
}

// High returns a copy of c with AceLow promoted back to Ace.
func (c Card) High() Card {
	return Card{Rank: c.Rank.High(), Suit: c.Suit}
}

// ParseCard parses two character notation such as "AS" or "tc".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: invalid card string %q", ErrParse, s)
	}

	var rank Rank
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: invalid rank %q", ErrParse, s[0])
	}

	var suit Suit
	switch s[1] {
	case 'C', 'c':
		suit = Clubs
	case 'D', 'd':
		suit = Diamonds
	case 'H', 'h':
		suit = Hearts
	case 'S', 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: invalid suit %q", ErrParse, s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Cards is an ordered collection of cards.
type Cards []Card

// ParseCards parses whitespace separated cards ("AS KD 2C"). A single run of
// concatenated cards ("ASKD2C") is accepted as well.
func ParseCards(s string) (Cards, error) {
	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) > 2 {
		run := fields[0]
		if len(run)%2 != 0 {
			return nil, fmt.Errorf("%w: invalid card string length %d", ErrParse, len(run))
		}
		fields = fields[:0]
		for i := 0; i < len(run); i += 2 {
			fields = append(fields, run[i:i+2])
		}
	}

	cards := make(Cards, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) Cards {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// String joins the cards with single spaces.
func (cs Cards) String() string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Low returns a copy with every ace demoted to AceLow.
func (cs Cards) Low() Cards {
	out := make(Cards, len(cs))
	for i, c := range cs {
		out[i] = c.Low()
	}
	return out
}

// High returns a copy with every AceLow promoted to Ace.
func (cs Cards) High() Cards {
	out := make(Cards, len(cs))
	for i, c := range cs {
		out[i] = c.High()
	}
	return out
}

// Sorted returns a copy ordered by descending rank under mode.
func (cs Cards) Sorted(mode AceMode) Cards {
	out := slices.Clone(cs)
	slices.SortStableFunc(out, func(a, b Card) int {
		return b.Compare(a, mode)
	})
	return out
}

// Contains reports whether c is present.
func (cs Cards) Contains(c Card) bool {
	return slices.Contains(cs, c)
}

// Concat returns a new slice holding all cards of cs followed by others.
func (cs Cards) Concat(others ...Card) Cards {
	out := make(Cards, 0, len(cs)+len(others))
	out = append(out, cs...)
	return append(out, others...)
}
