package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the category name.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// maxKickers is the number of tie-breaking kickers each category keeps.
var maxKickers = [...]int{
	HighCard:      4,
	Pair:          3,
	TwoPair:       1,
	ThreeOfAKind:  2,
	Straight:      0,
	Flush:         4,
	FullHouse:     0,
	FourOfAKind:   1,
	StraightFlush: 0,
}

func usesSecondary(t HandType) bool {
	return t == TwoPair || t == FullHouse
}

const (
	typeShift      = 24
	primaryShift   = 20
	secondaryShift = 16
	kickerBits     = 4
	nibble         = 0xf
)

// HandRank packs a hand's category, primary rank, secondary rank and up to
// four kickers into one integer. Higher values are stronger hands, so two
// ranks compare with plain integer comparison.
//
//	bits 24-27 type | 20-23 primary | 16-19 secondary | 12-15, 8-11, 4-7, 0-3 kickers
type HandRank uint32

func pack(t HandType, primary, secondary Rank, kickers []Rank) HandRank {
	v := HandRank(t)<<typeShift | HandRank(primary)<<primaryShift | HandRank(secondary)<<secondaryShift
	if n := maxKickers[t]; n > 0 && len(kickers) > 0 {
		var buf [8]Rank
		sorted := append(buf[:0], kickers...)
		slices.SortFunc(sorted, func(a, b Rank) int { return int(b) - int(a) })
		if len(sorted) > n {
			sorted = sorted[:n]
		}
		for i, k := range sorted {
			v |= HandRank(k) << (kickerBits * (3 - i))
		}
	}
	return v
}

// StraightFlushRank builds a straight flush topped by high.
func StraightFlushRank(high Rank) HandRank {
	return pack(StraightFlush, high, 0, nil)
}

// FourOfAKindRank builds quads with a single kicker.
func FourOfAKindRank(quad Rank, kickers ...Rank) HandRank {
	return pack(FourOfAKind, quad, 0, kickers)
}

// FullHouseRank builds a full house of trips full of pair.
func FullHouseRank(trips, pair Rank) HandRank {
	return pack(FullHouse, trips, pair, nil)
}

// FlushRank builds a flush from its highest rank and the four below it.
func FlushRank(high Rank, kickers ...Rank) HandRank {
	return pack(Flush, high, 0, kickers)
}

// StraightRank builds a straight topped by high.
func StraightRank(high Rank) HandRank {
	return pack(Straight, high, 0, nil)
}

// ThreeOfAKindRank builds trips with two kickers.
func ThreeOfAKindRank(trips Rank, kickers ...Rank) HandRank {
	return pack(ThreeOfAKind, trips, 0, kickers)
}

// TwoPairRank builds two pair. The pairs may be given in either order; the
// higher one becomes the primary rank.
func TwoPairRank(a, b Rank, kickers ...Rank) HandRank {
	if b > a {
		a, b = b, a
	}
	return pack(TwoPair, a, b, kickers)
}

// PairRank builds a pair with three kickers.
func PairRank(pair Rank, kickers ...Rank) HandRank {
	return pack(Pair, pair, 0, kickers)
}

// HighCardRank builds a high card hand from its top rank and four kickers.
func HighCardRank(high Rank, kickers ...Rank) HandRank {
	return pack(HighCard, high, 0, kickers)
}

// NewHandRank validates its inputs before packing them. Secondary is ignored
// unless the category uses one; surplus kickers are dropped.
func NewHandRank(t HandType, primary, secondary Rank, kickers ...Rank) (HandRank, error) {
	if t > StraightFlush {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHandType, t)
	}
	if !primary.Valid() {
		return 0, fmt.Errorf("primary: %w: %d", ErrInvalidRank, primary)
	}
	if usesSecondary(t) {
		if !secondary.Valid() {
			return 0, fmt.Errorf("secondary: %w: %d", ErrInvalidRank, secondary)
		}
	} else {
		secondary = 0
	}
	for _, k := range kickers {
		if !k.Valid() {
			return 0, fmt.Errorf("kicker: %w: %d", ErrInvalidRank, k)
		}
	}
	if t == TwoPair {
		return TwoPairRank(primary, secondary, kickers...), nil
	}
	return pack(t, primary, secondary, kickers), nil
}

// Type returns the hand category.
func (hr HandRank) Type() HandType {
	return HandType(hr >> typeShift & nibble)
}

// Primary returns the rank that defines the category, e.g. the quad rank or the higher pair.
func (hr HandRank) Primary() Rank {
	return Rank(hr >> primaryShift & nibble)
}

// Secondary returns the pair of a full house or the lower pair of two pair, or 0.
func (hr HandRank) Secondary() Rank {
	return Rank(hr >> secondaryShift & nibble)
}

// Kickers returns the kicker ranks from highest to lowest.
func (hr HandRank) Kickers() []Rank {
	var out []Rank
	for i := range maxKickers[hr.Type()] {
		k := Rank(hr >> (kickerBits * (3 - i)) & nibble)
		if k == 0 {
			break
		}
		out = append(out, k)
	}
	return out
}

// Compare returns 1 if hr beats other, -1 if it loses and 0 for a tie.
func (hr HandRank) Compare(other HandRank) int {
	return CompareHands(hr, other)
}

// String returns a description such as "Full House Kings full of Jacks".
func (hr HandRank) String() string {
	p, s := hr.Primary(), hr.Secondary()
	switch hr.Type() {
	case HighCard:
		return "High Card " + p.Name()
	case Pair:
		return "Pair of " + p.Plural()
	case TwoPair:
		return "Two Pair " + p.Plural() + " and " + s.Plural()
	case ThreeOfAKind:
		return "Three of a Kind " + p.Plural()
	case Straight:
		return "Straight " + p.Name() + " high"
	case Flush:
		return "Flush " + p.Name() + " high"
	case FullHouse:
		return "Full House " + p.Plural() + " full of " + s.Plural()
	case FourOfAKind:
		return "Four of a Kind " + p.Plural()
	case StraightFlush:
		if p == Ace {
			return "Royal Flush"
		}
		return "Straight Flush " + p.Name() + " high"
	default:
		return "Unknown"
	}
}

// Ranks returns the primary, secondary and kicker ranks as notation, e.g. "K J".
func (hr HandRank) Ranks() string {
	parts := []string{hr.Primary().String()}
	if s := hr.Secondary(); s != 0 {
		parts = append(parts, s.String())
	}
	for _, k := range hr.Kickers() {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, " ")
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}
