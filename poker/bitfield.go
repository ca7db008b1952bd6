package poker

import "math/bits"

// Bitfield holds one bit per rank: bit r is set when rank r is present.
// AceLow uses bit 1 and Ace bit 14, so a field can represent either ace mode.
type Bitfield uint16

// wheelMask is A-2-3-4-5 with the ace in its high position.
const wheelMask Bitfield = 0x403c

// Set returns b with rank r added.
func (b Bitfield) Set(r Rank) Bitfield { return b | 1<<r }

// Clear returns b with rank r removed.
func (b Bitfield) Clear(r Rank) Bitfield { return b &^ (1 << r) }

// Has reports whether rank r is present.
func (b Bitfield) Has(r Rank) bool { return b&(1<<r) != 0 }

// HasAll reports whether every bit of mask is present.
func (b Bitfield) HasAll(mask Bitfield) bool { return b&mask == mask }

// Count returns the number of ranks present.
func (b Bitfield) Count() int { return bits.OnesCount16(uint16(b)) }

// Without returns b minus the given ranks.
func (b Bitfield) Without(ranks ...Rank) Bitfield {
	for _, r := range ranks {
		b = b.Clear(r)
	}
	return b
}

// Highest returns the highest rank present, or 0 when empty.
func (b Bitfield) Highest() Rank {
	if b == 0 {
		return 0
	}
	return Rank(bits.Len16(uint16(b)) - 1)
}

// Lowest returns the lowest rank present, or 0 when empty.
func (b Bitfield) Lowest() Rank {
	if b == 0 {
		return 0
	}
	return Rank(bits.TrailingZeros16(uint16(b)))
}

// HighestN returns up to n ranks in descending order.
func (b Bitfield) HighestN(n int) []Rank {
	out := make([]Rank, 0, n)
	for len(out) < n && b != 0 {
		r := b.Highest()
		out = append(out, r)
		b = b.Clear(r)
	}
	return out
}

// LowestN returns up to n ranks in ascending order.
func (b Bitfield) LowestN(n int) []Rank {
	out := make([]Rank, 0, n)
	for len(out) < n && b != 0 {
		r := b.Lowest()
		out = append(out, r)
		b = b.Clear(r)
	}
	return out
}

// Ranks returns every rank present in descending order.
func (b Bitfield) Ranks() []Rank {
	return b.HighestN(b.Count())
}

// EncodeBySuit returns one bitfield per suit.
func EncodeBySuit(cards []Card) [NumSuits]Bitfield {
	var suited [NumSuits]Bitfield
	for _, c := range cards {
		suited[c.Suit] |= 1 << c.Rank
	}
	return suited
}

// EncodeCombined returns the union of all suited bitfields.
func EncodeCombined(cards []Card) Bitfield {
	var b Bitfield
	for _, c := range cards {
		b |= 1 << c.Rank
	}
	return b
}

// RankCounts returns the number of cards held at each rank.
func RankCounts(cards []Card) [Ace + 1]uint8 {
	var counts [Ace + 1]uint8
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// RankSets splits the ranks of four suited bitfields by multiplicity.
func RankSets(suited [NumSuits]Bitfield) (singles, pairs, trips, quads Bitfield) {
	c, d, h, s := suited[Clubs], suited[Diamonds], suited[Hearts], suited[Spades]
	all := c | d | h | s
	quads = c & d & h & s
	odd := c ^ d ^ h ^ s
	trips = odd & ((c & d) | (h & s))
	pairs = all ^ odd ^ quads
	singles = odd ^ trips
	return singles, pairs, trips, quads
}

type straightMask struct {
	high Rank
	mask Bitfield
}

// straightMasks is ordered from the best straight down to the wheel.
var straightMasks = [...]straightMask{
	{Ace, 0x7c00},
	{King, 0x3e00},
	{Queen, 0x1f00},
	{Jack, 0x0f80},
	{Ten, 0x07c0},
	{Nine, 0x03e0},
	{Eight, 0x01f0},
	{Seven, 0x00f8},
	{Six, 0x007c},
	{Five, 0x003e},
	{Five, wheelMask},
}

// HighestStraight returns the top rank of the best straight in b.
func HighestStraight(b Bitfield) (Rank, bool) {
	for _, s := range straightMasks {
		if b.HasAll(s.mask) {
			return s.high, true
		}
	}
	return 0, false
}
