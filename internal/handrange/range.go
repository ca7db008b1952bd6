// Package handrange parses two-card hand groups written in standard range
// notation and samples concrete hole cards from them.
package handrange

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/pokerrank/poker"
)

// ErrNoCompatibleCombo is returned by Sample when every combo in the range
// collides with a dead card.
var ErrNoCompatibleCombo = errors.New("no compatible combo in range")

// Combo is a concrete pair of hole cards, higher card first. Pairs put the
// higher suit first.
type Combo [2]poker.Card

func newCombo(a, b poker.Card) Combo {
	c := a.Compare(b, poker.AcesHigh)
	if c < 0 || (c == 0 && a.Suit < b.Suit) {
		a, b = b, a
	}
	return Combo{a, b}
}

// Cards returns the combo as a card slice.
func (c Combo) Cards() poker.Cards {
	return poker.Cards{c[0], c[1]}
}

func (c Combo) String() string {
	return c[0].String() + c[1].String()
}

// Range is a set of hole card combos.
type Range struct {
	notation string
	combos   map[Combo]struct{}
	ordered  []Combo
}

// Parse builds a range from comma separated notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "KTs+", "22-66"
func Parse(notation string) (*Range, error) {
	r := &Range{
		notation: strings.TrimSpace(notation),
		combos:   make(map[Combo]struct{}),
	}

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addPart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	if len(r.combos) == 0 {
		return nil, fmt.Errorf("%w: empty range %q", poker.ErrParse, notation)
	}

	r.ordered = make([]Combo, 0, len(r.combos))
	for c := range r.combos {
		r.ordered = append(r.ordered, c)
	}
	slices.SortFunc(r.ordered, func(a, b Combo) int {
		if c := b[0].Compare(a[0], poker.AcesHigh); c != 0 {
			return c
		}
		if c := b[1].Compare(a[1], poker.AcesHigh); c != 0 {
			return c
		}
		if a[0].Suit != b[0].Suit {
			return int(b[0].Suit) - int(a[0].Suit)
		}
		return int(b[1].Suit) - int(a[1].Suit)
	})

	return r, nil
}

// MustParse is like Parse but panics on error.
func MustParse(notation string) *Range {
	r, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// IsNotation reports whether s looks like range notation rather than a list
// of concrete cards.
func IsNotation(s string) bool {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",+-") {
		return true
	}
	if _, err := poker.ParseCards(s); err == nil {
		return false
	}
	_, err := Parse(s)
	return err == nil
}

func (r *Range) addPart(part string) error {
	switch {
	case strings.HasSuffix(part, "+"):
		return r.addPlus(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return r.addDash(part)
	}

	h, err := parseHand(part)
	if err != nil {
		return err
	}
	r.addHand(h)
	return nil
}

// hand is one notation token such as "AKs", "T9" or "77".
type hand struct {
	high, low poker.Rank
	suited    bool
	offsuit   bool
}

func (h hand) pair() bool { return h.high == h.low }

func parseHand(s string) (hand, error) {
	if len(s) < 2 || len(s) > 3 {
		return hand{}, fmt.Errorf("%w: invalid notation length %q", poker.ErrParse, s)
	}

	r1, ok1 := parseRank(s[0])
	r2, ok2 := parseRank(s[1])
	if !ok1 || !ok2 {
		return hand{}, fmt.Errorf("%w: invalid rank in %q", poker.ErrParse, s)
	}
	h := hand{high: max(r1, r2), low: min(r1, r2), suited: true, offsuit: true}

	if len(s) == 2 {
		return h, nil
	}
	if h.pair() {
		return hand{}, fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier %q", poker.ErrParse, s)
	}

	switch s[2] {
	case 's', 'S':
		h.offsuit = false
	case 'o', 'O':
		h.suited = false
	default:
		return hand{}, fmt.Errorf("%w: invalid modifier %q", poker.ErrParse, s[2])
	}
	return h, nil
}

// addPlus handles "TT+" (all pairs TT and higher) and "ATs+" (kicker climbs
// up to one below the high card).
func (r *Range) addPlus(base string) error {
	h, err := parseHand(base)
	if err != nil {
		return err
	}

	if h.pair() {
		for rank := h.high; rank <= poker.Ace; rank++ {
			r.addPair(rank)
		}
		return nil
	}

	for rank := h.low; rank < h.high; rank++ {
		h.low = rank
		r.addHand(h)
	}
	return nil
}

// addDash handles "22-66" and "A5s-A2s".
func (r *Range) addDash(notation string) error {
	start, end, ok := strings.Cut(notation, "-")
	if !ok || strings.Contains(end, "-") {
		return fmt.Errorf("%w: invalid dash range %q", poker.ErrParse, notation)
	}

	from, err := parseHand(strings.TrimSpace(start))
	if err != nil {
		return err
	}
	to, err := parseHand(strings.TrimSpace(end))
	if err != nil {
		return err
	}

	if from.pair() && to.pair() {
		for rank := min(from.high, to.high); rank <= max(from.high, to.high); rank++ {
			r.addPair(rank)
		}
		return nil
	}

	if from.pair() || to.pair() || from.high != to.high || from.suited != to.suited || from.offsuit != to.offsuit {
		return fmt.Errorf("%w: unsupported range format %q", poker.ErrParse, notation)
	}

	h := from
	for rank := min(from.low, to.low); rank <= max(from.low, to.low); rank++ {
		h.low = rank
		r.addHand(h)
	}
	return nil
}

func (r *Range) addHand(h hand) {
	if h.pair() {
		r.addPair(h.high)
		return
	}
	for s1 := poker.Clubs; s1 <= poker.Spades; s1++ {
		for s2 := poker.Clubs; s2 <= poker.Spades; s2++ {
			if (s1 == s2 && !h.suited) || (s1 != s2 && !h.offsuit) {
				continue
			}
			r.add(poker.Card{Rank: h.high, Suit: s1}, poker.Card{Rank: h.low, Suit: s2})
		}
	}
}

// addPair adds all 6 combinations of a pocket pair.
func (r *Range) addPair(rank poker.Rank) {
	for s1 := poker.Clubs; s1 <= poker.Spades; s1++ {
		for s2 := s1 + 1; s2 <= poker.Spades; s2++ {
			r.add(poker.Card{Rank: rank, Suit: s1}, poker.Card{Rank: rank, Suit: s2})
		}
	}
}

func (r *Range) add(a, b poker.Card) {
	r.combos[newCombo(a, b)] = struct{}{}
}

// String returns the notation the range was parsed from.
func (r *Range) String() string {
	return r.notation
}

// Size returns the number of combos in the range.
func (r *Range) Size() int {
	return len(r.ordered)
}

// Combos returns every combo, strongest cards first.
func (r *Range) Combos() []Combo {
	return slices.Clone(r.ordered)
}

// Contains reports whether the two cards form a combo in the range.
func (r *Range) Contains(a, b poker.Card) bool {
	_, ok := r.combos[newCombo(a.High(), b.High())]
	return ok
}

// Sample draws a combo uniformly from those that share no card with dead.
func (r *Range) Sample(rng *rand.Rand, dead poker.Cards) (Combo, error) {
	compatible := func(c Combo) bool {
		return !dead.Contains(c[0]) && !dead.Contains(c[1])
	}

	// Most draws hit on the first few tries; fall back to filtering when the
	// dead cards cover much of the range.
	for range 8 {
		c := r.ordered[rng.IntN(len(r.ordered))]
		if compatible(c) {
			return c, nil
		}
	}

	live := make([]Combo, 0, len(r.ordered))
	for _, c := range r.ordered {
		if compatible(c) {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return Combo{}, fmt.Errorf("%w: %s", ErrNoCompatibleCombo, r.notation)
	}
	return live[rng.IntN(len(live))], nil
}

func parseRank(c byte) (poker.Rank, bool) {
	card, err := poker.ParseCard(string([]byte{c, 'c'}))
	if err != nil {
		return 0, false
	}
	return card.Rank, true
}
