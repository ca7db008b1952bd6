package poker

// LowRank ranks a hand for the low half of a hi/lo pot. Aces play as AceLow,
// straights and flushes are ignored, and a lower value is a better hand.
type LowRank HandRank

// EvaluateLow returns the best low hand within 5 to 7 cards.
func EvaluateLow(cards []Card) (LowRank, error) {
	var buf [7]Card
	hand, _, err := prepare(cards, buf[:0], Card.Low)
	if err != nil {
		return 0, err
	}
	return lowFromCounts(RankCounts(hand)), nil
}

// lowFromCounts picks the lowest five cards, pairing only when fewer than
// five distinct ranks are available. Counts must use AceLow for aces.
func lowFromCounts(counts [Ace + 1]uint8) LowRank {
	// atLeast[n] holds the ranks seen n or more times.
	var atLeast [5]Bitfield
	for r := AceLow; r <= King; r++ {
		for n := 1; n <= int(min(counts[r], 4)); n++ {
			atLeast[n] = atLeast[n].Set(r)
		}
	}
	distinct := atLeast[1]

	switch distinct.Count() {
	case 5, 6, 7:
		low := distinct.LowestN(5)
		return LowRank(HighCardRank(low[4], low[:4]...))
	case 4:
		p := atLeast[2].Lowest()
		return LowRank(PairRank(p, distinct.Clear(p).LowestN(3)...))
	case 3:
		if atLeast[2].Count() >= 2 {
			p := atLeast[2].LowestN(2)
			return LowRank(TwoPairRank(p[0], p[1], distinct.Without(p...).Lowest()))
		}
		t := atLeast[3].Lowest()
		return LowRank(ThreeOfAKindRank(t, distinct.Clear(t).LowestN(2)...))
	}

	for _, t := range atLeast[3].LowestN(2) {
		if pair := atLeast[2].Clear(t); pair != 0 {
			return LowRank(FullHouseRank(t, pair.Lowest()))
		}
	}
	q := atLeast[4].Lowest()
	return LowRank(FourOfAKindRank(q, distinct.Clear(q).Lowest()))
}

// Type returns the category of the low hand.
func (l LowRank) Type() HandType { return HandRank(l).Type() }

// Primary returns the highest unpaired rank for a high card low, otherwise the
// rank defining the category.
func (l LowRank) Primary() Rank { return HandRank(l).Primary() }

// Secondary returns the secondary rank, or 0.
func (l LowRank) Secondary() Rank { return HandRank(l).Secondary() }

// Kickers returns the kickers from highest to lowest.
func (l LowRank) Kickers() []Rank { return HandRank(l).Kickers() }

// IsEightOrBetter reports whether the hand is five unpaired ranks no higher than eight.
func (l LowRank) IsEightOrBetter() bool {
	return l.Type() == HighCard && l.Primary() <= Eight
}

// Compare returns 1 if l is the better (lower) hand, -1 if worse and 0 for a tie.
func (l LowRank) Compare(other LowRank) int {
	return CompareHands(HandRank(other), HandRank(l))
}

// String describes the hand, e.g. "8-7-4-3-A low".
func (l LowRank) String() string {
	hr := HandRank(l)
	if hr.Type() != HighCard {
		return hr.String()
	}
	s := hr.Primary().String()
	for _, k := range hr.Kickers() {
		s += "-" + k.String()
	}
	return s + " low"
}
