package poker

import "fmt"

// Evaluate returns the rank of the best five card hand within 5 to 7 cards.
// Exactly five cards take the sorted fast path; six or seven are ranked from
// per-suit bitfields without enumerating subsets. Aces always play high.
func Evaluate(cards []Card) (HandRank, error) {
	var buf [7]Card
	hand, suited, err := prepare(cards, buf[:0], Card.High)
	if err != nil {
		return 0, err
	}
	if len(hand) == 5 {
		return Evaluate5([5]Card(hand)), nil
	}
	return rankFromMasks(suited), nil
}

// MustEvaluate evaluates cards and panics on error (for tests)
func MustEvaluate(cards []Card) HandRank {
	hr, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %v: %v", Cards(cards), err))
	}
	return hr
}

// prepare validates size, ranks, suits and uniqueness, copying the cards into
// buf through conv.
func prepare(cards []Card, buf []Card, conv func(Card) Card) ([]Card, [NumSuits]Bitfield, error) {
	var suited [NumSuits]Bitfield
	if len(cards) < 5 || len(cards) > 7 {
		return nil, suited, fmt.Errorf("%w: got %d cards, want 5 to 7", ErrInvalidHandSize, len(cards))
	}
	for _, c := range cards {
		if err := c.validate(); err != nil {
			return nil, suited, err
		}
		c = conv(c)
		if suited[c.Suit].Has(c.Rank) {
			return nil, suited, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		suited[c.Suit] = suited[c.Suit].Set(c.Rank)
		buf = append(buf, c)
	}
	return buf, suited, nil
}

// Evaluate5 ranks exactly five cards, which must be valid and distinct.
func Evaluate5(hand [5]Card) HandRank {
	var r [5]Rank
	flush := true
	for i, c := range hand {
		r[i] = c.Rank.High()
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}
	sortRanksDesc(r[:])
	high, straight := straightHigh5(&r)

	switch {
	case straight && flush:
		return StraightFlushRank(high)
	case r[0] == r[3]:
		return FourOfAKindRank(r[0], r[4])
	case r[1] == r[4]:
		return FourOfAKindRank(r[1], r[0])
	case r[0] == r[1] && r[3] == r[4] && r[2] == r[1]:
		return FullHouseRank(r[0], r[4])
	case r[0] == r[1] && r[3] == r[4] && r[2] == r[3]:
		return FullHouseRank(r[4], r[0])
	case flush:
		return FlushRank(r[0], r[1], r[2], r[3], r[4])
	case straight:
		return StraightRank(high)
	case r[0] == r[2]:
		return ThreeOfAKindRank(r[0], r[3], r[4])
	case r[1] == r[3]:
		return ThreeOfAKindRank(r[1], r[0], r[4])
	case r[2] == r[4]:
		return ThreeOfAKindRank(r[2], r[0], r[1])
	case r[0] == r[1] && r[2] == r[3]:
		return TwoPairRank(r[0], r[2], r[4])
	case r[0] == r[1] && r[3] == r[4]:
		return TwoPairRank(r[0], r[3], r[2])
	case r[1] == r[2] && r[3] == r[4]:
		return TwoPairRank(r[1], r[3], r[0])
	}

	for i := range 4 {
		if r[i] == r[i+1] {
			var kickers [3]Rank
			n := 0
			for j, k := range r {
				if j != i && j != i+1 {
					kickers[n] = k
					n++
				}
			}
			return PairRank(r[i], kickers[:]...)
		}
	}
	return HighCardRank(r[0], r[1], r[2], r[3], r[4])
}

// straightHigh5 checks five descending ranks for a straight, including the wheel.
func straightHigh5(r *[5]Rank) (Rank, bool) {
	if r[0] == Ace && r[1] == Five && r[2] == Four && r[3] == Three && r[4] == Two {
		return Five, true
	}
	for i := range 4 {
		if r[i] != r[i+1]+1 {
			return 0, false
		}
	}
	return r[0], true
}

func sortRanksDesc(r []Rank) {
	for i := 1; i < len(r); i++ {
		v := r[i]
		j := i - 1
		for j >= 0 && r[j] < v {
			r[j+1] = r[j]
			j--
		}
		r[j+1] = v
	}
}

// rankFromMasks ranks 5 to 7 distinct cards given as per-suit bitfields.
func rankFromMasks(suited [NumSuits]Bitfield) HandRank {
	var best HandRank
	for _, m := range suited {
		if m.Count() < 5 {
			continue
		}
		if high, ok := HighestStraight(m); ok {
			best = max(best, StraightFlushRank(high))
		}
	}
	if best != 0 {
		return best
	}

	_, pairs, trips, quads := RankSets(suited)
	all := suited[Clubs] | suited[Diamonds] | suited[Hearts] | suited[Spades]

	if quads != 0 {
		q := quads.Highest()
		return FourOfAKindRank(q, all.Clear(q).Highest())
	}

	if trips != 0 {
		t := trips.Highest()
		// A second set of trips fills the boat just like a pair.
		if filler := (pairs | trips.Clear(t)).Highest(); filler != 0 {
			return FullHouseRank(t, filler)
		}
	}

	for _, m := range suited {
		if m.Count() >= 5 {
			top := m.HighestN(5)
			best = max(best, FlushRank(top[0], top[1:]...))
		}
	}
	if best != 0 {
		return best
	}

	if high, ok := HighestStraight(all); ok {
		return StraightRank(high)
	}

	if trips != 0 {
		t := trips.Highest()
		return ThreeOfAKindRank(t, all.Clear(t).HighestN(2)...)
	}

	if pairs.Count() >= 2 {
		p := pairs.HighestN(2)
		return TwoPairRank(p[0], p[1], all.Without(p...).Highest())
	}

	if pairs != 0 {
		p := pairs.Highest()
		return PairRank(p, all.Clear(p).HighestN(3)...)
	}

	top := all.HighestN(5)
	return HighCardRank(top[0], top[1:]...)
}
