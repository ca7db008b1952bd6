package poker

// EightLowPossible reports whether the board holds at least three distinct
// ranks of eight or lower, the minimum for an eight-or-better low in Omaha
// style games.
func EightLowPossible(board Cards) bool {
	return DistinctLowRanks(board) >= 3
}

// DistinctLowRanks counts the different ranks of eight or lower, aces
// included.
func DistinctLowRanks(cards Cards) int {
	var lows Bitfield
	for _, c := range cards {
		if r := c.Rank.Low(); r <= Eight {
			lows = lows.Set(r)
		}
	}
	return lows.Count()
}

// Paired reports whether any rank appears more than once.
func Paired(cards Cards) bool {
	var seen Bitfield
	for _, c := range cards {
		r := c.Rank.High()
		if seen.Has(r) {
			return true
		}
		seen = seen.Set(r)
	}
	return false
}

// FlushPossible reports whether three or more cards share a suit.
func FlushPossible(board Cards) bool {
	var counts [NumSuits]int
	for _, c := range board {
		if c.Suit.Valid() {
			counts[c.Suit]++
			if counts[c.Suit] >= 3 {
				return true
			}
		}
	}
	return false
}
