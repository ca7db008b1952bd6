package poker

// StartingHandRank ranks two hole cards on their own: a pocket pair beats any
// unpaired hand, otherwise the higher card and then the lower card decide.
// Suits are ignored.
func StartingHandRank(card1, card2 Card) HandRank {
	high, low := card1.Rank.High(), card2.Rank.High()
	if low > high {
		high, low = low, high
	}
	if high == low {
		return PairRank(high)
	}
	return HighCardRank(high, low)
}

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77+, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if !card1.Valid() || !card2.Valid() || card1.High() == card2.High() {
		return CategoryUnknown
	}

	big, small := card1.Rank.High(), card2.Rank.High()
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	isPair := small == big

	switch {
	case isPair && small >= Jack, small == King && big == Ace:
		return CategoryPremium
	case isPair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case isPair && small >= Seven, suited && small >= Ten:
		return CategoryMedium
	case isPair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
