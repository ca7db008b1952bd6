package poker

import "iter"

// Combinations yields every k-card subset of cards in lexicographic index
// order. The yielded slice is reused between iterations; copy it to keep it.
func Combinations(cards []Card, k int) iter.Seq[[]Card] {
	return func(yield func([]Card) bool) {
		n := len(cards)
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		combo := make([]Card, k)
		for {
			for i, j := range idx {
				combo[i] = cards[j]
			}
			if !yield(combo) {
				return
			}
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// omahaHands yields every five card hand made of exactly two hole cards and
// exactly three board cards.
func omahaHands(hole, board []Card) iter.Seq[[5]Card] {
	return func(yield func([5]Card) bool) {
		var hand [5]Card
		for h := range Combinations(hole, 2) {
			hand[0], hand[1] = h[0], h[1]
			for b := range Combinations(board, 3) {
				hand[2], hand[3], hand[4] = b[0], b[1], b[2]
				if !yield(hand) {
					return
				}
			}
		}
	}
}

// CountCombinations returns n choose k.
func CountCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	c := 1
	for i := range k {
		c = c * (n - i) / (i + 1)
	}
	return c
}
