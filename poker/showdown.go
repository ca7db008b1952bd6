package poker

import "fmt"

// CardSet is one player's cards at showdown: private hole cards plus the
// shared board. Stud hands leave Board empty.
type CardSet struct {
	Hole  Cards
	Board Cards
}

// All returns hole and board cards in a single new slice.
func (cs CardSet) All() Cards {
	return cs.Hole.Concat(cs.Board...)
}

func (cs CardSet) String() string {
	if len(cs.Board) == 0 {
		return cs.Hole.String()
	}
	return cs.Hole.String() + " | " + cs.Board.String()
}

// WithBoard pairs every hole card set with the same board.
func WithBoard(board Cards, holes ...Cards) []CardSet {
	sets := make([]CardSet, len(holes))
	for i, h := range holes {
		sets[i] = CardSet{Hole: h, Board: board}
	}
	return sets
}

// validateCards checks that every card is valid and appears once.
func validateCards(cards []Card) error {
	var suited [NumSuits]Bitfield
	for _, c := range cards {
		if err := c.validate(); err != nil {
			return err
		}
		c = c.High()
		if suited[c.Suit].Has(c.Rank) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		suited[c.Suit] = suited[c.Suit].Set(c.Rank)
	}
	return nil
}

func (g Game) checkTwoPlusThree(cs CardSet) error {
	if len(cs.Hole) < 2 || len(cs.Board) < 3 {
		return fmt.Errorf("%w: %s needs 2 hole and 3 board cards, got %d and %d",
			ErrInsufficientCards, g, len(cs.Hole), len(cs.Board))
	}
	return validateCards(cs.All())
}

// BestHigh returns the best high rank the card set can make in game g.
func (g Game) BestHigh(cs CardSet) (HandRank, error) {
	switch g.Strategy() {
	case TwoPlusThree:
		if err := g.checkTwoPlusThree(cs); err != nil {
			return 0, err
		}
		var best HandRank
		for hand := range omahaHands(cs.Hole, cs.Board) {
			best = max(best, Evaluate5(hand))
		}
		return best, nil
	case TwoHoleOnly:
		if len(cs.Hole) != 2 {
			if len(cs.Hole) < 2 {
				return 0, fmt.Errorf("%w: %s needs 2 hole cards, got %d", ErrInsufficientCards, g, len(cs.Hole))
			}
			return 0, fmt.Errorf("%w: %s takes 2 hole cards, got %d", ErrInvalidHandSize, g, len(cs.Hole))
		}
		if err := validateCards(cs.Hole); err != nil {
			return 0, err
		}
		return StartingHandRank(cs.Hole[0], cs.Hole[1]), nil
	default:
		pool := cs.All()
		if len(pool) < 5 {
			return 0, fmt.Errorf("%w: got %d cards, want at least 5", ErrInsufficientCards, len(pool))
		}
		return Evaluate(pool)
	}
}

// BestLow returns the best low rank the card set can make in game g and
// whether it qualifies under the game's low rule.
func (g Game) BestLow(cs CardSet) (LowRank, bool, error) {
	if !g.HasLow() {
		return 0, false, fmt.Errorf("%w: %s", ErrNoLowGame, g)
	}

	var low LowRank
	switch g.Strategy() {
	case TwoPlusThree:
		if err := g.checkTwoPlusThree(cs); err != nil {
			return 0, false, err
		}
		for hand := range omahaHands(cs.Hole, cs.Board) {
			for i := range hand {
				hand[i] = hand[i].Low()
			}
			l := lowFromCounts(RankCounts(hand[:]))
			if low == 0 || l < low {
				low = l
			}
		}
	default:
		pool := cs.All()
		if len(pool) < 5 {
			return 0, false, fmt.Errorf("%w: got %d cards, want at least 5", ErrInsufficientCards, len(pool))
		}
		var err error
		if low, err = EvaluateLow(pool); err != nil {
			return 0, false, err
		}
	}
	return low, g.LowRule() != EightOrBetter || low.IsEightOrBetter(), nil
}

// Result holds the winners of one side of a showdown. Winners are indexes
// into the hands passed in; more than one means a split.
type Result struct {
	Winners []int
	Rank    HandRank
}

// LowResult holds the winners of the low half. When no hand qualifies
// Qualified is false and Winners is empty.
type LowResult struct {
	Winners   []int
	Rank      LowRank
	Qualified bool
}

// BestHand finds the hands holding the best high rank in game g.
func BestHand(g Game, hands []CardSet) (Result, error) {
	if len(hands) == 0 {
		return Result{}, ErrEmptyHandSet
	}
	var res Result
	for i, h := range hands {
		rank, err := g.BestHigh(h)
		if err != nil {
			return Result{}, fmt.Errorf("hand %d: %w", i, err)
		}
		switch cmp := CompareHands(rank, res.Rank); {
		case len(res.Winners) == 0 || cmp > 0:
			res.Winners = append(res.Winners[:0], i)
			res.Rank = rank
		case cmp == 0:
			res.Winners = append(res.Winners, i)
		}
	}
	return res, nil
}

// BestLowHand finds the hands holding the best qualifying low in game g.
// Hands that do not qualify are skipped; if none qualify the result reports
// no low winner rather than an error.
func BestLowHand(g Game, hands []CardSet) (LowResult, error) {
	if len(hands) == 0 {
		return LowResult{}, ErrEmptyHandSet
	}
	var res LowResult
	for i, h := range hands {
		low, ok, err := g.BestLow(h)
		if err != nil {
			return LowResult{}, fmt.Errorf("hand %d: %w", i, err)
		}
		if !ok {
			continue
		}
		switch cmp := low.Compare(res.Rank); {
		case !res.Qualified || cmp > 0:
			res.Winners = append(res.Winners[:0], i)
			res.Rank = low
			res.Qualified = true
		case cmp == 0:
			res.Winners = append(res.Winners, i)
		}
	}
	return res, nil
}

// ShowdownResult is the outcome of one deal.
type ShowdownResult struct {
	High Result
	// Low is nil for games without a low half.
	Low *LowResult
	// Scooper is the index of the hand taking the whole pot in a hi/lo game,
	// or -1.
	Scooper int
}

// Showdown ranks every hand for the high half and, in hi/lo games, the low
// half. A scoop is a sole high winner who is also the sole low winner or
// faces no qualifying low.
func Showdown(g Game, hands []CardSet) (ShowdownResult, error) {
	high, err := BestHand(g, hands)
	if err != nil {
		return ShowdownResult{}, err
	}
	res := ShowdownResult{High: high, Scooper: -1}
	if !g.HasLow() {
		return res, nil
	}

	low, err := BestLowHand(g, hands)
	if err != nil {
		return ShowdownResult{}, err
	}
	res.Low = &low
	if len(high.Winners) == 1 {
		switch {
		case !low.Qualified:
			res.Scooper = high.Winners[0]
		case len(low.Winners) == 1 && low.Winners[0] == high.Winners[0]:
			res.Scooper = high.Winners[0]
		}
	}
	return res, nil
}
