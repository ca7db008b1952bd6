package statistics

import (
	"fmt"
	"math"

	"github.com/lox/pokerrank/poker"
)

// HandStats tracks results for one seat across many showdowns
type HandStats struct {
	HighWins int // Sole high winner
	HighTies int // Split the high half
	LowWins  int // Sole low winner
	LowTies  int // Split the low half
	Scoops   int // Took the whole pot

	// Pot share won per game, for equity and its variance
	SumEquity  float64
	SumEquity2 float64
}

// Statistics aggregates showdown results over a simulation
type Statistics struct {
	Games    int
	LowGames int // Games where some hand qualified for low
	Hands    []HandStats

	// Winning high hand type frequencies
	WinningTypes [poker.StraightFlush + 1]int
}

// New creates statistics for the given number of hands
func New(hands int) *Statistics {
	return &Statistics{Hands: make([]HandStats, hands)}
}

// Record incorporates one showdown. The whole pot is worth 1; hi/lo games
// split it in halves when a low qualifies.
func (s *Statistics) Record(res poker.ShowdownResult) error {
	for _, w := range res.High.Winners {
		if w < 0 || w >= len(s.Hands) {
			return fmt.Errorf("high winner #%d out of range for %d hands", w, len(s.Hands))
		}
	}
	lowSplit := res.Low != nil && res.Low.Qualified
	if lowSplit {
		for _, w := range res.Low.Winners {
			if w < 0 || w >= len(s.Hands) {
				return fmt.Errorf("low winner #%d out of range for %d hands", w, len(s.Hands))
			}
		}
	}

	s.Games++
	share := make([]float64, len(s.Hands))

	highPot := 1.0
	if lowSplit {
		highPot = 0.5
		s.LowGames++
		for _, w := range res.Low.Winners {
			if len(res.Low.Winners) == 1 {
				s.Hands[w].LowWins++
			} else {
				s.Hands[w].LowTies++
			}
			share[w] += 0.5 / float64(len(res.Low.Winners))
		}
	}

	for _, w := range res.High.Winners {
		if len(res.High.Winners) == 1 {
			s.Hands[w].HighWins++
		} else {
			s.Hands[w].HighTies++
		}
		share[w] += highPot / float64(len(res.High.Winners))
	}
	if len(res.High.Winners) > 0 {
		s.WinningTypes[res.High.Rank.Type()]++
	}

	if res.Scooper >= 0 && res.Scooper < len(s.Hands) {
		s.Hands[res.Scooper].Scoops++
	}

	for i, v := range share {
		s.Hands[i].SumEquity += v
		s.Hands[i].SumEquity2 += v * v
	}
	return nil
}

// Merge adds the counts of other into s
func (s *Statistics) Merge(other *Statistics) error {
	if len(other.Hands) != len(s.Hands) {
		return fmt.Errorf("cannot merge statistics for %d hands into %d", len(other.Hands), len(s.Hands))
	}
	s.Games += other.Games
	s.LowGames += other.LowGames
	for i, h := range other.Hands {
		dst := &s.Hands[i]
		dst.HighWins += h.HighWins
		dst.HighTies += h.HighTies
		dst.LowWins += h.LowWins
		dst.LowTies += h.LowTies
		dst.Scoops += h.Scoops
		dst.SumEquity += h.SumEquity
		dst.SumEquity2 += h.SumEquity2
	}
	for i, n := range other.WinningTypes {
		s.WinningTypes[i] += n
	}
	return nil
}

// Rate returns n as a fraction of all games
func (s *Statistics) Rate(n int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(n) / float64(s.Games)
}

// Equity returns the mean pot share won by hand i
func (s *Statistics) Equity(i int) float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Hands[i].SumEquity / float64(s.Games)
}

// Variance returns the sample variance of hand i's pot share
func (s *Statistics) Variance(i int) float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Equity(i)
	return (s.Hands[i].SumEquity2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of hand i's pot share
func (s *Statistics) StdDev(i int) float64 {
	return math.Sqrt(math.Max(s.Variance(i), 0))
}

// StdError returns the standard error of hand i's equity
func (s *Statistics) StdError(i int) float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev(i) / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for hand i's equity
func (s *Statistics) ConfidenceInterval95(i int) (float64, float64) {
	mean := s.Equity(i)
	margin := 1.96 * s.StdError(i)
	return mean - margin, mean + margin
}

// IsLedgerBalanced checks that every pot was handed out exactly once
func (s *Statistics) IsLedgerBalanced() bool {
	total := 0.0
	for _, h := range s.Hands {
		total += h.SumEquity
	}
	return math.Abs(total-float64(s.Games)) <= 1e-6*math.Max(1, float64(s.Games))
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: pot shares do not sum to %d games", s.Games)
	}
	if s.LowGames > s.Games {
		return fmt.Errorf("low games (%d) exceeds total games (%d)", s.LowGames, s.Games)
	}
	types := 0
	for _, n := range s.WinningTypes {
		types += n
	}
	if types != s.Games {
		return fmt.Errorf("winning hand types total (%d) does not match games (%d)", types, s.Games)
	}
	for i, h := range s.Hands {
		if h.HighWins+h.HighTies > s.Games {
			return fmt.Errorf("hand %d high results (%d) exceed games (%d)", i, h.HighWins+h.HighTies, s.Games)
		}
		if h.LowWins+h.LowTies > s.LowGames {
			return fmt.Errorf("hand %d low results (%d) exceed low games (%d)", i, h.LowWins+h.LowTies, s.LowGames)
		}
		if h.Scoops > h.HighWins {
			return fmt.Errorf("hand %d scoops (%d) exceed sole high wins (%d)", i, h.Scoops, h.HighWins)
		}
	}
	return nil
}
