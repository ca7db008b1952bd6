package statistics

import (
	"math"
	"testing"

	"github.com/lox/pokerrank/poker"
)

func showdown(high []int, low *poker.LowResult, scooper int) poker.ShowdownResult {
	return poker.ShowdownResult{
		High:    poker.Result{Winners: high, Rank: poker.PairRank(poker.King)},
		Low:     low,
		Scooper: scooper,
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := New(2)

	if stats.Equity(0) != 0 {
		t.Errorf("Expected equity of 0 for empty stats, got %f", stats.Equity(0))
	}
	if stats.Variance(0) != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance(0))
	}
	if stats.StdError(0) != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError(0))
	}
	if stats.Rate(5) != 0 {
		t.Errorf("Expected rate of 0 for empty stats, got %f", stats.Rate(5))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for zero games")
	}
}

func TestStatistics_HighOnly(t *testing.T) {
	stats := New(3)

	if err := stats.Record(showdown([]int{0}, nil, -1)); err != nil {
		t.Fatal(err)
	}
	if err := stats.Record(showdown([]int{1, 2}, nil, -1)); err != nil {
		t.Fatal(err)
	}

	if stats.Games != 2 {
		t.Errorf("Expected 2 games, got %d", stats.Games)
	}
	if stats.Hands[0].HighWins != 1 || stats.Hands[1].HighTies != 1 || stats.Hands[2].HighTies != 1 {
		t.Errorf("Unexpected high results: %+v", stats.Hands)
	}
	if got := stats.Equity(0); got != 0.5 {
		t.Errorf("Expected equity 0.5 for hand 0, got %f", got)
	}
	if got := stats.Equity(1); got != 0.25 {
		t.Errorf("Expected equity 0.25 for hand 1, got %f", got)
	}
	if stats.WinningTypes[poker.Pair] != 2 {
		t.Errorf("Expected 2 pair wins recorded, got %d", stats.WinningTypes[poker.Pair])
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_HiLo(t *testing.T) {
	stats := New(2)

	// hand 0 scoops
	low := &poker.LowResult{Winners: []int{0}, Qualified: true}
	if err := stats.Record(showdown([]int{0}, low, 0)); err != nil {
		t.Fatal(err)
	}
	// split pot
	low = &poker.LowResult{Winners: []int{1}, Qualified: true}
	if err := stats.Record(showdown([]int{0}, low, -1)); err != nil {
		t.Fatal(err)
	}
	// no qualifying low, high takes all
	if err := stats.Record(showdown([]int{1}, &poker.LowResult{}, 1)); err != nil {
		t.Fatal(err)
	}

	if stats.LowGames != 2 {
		t.Errorf("Expected 2 low games, got %d", stats.LowGames)
	}
	if stats.Hands[0].Scoops != 1 || stats.Hands[1].Scoops != 1 {
		t.Errorf("Expected one scoop each, got %d and %d", stats.Hands[0].Scoops, stats.Hands[1].Scoops)
	}
	if stats.Hands[1].LowWins != 1 {
		t.Errorf("Expected 1 low win for hand 1, got %d", stats.Hands[1].LowWins)
	}
	if got := stats.Equity(0); math.Abs(got-1.5/3) > 1e-9 {
		t.Errorf("Expected equity 0.5 for hand 0, got %f", got)
	}
	if !stats.IsLedgerBalanced() {
		t.Error("Expected ledger to balance")
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_RecordOutOfRange(t *testing.T) {
	stats := New(2)
	if err := stats.Record(showdown([]int{2}, nil, -1)); err == nil {
		t.Error("Expected error for winner out of range")
	}
	if stats.Games != 0 {
		t.Errorf("Rejected result should not count, got %d games", stats.Games)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a, b := New(2), New(2)
	for range 3 {
		_ = a.Record(showdown([]int{0}, nil, -1))
	}
	_ = b.Record(showdown([]int{1}, nil, -1))

	if err := a.Merge(b); err != nil {
		t.Fatal(err)
	}
	if a.Games != 4 || a.Hands[0].HighWins != 3 || a.Hands[1].HighWins != 1 {
		t.Errorf("Unexpected merged stats: games=%d hands=%+v", a.Games, a.Hands)
	}
	if err := a.Merge(New(3)); err == nil {
		t.Error("Expected error merging different hand counts")
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := New(2)
	for i := range 100 {
		_ = stats.Record(showdown([]int{i % 2}, nil, -1))
	}

	lo, hi := stats.ConfidenceInterval95(0)
	if lo >= 0.5 || hi <= 0.5 {
		t.Errorf("Expected interval around 0.5, got [%f, %f]", lo, hi)
	}
	// sample variance of a 50/50 split over 100 games
	if got := stats.Variance(0); math.Abs(got-25.0/99) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", 25.0/99, got)
	}
}
