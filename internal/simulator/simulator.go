// Package simulator estimates showdown equity by Monte Carlo dealing.
package simulator

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerrank/internal/handrange"
	"github.com/lox/pokerrank/internal/randutil"
	"github.com/lox/pokerrank/internal/runid"
	"github.com/lox/pokerrank/internal/statistics"
	"github.com/lox/pokerrank/poker"
)

// ErrInvalidConfig is returned when a simulation cannot be set up.
var ErrInvalidConfig = errors.New("invalid simulation config")

const (
	defaultIterations = 10000
	checkEvery        = 1024
)

// HandSpec describes one seat. Cards are known hole cards; any missing cards
// are dealt at random. Range, when set, replaces Cards with a combo drawn
// from the range on every iteration.
type HandSpec struct {
	Name  string
	Cards poker.Cards
	Range *handrange.Range
}

func (h HandSpec) String() string {
	switch {
	case h.Name != "":
		return h.Name
	case h.Range != nil:
		return h.Range.String()
	case len(h.Cards) > 0:
		return h.Cards.String()
	default:
		return "random"
	}
}

// Config holds configuration for running simulations
type Config struct {
	Game       poker.Game
	Hands      []HandSpec
	Board      poker.Cards
	Players    int // seats in total, extra seats are dealt random cards
	Iterations int
	Seed       int64
	Workers    int

	// ProgressInterval enables periodic progress logging when positive.
	ProgressInterval time.Duration

	Logger *log.Logger
	Clock  quartz.Clock
}

// Result is the outcome of a simulation run.
type Result struct {
	ID         string
	Game       poker.Game
	Board      poker.Cards
	Seed       int64
	Names      []string
	Iterations int
	Elapsed    time.Duration
	Stats      *statistics.Statistics
}

// Simulator runs showdown simulations
type Simulator struct {
	config Config
	seats  []HandSpec
	known  poker.Cards
}

// New validates the configuration and fills in defaults.
func New(config Config) (*Simulator, error) {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Iterations == 0 {
		config.Iterations = defaultIterations
	}
	if config.Players == 0 {
		config.Players = max(len(config.Hands), 2)
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	config.Workers = min(config.Workers, config.Iterations)

	s := &Simulator{config: config}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulator) validate() error {
	c := s.config
	g := c.Game

	if !g.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, poker.ErrUnknownGame)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Players < len(c.Hands) {
		return fmt.Errorf("%w: %d hands given for %d players", ErrInvalidConfig, len(c.Hands), c.Players)
	}
	if c.Players < 1 || c.Players > g.MaxHands() {
		return fmt.Errorf("%w: %s seats 1 to %d players, got %d", ErrInvalidConfig, g, g.MaxHands(), c.Players)
	}
	if len(c.Board) > g.BoardCards() {
		return fmt.Errorf("%w: %s has at most %d board cards, got %d", ErrInvalidConfig, g, g.BoardCards(), len(c.Board))
	}

	s.seats = make([]HandSpec, c.Players)
	copy(s.seats, c.Hands)

	s.known = append(poker.Cards(nil), c.Board...)
	for i, h := range s.seats {
		if h.Range != nil {
			if len(h.Cards) > 0 {
				return fmt.Errorf("%w: hand %d has both cards and a range", ErrInvalidConfig, i+1)
			}
			if g.HoleCards() != 2 {
				return fmt.Errorf("%w: ranges need a two hole card game, %s deals %d", ErrInvalidConfig, g, g.HoleCards())
			}
			continue
		}
		if len(h.Cards) > g.HoleCards() {
			return fmt.Errorf("%w: hand %d has %d cards, %s deals %d", ErrInvalidConfig, i+1, len(h.Cards), g, g.HoleCards())
		}
		s.known = append(s.known, h.Cards...)
	}

	for i, card := range s.known {
		if !card.Valid() {
			return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, poker.ErrInvalidRank, card)
		}
		for _, prev := range s.known[:i] {
			if prev == card {
				return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, poker.ErrDuplicateCard, card)
			}
		}
	}
	return nil
}

// Config returns the effective configuration after defaults are applied.
func (s *Simulator) Config() Config {
	return s.config
}

// Run deals the configured number of showdowns across the worker pool. Each
// worker owns a deterministic random stream, so a given seed and worker count
// always produce the same statistics.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	c := s.config
	start := c.Clock.Now()

	id, err := runid.NewGenerator(c.Clock, nil).Generate()
	if err != nil {
		return nil, err
	}
	logger := c.Logger.With("run", id)

	base := poker.NewOrderedDeck(nil)
	if err := base.Remove(s.known...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logger.Debug("Starting simulation",
		"game", c.Game.Slug(),
		"players", c.Players,
		"iterations", c.Iterations,
		"workers", c.Workers,
		"seed", c.Seed)

	g, gctx := errgroup.WithContext(ctx)
	parts := make([]*statistics.Statistics, c.Workers)
	var done atomic.Int64

	per := c.Iterations / c.Workers
	remainder := c.Iterations % c.Workers
	for w := range c.Workers {
		n := per
		if w < remainder {
			n++
		}
		rng := randutil.Stream(c.Seed, w)
		g.Go(func() error {
			stats, err := s.worker(gctx, base.WithRand(rng), rng, n, &done)
			if err != nil {
				return err
			}
			parts[w] = stats
			return nil
		})
	}

	progressCtx, stopProgress := context.WithCancel(gctx)
	var progress sync.WaitGroup
	if c.ProgressInterval > 0 {
		ticker := c.Clock.NewTicker(c.ProgressInterval, "simulator", "progress")
		progress.Add(1)
		go func() {
			defer progress.Done()
			defer ticker.Stop()
			s.reportProgress(progressCtx, logger, ticker.C, start, &done)
		}()
	}

	err = g.Wait()
	stopProgress()
	progress.Wait()
	if err != nil {
		return nil, err
	}

	// Merge in worker order so float sums do not depend on scheduling.
	total := statistics.New(c.Players)
	for _, stats := range parts {
		if err := total.Merge(stats); err != nil {
			return nil, err
		}
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	res := &Result{
		ID:         id,
		Game:       c.Game,
		Board:      c.Board,
		Seed:       c.Seed,
		Iterations: total.Games,
		Elapsed:    c.Clock.Since(start),
		Stats:      total,
	}
	for _, h := range s.seats {
		res.Names = append(res.Names, h.String())
	}

	logger.Info("Simulation complete",
		"game", c.Game.Slug(),
		"iterations", res.Iterations,
		"elapsed", res.Elapsed)

	return res, nil
}

func (s *Simulator) worker(ctx context.Context, deck *poker.Deck, rng *rand.Rand, n int, done *atomic.Int64) (*statistics.Statistics, error) {
	c := s.config
	stats := statistics.New(c.Players)

	board := make(poker.Cards, 0, c.Game.BoardCards())
	holes := make([]poker.Cards, c.Players)
	for i := range holes {
		holes[i] = make(poker.Cards, 0, c.Game.HoleCards())
	}
	hands := make([]poker.CardSet, c.Players)
	dead := make(poker.Cards, 0, len(s.known)+2*c.Players)

	for i := range n {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// Range combos come out of the deck before the random deal.
		dead = append(dead[:0], s.known...)
		for seat, h := range s.seats {
			holes[seat] = holes[seat][:0]
			if h.Range == nil {
				holes[seat] = append(holes[seat], h.Cards...)
				continue
			}
			combo, err := h.Range.Sample(rng, dead)
			if err != nil {
				return nil, fmt.Errorf("hand %d: %w", seat+1, err)
			}
			holes[seat] = append(holes[seat], combo[0], combo[1])
			dead = append(dead, combo[0], combo[1])
		}
		drawn := dead[len(s.known):]

		deck.Shuffle()
		deal := func() (poker.Card, error) {
			for {
				card, err := deck.DealOne()
				if err != nil || !drawn.Contains(card) {
					return card, err
				}
			}
		}

		for seat := range holes {
			for len(holes[seat]) < c.Game.HoleCards() {
				card, err := deal()
				if err != nil {
					return nil, err
				}
				holes[seat] = append(holes[seat], card)
			}
		}
		board = append(board[:0], c.Board...)
		for len(board) < c.Game.BoardCards() {
			card, err := deal()
			if err != nil {
				return nil, err
			}
			board = append(board, card)
		}

		for seat := range hands {
			hands[seat] = poker.CardSet{Hole: holes[seat], Board: board}
		}
		res, err := poker.Showdown(c.Game, hands)
		if err != nil {
			return nil, err
		}
		if err := stats.Record(res); err != nil {
			return nil, err
		}
		done.Add(1)
	}

	return stats, nil
}

func (s *Simulator) reportProgress(ctx context.Context, logger *log.Logger, ticks <-chan time.Time, start time.Time, done *atomic.Int64) {
	c := s.config
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			n := done.Load()
			logger.Info("Simulation progress",
				"done", n,
				"total", c.Iterations,
				"percent", fmt.Sprintf("%.1f", 100*float64(n)/float64(c.Iterations)),
				"elapsed", c.Clock.Since(start).Round(time.Millisecond))
		}
	}
}
