package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pokerrank/internal/config"
	"github.com/lox/pokerrank/internal/handrange"
	"github.com/lox/pokerrank/internal/simulator"
	"github.com/lox/pokerrank/poker"
)

// SimCmd runs a Monte Carlo equity simulation
type SimCmd struct {
	Config        string        `short:"c" type:"existingfile" help:"HCL scenario file; replaces the other flags"`
	Game          string        `short:"g" default:"holdem" help:"Game to simulate (see 'pokerrank games')"`
	Board         string        `short:"b" help:"Known community board cards"`
	Players       int           `short:"n" help:"Seats in total; seats without a hand are dealt random cards"`
	Iterations    int           `short:"i" default:"100000" help:"Number of Monte Carlo iterations"`
	Seed          *int64        `help:"Random seed for reproducible results"`
	Workers       int           `short:"w" help:"Worker goroutines (default: CPU count, max 8)"`
	Progress      time.Duration `help:"Log progress at this interval (e.g. 2s)"`
	Possibilities bool          `short:"p" help:"Show how often each hand category wins"`
	Output        string        `short:"o" type:"path" help:"Also write a JSON report to this file"`
	Hands         []string      `arg:"" optional:"" help:"Hands as cards ('AcKd'), range notation ('QQ+,AKs') or 'random'"`
}

func (c *SimCmd) Run(e *env) error {
	cfg, err := c.simulatorConfig(e)
	if err != nil {
		return err
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}
	res, err := sim.Run(e.ctx)
	if err != nil {
		return err
	}

	displaySimulation(e.out, res, c.Possibilities)

	if c.Output != "" {
		if err := res.SaveJSON(c.Output); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		e.logger.Info("Wrote report", "file", c.Output, "run", res.ID)
	}
	return nil
}

func (c *SimCmd) simulatorConfig(e *env) (simulator.Config, error) {
	clock := quartz.NewReal()

	if c.Config != "" {
		if len(c.Hands) > 0 {
			return simulator.Config{}, fmt.Errorf("hands cannot be given with --config")
		}
		scenario, err := config.LoadScenario(c.Config)
		if err != nil {
			return simulator.Config{}, err
		}
		e.logger.SetLevel(scenario.LogLevel())
		e.logger.Debug("Loaded scenario", "file", c.Config, "hands", len(scenario.Hands))
		return scenario.SimulatorConfig(e.logger, clock)
	}

	game, err := poker.ParseGame(c.Game)
	if err != nil {
		return simulator.Config{}, err
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return simulator.Config{}, fmt.Errorf("board: %w", err)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		e.logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
		e.logger.Info("Using random seed", "seed", seed)
	}

	cfg := simulator.Config{
		Game:             game,
		Board:            board,
		Players:          c.Players,
		Iterations:       c.Iterations,
		Seed:             seed,
		Workers:          c.Workers,
		ProgressInterval: c.Progress,
		Logger:           e.logger,
		Clock:            clock,
	}
	for i, h := range c.Hands {
		spec, err := parseHandSpec(h)
		if err != nil {
			return simulator.Config{}, fmt.Errorf("hand %d: %w", i+1, err)
		}
		cfg.Hands = append(cfg.Hands, spec)
	}
	return cfg, nil
}

// parseHandSpec accepts concrete cards, range notation or "random".
func parseHandSpec(s string) (simulator.HandSpec, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "random") || s == "?":
		return simulator.HandSpec{}, nil
	case handrange.IsNotation(s):
		r, err := handrange.Parse(s)
		if err != nil {
			return simulator.HandSpec{}, err
		}
		return simulator.HandSpec{Range: r}, nil
	}

	cards, err := poker.ParseCards(s)
	if err != nil {
		return simulator.HandSpec{}, err
	}
	return simulator.HandSpec{Cards: cards}, nil
}

func displaySimulation(out io.Writer, res *simulator.Result, showPossibilities bool) {
	stats := res.Stats
	board := res.Board

	fmt.Fprintf(out, "%s\n", headerStyle.Render(res.Game.String()))
	if len(board) > 0 {
		fmt.Fprintf(out, "%s %s\n", headerStyle.Render("board"), board)
	}
	fmt.Fprintln(out)

	hasLow := res.Game.HasLow()
	w := newTable(out)
	header := []string{"hand", "win", "tie", "equity", "95% ci"}
	if hasLow {
		header = append(header, "low", "scoop")
	}
	for i, h := range header {
		header[i] = headerStyle.Render(h)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for i, name := range res.Names {
		hs := stats.Hands[i]
		lo, hi := stats.ConfidenceInterval95(i)
		row := []string{
			handStyle.Render(name),
			winStyle.Render(percent(stats.Rate(hs.HighWins))),
			tieStyle.Render(percent(stats.Rate(hs.HighTies))),
			percentStyle.Render(percent(stats.Equity(i))),
			fmt.Sprintf("%s-%s", percent(max(lo, 0)), percent(min(hi, 1))),
		}
		if hasLow {
			row = append(row,
				winStyle.Render(percent(stats.Rate(hs.LowWins+hs.LowTies))),
				winStyle.Render(percent(stats.Rate(hs.Scoops))))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	if showPossibilities {
		fmt.Fprintln(out)
		displayPossibilities(out, res)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d iterations in %v\n", res.Iterations, res.Elapsed.Truncate(time.Millisecond))
	if hasLow {
		fmt.Fprintf(out, "low qualified in %s of deals\n", percent(stats.Rate(stats.LowGames)))
	}
}

func displayPossibilities(out io.Writer, res *simulator.Result) {
	stats := res.Stats

	w := newTable(out)
	fmt.Fprintf(w, "%s\t%s\n", categoryStyle.Render("winning hand"), headerStyle.Render("frequency"))
	for t := poker.StraightFlush; ; t-- {
		if n := stats.WinningTypes[t]; n > 0 {
			fmt.Fprintf(w, "%s\t%s\n", categoryStyle.Render(t.String()), percentStyle.Render(percent(stats.Rate(n))))
		}
		if t == poker.HighCard {
			break
		}
	}
	w.Flush()
}
