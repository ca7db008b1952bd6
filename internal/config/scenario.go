// Package config loads simulation scenarios from HCL files.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerrank/internal/handrange"
	"github.com/lox/pokerrank/internal/simulator"
	"github.com/lox/pokerrank/poker"
)

// Scenario represents a complete simulation file
type Scenario struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Hands      []HandConfig        `hcl:"hand,block"`
}

// SimulationSettings contains run-level configuration
type SimulationSettings struct {
	Game       string `hcl:"game,optional"`
	Board      string `hcl:"board,optional"`
	Players    int    `hcl:"players,optional"`
	Iterations int    `hcl:"iterations,optional"`
	Seed       int64  `hcl:"seed,optional"`
	Workers    int    `hcl:"workers,optional"`
	Progress   string `hcl:"progress,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// HandConfig defines one seat. A hand with neither cards nor a range is
// dealt at random.
type HandConfig struct {
	Name  string `hcl:"name,label"`
	Cards string `hcl:"cards,optional"`
	Range string `hcl:"range,optional"`
}

// DefaultSimulationSettings returns the settings used when a file leaves
// them out.
func DefaultSimulationSettings() SimulationSettings {
	return SimulationSettings{
		Game:       poker.HoldEm.Slug(),
		Iterations: 10000,
		Seed:       1,
		LogLevel:   "info",
	}
}

// LoadScenario loads a scenario from an HCL file
func LoadScenario(filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// ParseScenario parses scenario source. filename is only used in diagnostics.
func ParseScenario(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Scenario, error) {
	var scenario Scenario
	diags := gohcl.DecodeBody(body, nil, &scenario)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultSimulationSettings()
	if scenario.Simulation == nil {
		scenario.Simulation = &defaults
	}
	settings := scenario.Simulation
	if settings.Game == "" {
		settings.Game = defaults.Game
	}
	if settings.Iterations == 0 {
		settings.Iterations = defaults.Iterations
	}
	if settings.LogLevel == "" {
		settings.LogLevel = defaults.LogLevel
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate validates the scenario
func (s *Scenario) Validate() error {
	settings := s.Simulation
	if settings == nil {
		return fmt.Errorf("missing simulation block")
	}
	if _, err := poker.ParseGame(settings.Game); err != nil {
		return err
	}
	if _, err := poker.ParseCards(settings.Board); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	if settings.Iterations < 0 {
		return fmt.Errorf("invalid iterations: %d", settings.Iterations)
	}
	if settings.Players < 0 {
		return fmt.Errorf("invalid players: %d", settings.Players)
	}
	if settings.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", settings.Workers)
	}
	if settings.Progress != "" {
		if _, err := time.ParseDuration(settings.Progress); err != nil {
			return fmt.Errorf("invalid progress interval: %w", err)
		}
	}
	if _, err := log.ParseLevel(settings.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	names := make(map[string]bool)
	for _, h := range s.Hands {
		if names[h.Name] {
			return fmt.Errorf("duplicate hand name: %s", h.Name)
		}
		names[h.Name] = true

		if h.Cards != "" && h.Range != "" {
			return fmt.Errorf("hand %s: cards and range are mutually exclusive", h.Name)
		}
		if _, err := h.spec(); err != nil {
			return err
		}
	}
	return nil
}

func (h HandConfig) spec() (simulator.HandSpec, error) {
	spec := simulator.HandSpec{Name: h.Name}
	switch {
	case h.Range != "":
		r, err := handrange.Parse(h.Range)
		if err != nil {
			return spec, fmt.Errorf("hand %s: %w", h.Name, err)
		}
		spec.Range = r
	case h.Cards != "":
		cards, err := poker.ParseCards(h.Cards)
		if err != nil {
			return spec, fmt.Errorf("hand %s: %w", h.Name, err)
		}
		spec.Cards = cards
	}
	return spec, nil
}

// LogLevel returns the configured log level.
func (s *Scenario) LogLevel() log.Level {
	level, err := log.ParseLevel(s.Simulation.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SimulatorConfig converts the scenario into a simulator configuration.
// Players defaults to the number of hand blocks.
func (s *Scenario) SimulatorConfig(logger *log.Logger, clock quartz.Clock) (simulator.Config, error) {
	settings := s.Simulation

	game, err := poker.ParseGame(settings.Game)
	if err != nil {
		return simulator.Config{}, err
	}
	board, err := poker.ParseCards(settings.Board)
	if err != nil {
		return simulator.Config{}, fmt.Errorf("invalid board: %w", err)
	}

	config := simulator.Config{
		Game:       game,
		Board:      board,
		Players:    settings.Players,
		Iterations: settings.Iterations,
		Seed:       settings.Seed,
		Workers:    settings.Workers,
		Logger:     logger,
		Clock:      clock,
	}
	if settings.Progress != "" {
		config.ProgressInterval, err = time.ParseDuration(settings.Progress)
		if err != nil {
			return simulator.Config{}, fmt.Errorf("invalid progress interval: %w", err)
		}
	}

	for _, h := range s.Hands {
		spec, err := h.spec()
		if err != nil {
			return simulator.Config{}, err
		}
		config.Hands = append(config.Hands, spec)
	}
	return config, nil
}
