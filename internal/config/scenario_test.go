package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerrank/poker"
)

const omahaScenario = `
simulation {
  game       = "omaha8"
  board      = "AC 2D 3H"
  players    = 3
  iterations = 5000
  seed       = 42
  workers    = 2
  progress   = "2s"
  log_level  = "debug"
}

hand "hero" {
  cards = "4C 5D 9S 9H"
}

hand "villain" {
  cards = "KC QD"
}
`

func TestParseScenario(t *testing.T) {
	t.Parallel()

	s, err := ParseScenario([]byte(omahaScenario), "omaha.hcl")
	require.NoError(t, err)

	assert.Equal(t, "omaha8", s.Simulation.Game)
	assert.Equal(t, int64(42), s.Simulation.Seed)
	assert.Equal(t, log.DebugLevel, s.LogLevel())
	require.Len(t, s.Hands, 2)
	assert.Equal(t, "hero", s.Hands[0].Name)

	cfg, err := s.SimulatorConfig(nil, quartz.NewMock(t))
	require.NoError(t, err)
	assert.Equal(t, poker.OmahaHiLo, cfg.Game)
	assert.Equal(t, "AC 2D 3H", cfg.Board.String())
	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, 5000, cfg.Iterations)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.ProgressInterval)
	require.Len(t, cfg.Hands, 2)
	assert.Equal(t, "hero", cfg.Hands[0].Name)
	assert.Equal(t, "KC QD", cfg.Hands[1].Cards.String())
}

func TestParseScenarioDefaults(t *testing.T) {
	t.Parallel()

	s, err := ParseScenario([]byte(`
hand "a" { range = "QQ+,AKs" }
hand "b" {}
`), "defaults.hcl")
	require.NoError(t, err)

	defaults := DefaultSimulationSettings()
	assert.Equal(t, defaults, *s.Simulation)
	assert.Equal(t, log.InfoLevel, s.LogLevel())

	cfg, err := s.SimulatorConfig(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, poker.HoldEm, cfg.Game)
	require.Len(t, cfg.Hands, 2)
	require.NotNil(t, cfg.Hands[0].Range)
	assert.Equal(t, 22, cfg.Hands[0].Range.Size())
	assert.Nil(t, cfg.Hands[1].Range)
	assert.Empty(t, cfg.Hands[1].Cards)
}

func TestParseScenarioErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `simulation {`},
		{"unknown attribute", `simulation { speed = 3 }`},
		{"unknown game", `simulation { game = "razz" }`},
		{"bad board", `simulation { board = "AX" }`},
		{"negative iterations", `simulation { iterations = -5 }`},
		{"bad progress", `simulation { progress = "soon" }`},
		{"bad log level", `simulation { log_level = "loud" }`},
		{"cards and range", `hand "a" {
  cards = "AS AH"
  range = "KK"
}`},
		{"bad range", `hand "a" { range = "AKx" }`},
		{"bad cards", `hand "a" { cards = "ZZ" }`},
		{"duplicate name", `
hand "a" {}
hand "a" {}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseScenario([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(path, []byte(omahaScenario), 0o600))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Hands, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
