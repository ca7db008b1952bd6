package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGame(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  Game
	}{
		{"holdem", HoldEm},
		{"Texas Hold'em", HoldEm},
		{"holdem-preflop", HoldEmStarting},
		{"omaha", Omaha},
		{"Omaha8", OmahaHiLo},
		{"omaha-hilo", OmahaHiLo},
		{"omaha_hi_lo", OmahaHiLo},
		{"stud5", FiveCardStud},
		{"five-card-stud-hi/lo", FiveCardStudHiLo},
		{"stud", SevenCardStud},
		{"stud8", SevenCardStudHiLo},
		{" STUD7-HILO ", SevenCardStudHiLo},
	}
	for _, tc := range tests {
		g, err := ParseGame(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, g, tc.input)
	}

	_, err := ParseGame("razz")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestGameSlugsRoundTrip(t *testing.T) {
	t.Parallel()
	for _, g := range Games() {
		parsed, err := ParseGame(g.Slug())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
		assert.NotEqual(t, "Unknown", g.String())

		for _, alias := range g.Aliases() {
			parsed, err := ParseGame(alias)
			require.NoError(t, err, alias)
			assert.Equal(t, g, parsed, alias)
		}
	}
	assert.False(t, Game(200).Valid())
	assert.Equal(t, "Unknown", Game(200).String())
}

func TestGameProperties(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Direct, HoldEm.Strategy())
	assert.Equal(t, TwoPlusThree, OmahaHiLo.Strategy())
	assert.Equal(t, TwoHoleOnly, HoldEmStarting.Strategy())
	assert.False(t, Omaha.HasLow())
	assert.True(t, OmahaHiLo.HasLow())
	assert.Equal(t, EightOrBetter, SevenCardStudHiLo.LowRule())
	assert.Equal(t, 4, Omaha.HoleCards())
	assert.Equal(t, 5, Omaha.BoardCards())
	assert.Equal(t, 0, SevenCardStud.BoardCards())

	assert.Equal(t, 23, HoldEm.MaxHands())
	assert.Equal(t, 11, Omaha.MaxHands())
	assert.Equal(t, 7, SevenCardStud.MaxHands())
	assert.Equal(t, 10, FiveCardStud.MaxHands())
}
