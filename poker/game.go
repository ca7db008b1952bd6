package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Strategy selects how a player's cards are combined into five card hands.
type Strategy uint8

const (
	// Direct evaluates hole and board cards together as one 5 to 7 card pool.
	Direct Strategy = iota
	// TwoPlusThree uses exactly two hole cards with exactly three board cards.
	TwoPlusThree
	// TwoHoleOnly ranks just the two hole cards as a starting hand.
	TwoHoleOnly
)

func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case TwoPlusThree:
		return "two-plus-three"
	case TwoHoleOnly:
		return "two-hole-only"
	default:
		return "unknown"
	}
}

// LowRule decides whether a game awards a low half and who qualifies for it.
type LowRule uint8

const (
	NoLow LowRule = iota
	EightOrBetter
)

// Game is a supported poker variant.
type Game uint8

const (
	HoldEm Game = iota
	HoldEmStarting
	Omaha
	OmahaHiLo
	FiveCardStud
	FiveCardStudHiLo
	SevenCardStud
	SevenCardStudHiLo
)

type gameInfo struct {
	slug     string
	name     string
	aliases  []string
	strategy Strategy
	low      LowRule
	hole     int
	board    int
}

var games = [...]gameInfo{
	HoldEm:            {"holdem", "Texas Hold'em", []string{"texasholdem", "nlhe"}, Direct, NoLow, 2, 5},
	HoldEmStarting:    {"holdem-preflop", "Hold'em Starting Hands", []string{"preflop", "holdemstarting"}, TwoHoleOnly, NoLow, 2, 0},
	Omaha:             {"omaha", "Omaha", []string{"plo"}, TwoPlusThree, NoLow, 4, 5},
	OmahaHiLo:         {"omaha-hilo", "Omaha Hi/Lo 8-or-better", []string{"omaha8", "omahahilo8"}, TwoPlusThree, EightOrBetter, 4, 5},
	FiveCardStud:      {"stud5", "Five-card Stud", []string{"fivecardstud"}, Direct, NoLow, 5, 0},
	FiveCardStudHiLo:  {"stud5-hilo", "Five-card Stud Hi/Lo", []string{"fivecardstudhilo", "stud58"}, Direct, EightOrBetter, 5, 0},
	SevenCardStud:     {"stud7", "Seven-card Stud", []string{"sevencardstud", "stud"}, Direct, NoLow, 7, 0},
	SevenCardStudHiLo: {"stud7-hilo", "Seven-card Stud Hi/Lo", []string{"sevencardstudhilo", "stud8", "stud78"}, Direct, EightOrBetter, 7, 0},
}

// Games lists every supported variant.
func Games() []Game {
	out := make([]Game, len(games))
	for i := range games {
		out[i] = Game(i)
	}
	return out
}

// ParseGame resolves a game by slug or alias. Case, spaces, dashes,
// underscores, slashes and apostrophes are ignored.
func ParseGame(s string) (Game, error) {
	key := normalizeGameName(s)
	for i, g := range games {
		if normalizeGameName(g.slug) == key {
			return Game(i), nil
		}
		for _, alias := range g.aliases {
			if alias == key {
				return Game(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

func normalizeGameName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '/', '\'':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether g is a known game.
func (g Game) Valid() bool { return int(g) < len(games) }

func (g Game) info() gameInfo {
	if !g.Valid() {
		return gameInfo{slug: "unknown", name: "Unknown"}
	}
	return games[g]
}

// String returns the display name, e.g. "Omaha Hi/Lo 8-or-better".
func (g Game) String() string { return g.info().name }

// Slug returns the short name accepted by ParseGame, e.g. "omaha-hilo".
func (g Game) Slug() string { return g.info().slug }

// Aliases returns the alternative names ParseGame accepts.
func (g Game) Aliases() []string { return slices.Clone(g.info().aliases) }

// Strategy returns how hole and board cards combine.
func (g Game) Strategy() Strategy { return g.info().strategy }

// LowRule returns the low qualification rule.
func (g Game) LowRule() LowRule { return g.info().low }

// HasLow reports whether the pot is split with a low hand.
func (g Game) HasLow() bool { return g.info().low != NoLow }

// HoleCards returns the number of private cards dealt to each player.
func (g Game) HoleCards() int { return g.info().hole }

// BoardCards returns the number of shared cards, zero for stud games.
func (g Game) BoardCards() int { return g.info().board }

// MaxHands returns how many players one deck can serve.
func (g Game) MaxHands() int {
	hole := g.HoleCards()
	if hole == 0 {
		return 0
	}
	return (DeckSize - g.BoardCards()) / hole
}
