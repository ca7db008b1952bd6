package simulator

import (
	"encoding/json"
	"io"

	"github.com/lox/pokerrank/internal/fileutil"
	"github.com/lox/pokerrank/poker"
)

// Report is the JSON form of a Result.
type Report struct {
	ID           string         `json:"id"`
	Game         string         `json:"game"`
	Board        string         `json:"board,omitempty"`
	Seed         int64          `json:"seed"`
	Iterations   int            `json:"iterations"`
	ElapsedMs    int64          `json:"elapsed_ms"`
	LowGames     int            `json:"low_games,omitempty"`
	Hands        []HandReport   `json:"hands"`
	WinningTypes map[string]int `json:"winning_types"`
}

// HandReport summarises one seat.
type HandReport struct {
	Name     string  `json:"name"`
	Equity   float64 `json:"equity"`
	StdError float64 `json:"std_error"`
	HighWins int     `json:"high_wins"`
	HighTies int     `json:"high_ties"`
	LowWins  int     `json:"low_wins,omitempty"`
	LowTies  int     `json:"low_ties,omitempty"`
	Scoops   int     `json:"scoops,omitempty"`
}

// Report converts the result for export.
func (r *Result) Report() Report {
	s := r.Stats
	rep := Report{
		ID:           r.ID,
		Game:         r.Game.Slug(),
		Board:        r.Board.String(),
		Seed:         r.Seed,
		Iterations:   r.Iterations,
		ElapsedMs:    r.Elapsed.Milliseconds(),
		LowGames:     s.LowGames,
		WinningTypes: make(map[string]int),
	}
	for i, name := range r.Names {
		h := s.Hands[i]
		rep.Hands = append(rep.Hands, HandReport{
			Name:     name,
			Equity:   s.Equity(i),
			StdError: s.StdError(i),
			HighWins: h.HighWins,
			HighTies: h.HighTies,
			LowWins:  h.LowWins,
			LowTies:  h.LowTies,
			Scoops:   h.Scoops,
		})
	}
	for t, n := range s.WinningTypes {
		if n > 0 {
			rep.WinningTypes[poker.HandType(t).String()] = n
		}
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Report())
}

// SaveJSON writes the report to path atomically.
func (r *Result) SaveJSON(path string) error {
	return fileutil.WriteAtomic(path, 0o644, r.WriteJSON)
}

