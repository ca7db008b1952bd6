package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokerrank/poker"
)

// ShowdownCmd compares complete hands
type ShowdownCmd struct {
	Game  string   `short:"g" default:"holdem" help:"Game to score (see 'pokerrank games')"`
	Board string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Hands []string `arg:"" help:"Player hands, e.g. 'AcKd' 'QhJs'"`
}

func (c *ShowdownCmd) Run(e *env) error {
	game, err := poker.ParseGame(c.Game)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	holes := make([]poker.Cards, len(c.Hands))
	for i, h := range c.Hands {
		holes[i], err = poker.ParseCards(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
	}
	hands := poker.WithBoard(board, holes...)

	res, err := poker.Showdown(game, hands)
	if err != nil {
		return err
	}
	e.logger.Debug("Showdown scored", "game", game.Slug(), "hands", len(hands), "high", res.High.Rank)

	if len(board) > 0 {
		fmt.Fprintf(e.out, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(e.out, "%s", board)
		if texture := boardTexture(game, board); len(texture) > 0 {
			fmt.Fprintf(e.out, "  %s", dimStyle.Render(strings.Join(texture, ", ")))
		}
		fmt.Fprint(e.out, "\n\n")
	}

	w := newTable(e.out)
	if game.HasLow() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			headerStyle.Render("hand"),
			headerStyle.Render("high"),
			headerStyle.Render("low"),
			headerStyle.Render("result"))
	} else {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			headerStyle.Render("hand"),
			headerStyle.Render("high"),
			headerStyle.Render("result"))
	}

	for i, h := range hands {
		high, err := game.BestHigh(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		row := []string{handStyle.Render(h.Hole.String()), categoryStyle.Render(high.String())}

		if game.HasLow() {
			low, ok, err := game.BestLow(h)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			if ok {
				row = append(row, categoryStyle.Render(low.String()))
			} else {
				row = append(row, placeholder())
			}
		}

		row = append(row, outcome(res, i))
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func boardTexture(game poker.Game, board poker.Cards) []string {
	var texture []string
	if poker.Paired(board) {
		texture = append(texture, "paired")
	}
	if poker.FlushPossible(board) {
		texture = append(texture, "flush possible")
	}
	if game.HasLow() && game.Strategy() == poker.TwoPlusThree && !poker.EightLowPossible(board) {
		texture = append(texture, "no low possible")
	}
	return texture
}

// outcome describes what hand i took from the pot.
func outcome(res poker.ShowdownResult, i int) string {
	if res.Scooper == i {
		return winStyle.Render("scoops")
	}

	if res.Low == nil {
		switch {
		case !slices.Contains(res.High.Winners, i):
			return placeholder()
		case len(res.High.Winners) == 1:
			return winStyle.Render("wins")
		default:
			return tieStyle.Render("splits")
		}
	}

	var parts []string
	if slices.Contains(res.High.Winners, i) {
		if len(res.High.Winners) == 1 {
			parts = append(parts, winStyle.Render("wins high"))
		} else {
			parts = append(parts, tieStyle.Render("splits high"))
		}
	}
	if slices.Contains(res.Low.Winners, i) {
		if len(res.Low.Winners) == 1 {
			parts = append(parts, winStyle.Render("wins low"))
		} else {
			parts = append(parts, tieStyle.Render("splits low"))
		}
	}
	if len(parts) == 0 {
		return placeholder()
	}
	return strings.Join(parts, ", ")
}
