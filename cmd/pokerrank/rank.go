package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerrank/poker"
)

// RankCmd ranks a single hand
type RankCmd struct {
	Cards []string `arg:"" help:"Cards to rank, e.g. 'AS KS QS JS TS' or ASKSQSJSTS; two cards rank a starting hand"`
	Low   bool     `help:"Also rank the hand under ace-to-five low rules"`
}

func (c *RankCmd) Run(e *env) error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}

	if len(cards) == 2 {
		return c.startingHand(e, cards)
	}

	rank, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	e.logger.Debug("Ranked hand", "cards", cards, "value", fmt.Sprintf("%#08x", uint32(rank)))

	w := newTable(e.out)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("cards"), handStyle.Render(cards.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("high"), winStyle.Render(rank.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("category"), categoryStyle.Render(rank.Type().String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("ranks"), rank.Ranks())
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("value"), dimStyle.Render(fmt.Sprintf("%#08x", uint32(rank))))

	if c.Low {
		low, err := poker.EvaluateLow(cards)
		if err != nil {
			return err
		}
		desc := low.String()
		if low.IsEightOrBetter() {
			desc += " (eight or better)"
		}
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("low"), tieStyle.Render(desc))
	}

	return w.Flush()
}

func (c *RankCmd) startingHand(e *env, cards poker.Cards) error {
	if cards[0] == cards[1] {
		return fmt.Errorf("%w: %s", poker.ErrDuplicateCard, cards[0])
	}
	if c.Low {
		return fmt.Errorf("%w: low needs at least 5 cards", poker.ErrInvalidHandSize)
	}

	rank := poker.StartingHandRank(cards[0], cards[1])
	category := poker.CategorizeHoleCards(cards[0], cards[1])
	e.logger.Debug("Ranked starting hand", "cards", cards, "category", category)

	w := newTable(e.out)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("cards"), handStyle.Render(cards.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("starting"), winStyle.Render(rank.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("category"), categoryStyle.Render(string(category)))
	return w.Flush()
}
