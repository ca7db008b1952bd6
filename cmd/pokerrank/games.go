package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerrank/poker"
)

// GamesCmd lists the supported games
type GamesCmd struct{}

func (c *GamesCmd) Run(e *env) error {
	w := newTable(e.out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("game"),
		headerStyle.Render("name"),
		headerStyle.Render("cards"),
		headerStyle.Render("low"),
		headerStyle.Render("hand"),
		headerStyle.Render("aliases"))

	for _, g := range poker.Games() {
		low := placeholder()
		if g.HasLow() {
			low = "8-or-better"
		}
		fmt.Fprintf(w, "%s\t%s\t%d+%d\t%s\t%s\t%s\n",
			handStyle.Render(g.Slug()),
			g,
			g.HoleCards(), g.BoardCards(),
			low,
			categoryStyle.Render(g.Strategy().String()),
			dimStyle.Render(strings.Join(g.Aliases(), ", ")))
	}
	return w.Flush()
}
