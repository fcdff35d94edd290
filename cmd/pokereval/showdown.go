package main

import (
	"fmt"

	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

// ShowdownCmd evaluates explicit hole cards against a board
type ShowdownCmd struct {
	Board string   `short:"b" required:"" help:"Five board cards, e.g. 'KsKhKdKc2c'"`
	Hands []string `arg:"" help:"Two hole cards per player, e.g. 'AsAh' 'AdAc'"`
}

func (c *ShowdownCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := parseHand(c.Board, 5)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	board := [5]poker.Card(cards)

	holes := make([][2]poker.Card, len(c.Hands))
	for i, s := range c.Hands {
		hole, err := parseHand(s, 2)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		holes[i] = [2]poker.Card(hole)
	}
	if err := showdown.CheckDistinct(holes, board); err != nil {
		return err
	}

	res, err := showdown.NewEvaluator(nil).Evaluate(holes, board)
	if err != nil {
		return err
	}
	e.logger.Debug("Evaluated showdown", "players", len(holes), "winners", res.Winners())
	return e.printer.Showdown(holes, board, &res)
}
