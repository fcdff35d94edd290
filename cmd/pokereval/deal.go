package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lox/pokereval/internal/game"
	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/poker"
)

// DealCmd shuffles a deck, records it and plays out the showdown
type DealCmd struct {
	Players int    `short:"p" default:"9" help:"Number of players"`
	Dealer  int    `default:"0" help:"Dealer id stored with the game"`
	Seed    *int64 `help:"Shuffle seed (default: time based)"`
	CardIDs string `name:"card-ids" help:"Replay a stored ordering of pipe-delimited card ids instead of shuffling"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	var order []poker.Card
	if c.CardIDs != "" {
		order, err = game.DecodeCardIDs(c.CardIDs)
		if err != nil {
			return err
		}
		e.logger.Debug("Replaying stored ordering", "cards", len(order))
	} else {
		seed := time.Now().UnixNano()
		if c.Seed != nil {
			seed = *c.Seed
		}
		e.logger.Debug("Shuffling deck", "seed", seed)
		order = poker.NewDeck(rand.New(rand.NewSource(seed))).Order()
	}

	rec, err := game.NewRecord(nil, c.Dealer, order)
	if err != nil {
		return err
	}
	deal, err := rec.Deal(c.Players)
	if err != nil {
		return err
	}

	res, err := showdown.NewEvaluator(nil).Evaluate(deal.Holes, deal.Board)
	if err != nil {
		return err
	}
	e.logger.Info("Dealt game", "game", game.ShortID(rec.GameID), "players", c.Players, "winners", res.Winners())

	fmt.Fprintf(e.out, "game     %s\n", rec.GameID)
	fmt.Fprintf(e.out, "dealer   %d\n", rec.DealerID)
	fmt.Fprintf(e.out, "card ids %s\n\n", rec.CardIDs)
	return e.printer.Showdown(deal.Holes, deal.Board, &res)
}
