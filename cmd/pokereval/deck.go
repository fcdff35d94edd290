package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/pokereval/poker"
)

// DeckCmd prints the reference deck
type DeckCmd struct {
	Bits bool `help:"Show the encoding as a bit pattern"`
}

func (c *DeckCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\tcard\tvalue\tprime\n")
	for _, card := range poker.ReferenceDeck() {
		value := fmt.Sprintf("%d", uint32(card))
		if c.Bits {
			value = fmt.Sprintf("%029b", uint32(card))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", card.ID(), e.printer.Card(card), value, card.Prime())
	}
	return w.Flush()
}
