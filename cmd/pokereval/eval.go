package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokereval/internal/render"
	"github.com/lox/pokereval/poker"
)

// EvalCmd scores standalone hands
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands of 5 or 7 cards, e.g. 'AsKsQsJsTs' or 'As Ah Ks Kh Qc Jd Th'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	tables := poker.DefaultTables()

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "cards\tscore\thand\tbest five\n")
	for i, s := range c.Hands {
		cards, err := parseHand(s, 5, 7)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		var (
			score poker.HandRank
			best  [5]poker.Card
		)
		if len(cards) == 5 {
			best = [5]poker.Card(cards)
			score = tables.Evaluate5(best)
		} else {
			seven := [7]poker.Card(cards)
			var row uint8
			score, row = tables.Best5of7(seven)
			best = poker.SelectCombo(seven, row)
			e.logger.Debug("Best five", "hand", i+1, "row", row, "combo", poker.Combos7[row])
		}
		best = render.DisplayOrder(best)

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			e.printer.Cards(cards), score, render.Label(score), e.printer.Cards(best[:]))
	}
	return w.Flush()
}

// parseHand parses concatenated card notation, requiring one of the given
// sizes and no repeated card.
func parseHand(s string, sizes ...int) ([]poker.Card, error) {
	cards, err := poker.ParseCards(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if !slices.Contains(sizes, len(cards)) {
		return nil, fmt.Errorf("must contain %s cards, got %d", joinSizes(sizes), len(cards))
	}
	var seen poker.CardSet
	for _, c := range cards {
		if seen.Has(c) {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		seen.Add(c)
	}
	return cards, nil
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " or ")
}
