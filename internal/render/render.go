// Package render formats cards and showdown results for terminals.
package render

import (
	"sort"

	"github.com/lox/pokereval/poker"
)

// Label returns the display name of a score. Score 1 is shown as a royal
// flush; every other score uses its category name.
func Label(r poker.HandRank) string {
	if r == 1 {
		return "Royal Flush"
	}
	return r.Type().String()
}

// wheelPattern is the rank pattern of A-5-4-3-2.
const wheelPattern = 1<<poker.Ace | 1<<poker.Five | 1<<poker.Four | 1<<poker.Three | 1<<poker.Two

// DisplayOrder sorts five cards for display: larger rank groups first, then
// higher ranks, then suit. In a five-high straight the ace moves to the end.
// The result is cosmetic and never used for scoring.
func DisplayOrder(cards [5]poker.Card) [5]poker.Card {
	var counts [13]int
	var pattern uint16
	for _, c := range cards {
		counts[c.Rank()]++
		pattern |= c.RankBit()
	}

	wheel := pattern == wheelPattern
	key := func(c poker.Card) int {
		if wheel && c.Rank() == poker.Ace {
			return -1
		}
		return int(c.Rank())
	}

	out := cards
	sort.SliceStable(out[:], func(i, j int) bool {
		a, b := out[i], out[j]
		if ca, cb := counts[a.Rank()], counts[b.Rank()]; ca != cb {
			return ca > cb
		}
		if ka, kb := key(a), key(b); ka != kb {
			return ka > kb
		}
		return a.Suit() < b.Suit()
	})
	return out
}
