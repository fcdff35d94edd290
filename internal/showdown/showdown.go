// Package showdown scores every player's best five cards against a shared
// board and determines the winners.
package showdown

import (
	"errors"

	"github.com/lox/pokereval/poker"
)

// ErrNoPlayers is returned when a showdown has no hole cards to evaluate.
var ErrNoPlayers = errors.New("showdown: at least one player required")

// Evaluator runs showdowns against an immutable table bundle. It holds no
// mutable state and is safe for concurrent use.
type Evaluator struct {
	tables *poker.Tables
}

// NewEvaluator returns an Evaluator over tables, or over the process-wide
// tables when tables is nil.
func NewEvaluator(tables *poker.Tables) *Evaluator {
	if tables == nil {
		tables = poker.DefaultTables()
	}
	return &Evaluator{tables: tables}
}

// Tables returns the bundle the evaluator scores with.
func (e *Evaluator) Tables() *poker.Tables {
	return e.tables
}

// Result holds one entry per player, indexed by seat.
type Result struct {
	Scores     []poker.HandRank
	Categories []poker.HandType
	// Combos holds the poker.Combos7 row of each player's best five, where
	// positions 0-1 are the hole cards and 2-6 the board.
	Combos []uint8
}

// Evaluate scores each player's two hole cards with the board. Card
// uniqueness is not checked; see CheckDistinct.
func (e *Evaluator) Evaluate(holes [][2]poker.Card, board [5]poker.Card) (Result, error) {
	var r Result
	if err := e.EvaluateInto(&r, holes, board); err != nil {
		return Result{}, err
	}
	return r, nil
}

// EvaluateInto is like Evaluate but reuses the slices in r.
func (e *Evaluator) EvaluateInto(r *Result, holes [][2]poker.Card, board [5]poker.Card) error {
	n := len(holes)
	if n < 1 {
		return ErrNoPlayers
	}
	r.Scores = resize(r.Scores, n)
	r.Categories = resize(r.Categories, n)
	r.Combos = resize(r.Combos, n)

	for seat := range holes {
		score, row := e.tables.Best5of7(assemble(holes[seat], board))
		r.Scores[seat] = score
		r.Categories[seat] = score.Type()
		r.Combos[seat] = row
	}
	return nil
}

func assemble(hole [2]poker.Card, board [5]poker.Card) [7]poker.Card {
	return [7]poker.Card{hole[0], hole[1], board[0], board[1], board[2], board[3], board[4]}
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// Best returns the winning score, or InvalidRank for an empty result.
func (r *Result) Best() poker.HandRank {
	if len(r.Scores) == 0 {
		return poker.InvalidRank
	}
	best := r.Scores[0]
	for _, s := range r.Scores[1:] {
		if s < best {
			best = s
		}
	}
	return best
}

// Winners returns the seats holding the best score.
func (r *Result) Winners() []int {
	return Winners(r.Scores)
}

// BestFive materializes the five cards that produced seat's score.
func (r *Result) BestFive(holes [][2]poker.Card, board [5]poker.Card, seat int) [5]poker.Card {
	return poker.SelectCombo(assemble(holes[seat], board), r.Combos[seat])
}

// Winners returns every index holding the minimum score in ascending order.
// It has more than one element only on a tie.
func Winners(scores []poker.HandRank) []int {
	return appendWinners(nil, scores)
}

func appendWinners(dst []int, scores []poker.HandRank) []int {
	if len(scores) == 0 {
		return dst
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s < best {
			best = s
		}
	}
	for i, s := range scores {
		if s == best {
			dst = append(dst, i)
		}
	}
	return dst
}
