package showdown

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/internal/statistics"
	"github.com/lox/pokereval/poker"
)

// Deal is one independent showdown.
type Deal struct {
	Holes [][2]poker.Card
	Board [5]poker.Card
}

// cancelCheckInterval is how many deals a worker evaluates between context checks.
const cancelCheckInterval = 256

// EvaluateBatch evaluates deals across workers and returns the merged tally.
// Deals are partitioned by index into contiguous ranges; each worker keeps a
// private tally so no synchronization happens per evaluation. workers < 1
// uses one worker per CPU.
func (e *Evaluator) EvaluateBatch(ctx context.Context, deals []Deal, workers int) (*statistics.Tally, error) {
	total := &statistics.Tally{}
	if len(deals) == 0 {
		return total, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(deals) {
		workers = len(deals)
	}

	dealsPerWorker := len(deals) / workers
	remainder := len(deals) % workers
	partials := make([]statistics.Tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	start := 0
	for w := 0; w < workers; w++ {
		n := dealsPerWorker
		if w < remainder {
			n++
		}
		lo, hi := start, start+n
		start = hi

		g.Go(func() error {
			return e.runBatchWorker(ctx, deals[lo:hi], lo, &partials[w])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range partials {
		total.Merge(&partials[i])
	}
	return total, nil
}

func (e *Evaluator) runBatchWorker(ctx context.Context, deals []Deal, offset int, tally *statistics.Tally) error {
	var (
		res     Result
		winners []int
	)
	for i := range deals {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := e.EvaluateInto(&res, deals[i].Holes, deals[i].Board); err != nil {
			return fmt.Errorf("deal %d: %w", offset+i, err)
		}
		winners = appendWinners(winners[:0], res.Scores)
		tally.Add(res.Scores, winners)
	}
	return nil
}
