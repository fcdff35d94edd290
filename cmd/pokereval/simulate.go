package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/pokereval/cmd/pokereval/shared"
	"github.com/lox/pokereval/internal/simulator"
	"github.com/lox/pokereval/internal/statistics"
	"github.com/lox/pokereval/poker"
)

// SimulateCmd runs random showdowns across workers
type SimulateCmd struct {
	Showdowns int    `short:"n" help:"Number of showdowns (default from config)"`
	Players   int    `short:"p" help:"Players per showdown (default from config)"`
	Workers   *int   `short:"w" help:"Worker goroutines, 0 = one per CPU (default from config)"`
	Seed      *int64 `help:"RNG seed (default from config, 0 = time based)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	sc := *e.cfg.Simulate
	if c.Showdowns > 0 {
		sc.Showdowns = c.Showdowns
	}
	if c.Players > 0 {
		sc.Players = c.Players
	}
	if c.Workers != nil {
		sc.Workers = *c.Workers
	}
	if c.Seed != nil {
		sc.Seed = *c.Seed
	}
	if sc.Seed == 0 {
		sc.Seed = time.Now().UnixNano()
	}

	sim, err := simulator.New(simulator.Config{
		Showdowns: sc.Showdowns,
		Players:   sc.Players,
		Workers:   sc.Workers,
		Seed:      sc.Seed,
		Logger:    e.logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(context.Background(), e.logger)
	defer stop()

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	return writeReport(e, report)
}

func writeReport(e *env, r *simulator.Report) error {
	fmt.Fprintf(e.out, "%d showdowns x %d players on %d workers (seed %d)\n",
		r.Showdowns, r.Players, r.Workers, r.Seed)
	fmt.Fprintf(e.out, "%v elapsed, %.0f showdowns/sec, %.0f evals/sec\n\n",
		r.Elapsed.Truncate(time.Millisecond), r.ShowdownsPerSecond(), r.EvalsPerSecond())

	t := r.Tally
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "hand\tcount\tobserved\treference\tdeviation\t\n")
	for _, ht := range poker.HandTypes {
		fmt.Fprintf(w, "%s\t%d\t%.3f%%\t%.3f%%\t%+.3f%%\t\n",
			ht, t.Categories[ht],
			100*t.Frequency(ht),
			100*statistics.Reference7CardFrequency(ht),
			100*t.Deviation(ht))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "\nties %d (%.2f%% of showdowns), mean score %.1f\n",
		t.Ties, 100*float64(t.Ties)/float64(max(t.Showdowns, 1)), t.MeanScore())
	return e.printer.Line("seat wins %v", t.SeatWins)
}
