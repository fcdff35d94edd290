package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/internal/game"
	"github.com/lox/pokereval/internal/showdown"
	"github.com/lox/pokereval/internal/statistics"
	"github.com/lox/pokereval/poker"
)

// Config holds configuration for running simulations
type Config struct {
	Showdowns int
	Players   int
	Workers   int // 0 = one per CPU
	Seed      int64
	Logger    *log.Logger
	Clock     quartz.Clock
	Tables    *poker.Tables // nil = process-wide tables
}

// Simulator deals random showdowns and tallies the outcomes
type Simulator struct {
	config Config
	eval   *showdown.Evaluator
}

// Report summarizes a finished run
type Report struct {
	Tally     *statistics.Tally
	Showdowns int
	Players   int
	Workers   int
	Seed      int64
	Elapsed   time.Duration
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Showdowns < 1 {
		return nil, fmt.Errorf("invalid showdowns: %d", config.Showdowns)
	}
	if config.Players < 1 || config.Players > game.MaxPlayers {
		return nil, fmt.Errorf("invalid players: %d (must be 1-%d)", config.Players, game.MaxPlayers)
	}
	if config.Workers < 0 {
		return nil, fmt.Errorf("invalid workers: %d", config.Workers)
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Workers > config.Showdowns {
		config.Workers = config.Showdowns
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		eval:   showdown.NewEvaluator(config.Tables),
	}, nil
}

// Run executes the simulation. Results depend only on the seed, player count
// and worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	logger := cfg.Logger

	rng := rand.New(rand.NewSource(cfg.Seed))
	perWorker := cfg.Showdowns / cfg.Workers
	remainder := cfg.Showdowns % cfg.Workers
	partials := make([]statistics.Tally, cfg.Workers)

	logger.Info("Starting simulation",
		"showdowns", cfg.Showdowns,
		"players", cfg.Players,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	start := cfg.Clock.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		workerSeed := rng.Int63()

		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(workerSeed))
			if err := s.runWorker(ctx, n, workerRng, &partials[w]); err != nil {
				return err
			}
			logger.Debug("Worker finished", "worker", w, "showdowns", n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Tally{}
	for i := range partials {
		total.Merge(&partials[i])
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		Tally:     total,
		Showdowns: cfg.Showdowns,
		Players:   cfg.Players,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Elapsed:   cfg.Clock.Since(start),
	}
	logger.Info("Simulation complete",
		"elapsed", report.Elapsed,
		"showdowns/sec", int64(report.ShowdownsPerSecond()),
		"evals/sec", int64(report.EvalsPerSecond()))
	return report, nil
}

// checkInterval is how many showdowns a worker runs between context checks.
const checkInterval = 256

func (s *Simulator) runWorker(ctx context.Context, n int, rng *rand.Rand, tally *statistics.Tally) error {
	players := s.config.Players
	deck := poker.NewDeck(rng)
	holes := make([][2]poker.Card, players)
	var (
		res   showdown.Result
		board [game.BoardCards]poker.Card
	)

	for i := 0; i < n; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		deck.Shuffle()
		cards := deck.Deal(game.CardsNeeded(players))
		for p := range holes {
			holes[p] = [2]poker.Card{cards[p], cards[p+players]}
		}
		copy(board[:], cards[2*players:])

		if err := s.eval.EvaluateInto(&res, holes, board); err != nil {
			return err
		}
		tally.Add(res.Scores, res.Winners())
	}
	return nil
}

// ShowdownsPerSecond returns the showdown throughput of the run.
func (r *Report) ShowdownsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Showdowns) / r.Elapsed.Seconds()
}

// EvalsPerSecond returns five-card evaluations per second: every player
// scores all 21 subsets of seven cards.
func (r *Report) EvalsPerSecond() float64 {
	return r.ShowdownsPerSecond() * float64(r.Players*poker.ComboCount)
}
