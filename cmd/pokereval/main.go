package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/cmd/pokereval/shared"
	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"pokereval.hcl" type:"path" help:"Path to HCL config file (defaults apply if missing)"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Score 5- or 7-card hands"`
	Showdown ShowdownCmd      `cmd:"" help:"Find the winners among hole cards on a board"`
	Deal     DealCmd          `cmd:"" help:"Shuffle (or replay) a game and show its showdown"`
	Simulate SimulateCmd      `cmd:"" help:"Measure showdown throughput and the category distribution"`
	Deck     DeckCmd          `cmd:"" help:"Print the reference deck and card encodings"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("pokereval"),
		kong.Description("Lookup-table poker hand evaluator and showdown tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// env is what a command needs once config and flags are merged.
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *render.Printer
	out     io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", g.Config, err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	out, errOut := g.Stdout, g.Stderr
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	return &env{
		cfg:     cfg,
		logger:  shared.SetupLogger(errOut, level),
		printer: render.NewPrinter(out, !cfg.NoColor),
		out:     out,
	}, nil
}
