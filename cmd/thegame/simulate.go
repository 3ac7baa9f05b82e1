package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/thegame/internal/bot"
	"github.com/lox/thegame/internal/report"
	"github.com/lox/thegame/internal/simulator"
	"github.com/lox/thegame/internal/tui"
)

type SimulateCmd struct {
	Games    int           `default:"500" env:"THEGAME_GAMES" help:"Number of games to play"`
	Players  int           `default:"5" env:"THEGAME_PLAYERS" help:"Number of players"`
	Strategy string        `default:"priority" enum:"random,naive,sleep-priority,priority" env:"THEGAME_STRATEGY" help:"Strategy used by every player (${enum})"`
	Seed     int64         `env:"THEGAME_SEED" help:"Base RNG seed (0 for random)"`
	Workers  int           `default:"0" env:"THEGAME_WORKERS" help:"Parallel workers (0 = GOMAXPROCS)"`
	Timeout  time.Duration `default:"5s" env:"THEGAME_TIMEOUT" help:"Per game timeout (0 disables)"`
	CSV      string        `name:"csv" type:"path" help:"Write one leftover count per game to this CSV file"`
	Progress bool          `help:"Show a live progress bar"`
}

func (c *SimulateCmd) Run(rt *Runtime) error {
	kind, err := bot.ParseKind(c.Strategy)
	if err != nil {
		return err
	}
	_, err = runBatch(rt, batch{
		Name:     "simulate",
		Games:    c.Games,
		Players:  c.Players,
		Kind:     kind,
		Seed:     c.Seed,
		Workers:  c.Workers,
		Timeout:  c.Timeout,
		CSV:      c.CSV,
		Progress: c.Progress,
	})
	return err
}

// batch is one simulation request, from flags or a run file
type batch struct {
	Name     string
	Games    int
	Players  int
	Kind     bot.Kind
	Seed     int64
	Workers  int
	Timeout  time.Duration
	CSV      string
	Progress bool
}

func runBatch(rt *Runtime, b batch) (*simulator.Report, error) {
	ctx, cancel := context.WithCancel(rt.Context)
	defer cancel()

	cfg := simulator.Config{
		Games:    b.Games,
		Players:  b.Players,
		Strategy: b.Kind,
		Seed:     resolveSeed(b.Seed),
		Workers:  b.Workers,
		Timeout:  b.Timeout,
		Logger:   rt.Logger.With("batch", b.Name),
	}

	var progress *tui.Runner
	if b.Progress {
		title := fmt.Sprintf("%s · %s x%d", b.Name, b.Kind, b.Players)
		progress = tui.Start(tui.NewModel(title, b.Games, cancel), tea.WithOutput(os.Stderr))
		cfg.Progress = func(p simulator.Progress) {
			progress.Send(tui.ProgressMsg{Done: p.Done, Total: p.Total, Wins: p.Wins, Elapsed: p.Elapsed})
		}
	}

	res, err := simulator.New(cfg).Run(ctx)
	if progress != nil {
		if ferr := progress.Finish(); ferr != nil {
			rt.Logger.Warn("Progress display failed", "error", ferr)
		}
		if err != nil && progress.Interrupted() {
			return nil, fmt.Errorf("batch %s interrupted", b.Name)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", b.Name, err)
	}

	report.PrintSummary(rt.Stdout, res)

	if b.CSV != "" {
		if err := report.SaveCSV(b.CSV, res.Results); err != nil {
			return nil, err
		}
		fmt.Fprintf(rt.Stdout, "\nResults written to %s\n", b.CSV)
	}
	return res, nil
}
