package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/thegame/internal/bot"
	"github.com/lox/thegame/internal/game"
	"github.com/lox/thegame/internal/randutil"
	"github.com/lox/thegame/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrTimeout is returned when a single game runs longer than Config.Timeout.
var ErrTimeout = errors.New("game timed out")

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Players  int
	Strategy bot.Kind
	Seed     int64
	Workers  int           // 0 uses GOMAXPROCS
	Timeout  time.Duration // per game, 0 disables
	Logger   *log.Logger
	Clock    quartz.Clock

	// Factory overrides Strategy when set, e.g. for mixed tables.
	Factory game.StrategyFactory

	// Progress is called after every finished game. Calls are serialised.
	Progress func(Progress)
}

// Progress reports how far a batch has got.
type Progress struct {
	Done    int
	Total   int
	Wins    int
	Elapsed time.Duration
}

// Report is the outcome of a batch.
type Report struct {
	RunID    string
	Strategy bot.Kind
	Players  int
	Seed     int64
	Stats    *statistics.Statistics
	Results  []game.Result // in game order
	Duration time.Duration
}

// Simulator plays batches of independent games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays every game and aggregates the results. Game i is seeded with
// randutil.Derive(Seed, i), so the results do not depend on Workers.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if cfg.Games < 1 {
		return nil, fmt.Errorf("need at least one game, got %d", cfg.Games)
	}
	if cfg.Players < 1 {
		return nil, fmt.Errorf("need at least one player, got %d", cfg.Players)
	}

	runID := newRunID()
	logger := cfg.Logger.With("run", runID)
	workers := min(cfg.Workers, cfg.Games)
	start := cfg.Clock.Now()

	logger.Info("Starting simulation", "games", cfg.Games, "players", cfg.Players,
		"strategy", cfg.Strategy, "seed", cfg.Seed, "workers", workers)

	results := make([]game.Result, cfg.Games)
	jobs := make(chan int)

	var (
		mu   sync.Mutex
		done int
		wins int
	)
	finished := func(res game.Result) {
		mu.Lock()
		defer mu.Unlock()
		done++
		if res.Won() {
			wins++
		}
		if cfg.Progress != nil {
			cfg.Progress(Progress{Done: done, Total: cfg.Games, Wins: wins, Elapsed: cfg.Clock.Now().Sub(start)})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < cfg.Games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	factory := cfg.Factory
	if factory == nil {
		factory = bot.Factory(cfg.Strategy, logger)
	}

	perWorker := make([]statistics.Statistics, workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			table, err := game.New(game.Config{
				Players:  cfg.Players,
				Strategy: factory,
				Seed:     cfg.Seed,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			for i := range jobs {
				seed := randutil.Derive(cfg.Seed, i)
				res, err := s.playGame(ctx, table, seed)
				if err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
				}
				results[i] = res
				perWorker[w].Add(res)
				finished(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i := range perWorker {
		stats.Merge(&perWorker[i])
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	duration := cfg.Clock.Now().Sub(start)
	logger.Info("Simulation complete", "games", stats.Games, "wins", stats.Wins,
		"win_rate", fmt.Sprintf("%.2f%%", stats.WinRate()*100), "duration", duration)

	return &Report{
		RunID:    runID,
		Strategy: cfg.Strategy,
		Players:  cfg.Players,
		Seed:     cfg.Seed,
		Stats:    stats,
		Results:  results,
		Duration: duration,
	}, nil
}

// playGame deals and plays one game on a reused table
func (s *Simulator) playGame(ctx context.Context, table *game.Game, seed int64) (game.Result, error) {
	table.Reseed(seed)
	if err := table.Reset(s.config.Players); err != nil {
		return game.Result{}, err
	}

	gameCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	if s.config.Timeout > 0 {
		timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
			timedOut.Store(true)
			cancel()
		})
		defer timer.Stop()
	}

	res, err := table.Play(gameCtx)
	if err != nil && timedOut.Load() && ctx.Err() == nil {
		return game.Result{}, fmt.Errorf("%w after %v", ErrTimeout, s.config.Timeout)
	}
	return res, err
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
