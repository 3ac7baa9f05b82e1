package main

import (
	"fmt"

	"github.com/lox/thegame/internal/bot"
	"github.com/lox/thegame/internal/display"
	"github.com/lox/thegame/internal/game"
)

type PlayCmd struct {
	Players  int    `default:"5" env:"THEGAME_PLAYERS" help:"Number of players"`
	Strategy string `default:"priority" enum:"random,naive,sleep-priority,priority" env:"THEGAME_STRATEGY" help:"Strategy used by every player (${enum})"`
	Seed     int64  `env:"THEGAME_SEED" help:"RNG seed (0 for random)"`
	Show     bool   `help:"Print every turn of the game"`
	Claims   bool   `help:"With --show, also print the priority board"`
}

func (c *PlayCmd) Run(rt *Runtime) error {
	kind, err := bot.ParseKind(c.Strategy)
	if err != nil {
		return err
	}
	seed := resolveSeed(c.Seed)

	var observer game.Observer
	if c.Show {
		board := display.NewBoard(rt.Stdout, display.Options{NoColor: rt.NoColor, ShowClaims: c.Claims})
		board.Banner(c.Players, kind.String(), seed)
		observer = board
	}

	g, err := game.New(game.Config{
		Players:  c.Players,
		Strategy: bot.Factory(kind, rt.Logger),
		Seed:     seed,
		Logger:   rt.Logger,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	res, err := g.Play(rt.Context)
	if err != nil {
		return fmt.Errorf("game failed (seed %d): %w", seed, err)
	}

	rt.Logger.Info("Game finished", "seed", seed, "outcome", res.Outcome, "leftover", res.Leftover, "turns", res.Turns)
	fmt.Fprintf(rt.Stdout, "%d\n", res.Leftover)
	return nil
}
