package main

import (
	"fmt"

	"github.com/lox/thegame/internal/config"
)

type RunCmd struct {
	File     string `arg:"" type:"existingfile" help:"HCL run file"`
	Only     string `help:"Only execute the run with this name"`
	Progress bool   `help:"Show a live progress bar for each run"`
}

func (c *RunCmd) Run(rt *Runtime) error {
	cfg, err := config.Load(c.File)
	if err != nil {
		return err
	}
	if level, ok := cfg.Level(); ok && !rt.Verbose {
		rt.Logger.SetLevel(level)
	}

	ran := 0
	for _, r := range cfg.Runs {
		if c.Only != "" && r.Name != c.Only {
			continue
		}
		ran++

		fmt.Fprintf(rt.Stdout, "\n### %s\n", r.Name)
		_, err := runBatch(rt, batch{
			Name:     r.Name,
			Games:    r.Games,
			Players:  r.Players,
			Kind:     r.Kind(),
			Seed:     r.Seed,
			Workers:  r.Workers,
			Timeout:  r.TimeoutDuration(),
			CSV:      r.CSV,
			Progress: c.Progress,
		})
		if err != nil {
			return err
		}
	}

	if ran == 0 {
		return fmt.Errorf("no run named %q in %s", c.Only, c.File)
	}
	return nil
}
