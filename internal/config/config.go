// Package config loads HCL run files that describe one or more simulation
// batches.
package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/thegame/internal/bot"
)

const (
	DefaultGames    = 500
	DefaultPlayers  = 5
	DefaultStrategy = "priority"
	DefaultTimeout  = "5s"
)

// File is the decoded form of a run file
type File struct {
	LogLevel string      `hcl:"log_level,optional"`
	Runs     []RunConfig `hcl:"run,block"`
}

// RunConfig describes one simulation batch
type RunConfig struct {
	Name     string `hcl:"name,label"`
	Games    int    `hcl:"games,optional"`
	Players  int    `hcl:"players,optional"`
	Strategy string `hcl:"strategy,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
	Timeout  string `hcl:"timeout,optional"`
	CSV      string `hcl:"csv,optional"`
}

// Load parses and validates a run file
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (f *File) applyDefaults() {
	for i := range f.Runs {
		r := &f.Runs[i]
		if r.Games == 0 {
			r.Games = DefaultGames
		}
		if r.Players == 0 {
			r.Players = DefaultPlayers
		}
		if r.Strategy == "" {
			r.Strategy = DefaultStrategy
		}
		if r.Workers == 0 {
			r.Workers = runtime.GOMAXPROCS(0)
		}
		if r.Timeout == "" {
			r.Timeout = DefaultTimeout
		}
	}
}

// Validate validates the run file
func (f *File) Validate() error {
	if f.LogLevel != "" {
		if _, err := log.ParseLevel(f.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level %q", f.LogLevel)
		}
	}

	if len(f.Runs) == 0 {
		return fmt.Errorf("at least one run must be configured")
	}

	seen := make(map[string]bool, len(f.Runs))
	for _, r := range f.Runs {
		if seen[r.Name] {
			return fmt.Errorf("run %s: duplicate name", r.Name)
		}
		seen[r.Name] = true

		if r.Games < 1 {
			return fmt.Errorf("run %s: games must be positive", r.Name)
		}
		if r.Players < 1 {
			return fmt.Errorf("run %s: players must be positive", r.Name)
		}
		if r.Workers < 1 {
			return fmt.Errorf("run %s: workers must be positive", r.Name)
		}
		if _, err := bot.ParseKind(r.Strategy); err != nil {
			return fmt.Errorf("run %s: %w", r.Name, err)
		}
		if d, err := time.ParseDuration(r.Timeout); err != nil || d < 0 {
			return fmt.Errorf("run %s: invalid timeout %q", r.Name, r.Timeout)
		}
	}
	return nil
}

// Level returns the log level set in the file. ok is false when the file
// leaves it to the caller.
func (f *File) Level() (level log.Level, ok bool) {
	if f.LogLevel == "" {
		return 0, false
	}
	level, err := log.ParseLevel(f.LogLevel)
	if err != nil {
		return 0, false
	}
	return level, true
}

// Kind returns the parsed strategy. Only valid after Validate.
func (r RunConfig) Kind() bot.Kind {
	kind, _ := bot.ParseKind(r.Strategy)
	return kind
}

// TimeoutDuration returns the parsed per game timeout. Only valid after
// Validate.
func (r RunConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(r.Timeout)
	return d
}
