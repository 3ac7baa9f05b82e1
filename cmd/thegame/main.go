package main

import (
	"context"
	"io"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Verbose  bool             `short:"v" env:"THEGAME_VERBOSE" help:"Enable debug logging"`
	NoColor  bool             `env:"THEGAME_NO_COLOR" help:"Disable colored output"`
	Play     PlayCmd          `cmd:"" help:"Play a single game"`
	Simulate SimulateCmd      `cmd:"" help:"Play a batch of games and summarise the results"`
	Run      RunCmd           `cmd:"" help:"Run every batch described in an HCL run file"`
}

// Runtime is bound into every command's Run method.
type Runtime struct {
	Context context.Context
	Logger  *log.Logger
	Stdout  io.Writer
	Verbose bool
	NoColor bool
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// resolveSeed turns a zero seed into a random one so every run is
// reproducible from its printed seed.
func resolveSeed(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int64()
	}
	return seed
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("thegame"),
		kong.Description("Simulator for the cooperative card game The Game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&Runtime{
		Context: ctx,
		Logger:  newLogger(os.Stderr, cli.Verbose),
		Stdout:  os.Stdout,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
	})
	kctx.FatalIfErrorf(err)
}
