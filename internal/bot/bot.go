// Package bot contains the automated strategies that play The Game.
package bot

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/thegame/internal/game"
)

// Kind selects a strategy
type Kind int

const (
	Random Kind = iota
	Naive
	SleepPriority
	Priority
)

var kindNames = [...]string{
	Random:        "random",
	Naive:         "naive",
	SleepPriority: "sleep-priority",
	Priority:      "priority",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every strategy in a stable order.
func Kinds() []Kind {
	return []Kind{Random, Naive, SleepPriority, Priority}
}

// Names lists the strategy names accepted by ParseKind.
func Names() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames[:])
	return names
}

// ParseKind looks up a strategy by name. Underscores and case are ignored so
// "SLEEP_PRIORITY" and "sleep-priority" are the same.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range kindNames {
		if n == normalized {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(kindNames[:], ", "))
}

// Factory returns a game.StrategyFactory that gives every seat the same kind
// of strategy.
func Factory(kind Kind, logger *log.Logger) game.StrategyFactory {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(player int, rng *rand.Rand) game.Strategy {
		return New(kind, rng, logger.With("player", player))
	}
}

// New creates a single strategy instance.
func New(kind Kind, rng *rand.Rand, logger *log.Logger) game.Strategy {
	switch kind {
	case Random:
		return NewRandBot(rng, logger)
	case Naive:
		return NewNaiveBot(logger)
	case SleepPriority:
		return NewSleepPriorityBot(logger)
	case Priority:
		return NewPriorityBot(logger)
	default:
		panic(fmt.Sprintf("bot: unknown kind %d", int(kind)))
	}
}

// noHooks is embedded by strategies that do nothing at the end of a turn.
type noHooks struct{}

func (noHooks) OwnTurnEnd(game.TurnView) {}
func (noHooks) TurnEnd(game.TurnView)    {}
