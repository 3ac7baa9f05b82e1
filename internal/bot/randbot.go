package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/thegame/internal/game"
)

// RandBot plays a uniformly random legal move
type RandBot struct {
	noHooks
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Name() string { return Random.String() }

func (r *RandBot) ChooseMove(view game.TurnView, moves []game.Move) game.Move {
	move := moves[r.rng.IntN(len(moves))]
	r.logger.Debug("rand-bot random move", "card", view.Hand[move.CardIndex], "stack", move.StackIndex)
	return move
}
