package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/thegame/internal/game"
)

// NaiveBot always plays the closest card, preferring back-steps
type NaiveBot struct {
	noHooks
	logger *log.Logger
}

// NewNaiveBot creates a new NaiveBot instance
func NewNaiveBot(logger *log.Logger) *NaiveBot {
	return &NaiveBot{logger: logger}
}

func (n *NaiveBot) Name() string { return Naive.String() }

func (n *NaiveBot) ChooseMove(view game.TurnView, moves []game.Move) game.Move {
	move := game.BestMove(moves)
	n.logger.Debug("naive-bot closest move", "card", view.Hand[move.CardIndex], "stack", move.StackIndex, "distance", move.Distance)
	return move
}
