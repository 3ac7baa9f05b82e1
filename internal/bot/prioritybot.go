package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/thegame/internal/game"
)

// Publish says when a PriorityBot refreshes its claims on the board.
type Publish int

const (
	// AfterOwnTurn publishes right after the bot's own turn.
	AfterOwnTurn Publish = iota
	// AfterEveryTurn publishes after every player's turn, so all bots see a
	// board that was refreshed at the same moment.
	AfterEveryTurn
)

// PriorityBot plays like NaiveBot but steers away from stacks another player
// has claimed for a back-step, and claims stacks for its own back-steps.
//
// Claims are advisory. A back-step is never deferred, and when every option
// is claimed the bot plays its best move anyway.
type PriorityBot struct {
	kind    Kind
	publish Publish
	logger  *log.Logger
}

// NewSleepPriorityBot creates a PriorityBot that publishes after its own turn.
func NewSleepPriorityBot(logger *log.Logger) *PriorityBot {
	return &PriorityBot{kind: SleepPriority, publish: AfterOwnTurn, logger: logger}
}

// NewPriorityBot creates a PriorityBot that publishes after every turn.
func NewPriorityBot(logger *log.Logger) *PriorityBot {
	return &PriorityBot{kind: Priority, publish: AfterEveryTurn, logger: logger}
}

func (p *PriorityBot) Name() string { return p.kind.String() }

func (p *PriorityBot) ChooseMove(view game.TurnView, moves []game.Move) game.Move {
	sorted := append([]game.Move(nil), moves...)
	game.SortByDistance(sorted)

	best := sorted[0]
	if best.IsBackStep() {
		p.logger.Debug("priority-bot back-step", "card", view.Hand[best.CardIndex], "stack", best.StackIndex)
		return best
	}

	for _, m := range sorted {
		if !view.Claims.ClaimedByOther(m.StackIndex) {
			return m
		}
	}

	p.logger.Debug("priority-bot every stack claimed, playing best move", "card", view.Hand[best.CardIndex], "stack", best.StackIndex)
	return best
}

func (p *PriorityBot) OwnTurnEnd(view game.TurnView) {
	if p.publish == AfterOwnTurn {
		p.claim(view)
	}
}

func (p *PriorityBot) TurnEnd(view game.TurnView) {
	if p.publish == AfterEveryTurn {
		p.claim(view)
	}
}

// claim replaces this bot's claims with the stacks it can back-step on now.
func (p *PriorityBot) claim(view game.TurnView) {
	view.Claims.Clear()
	for _, m := range view.LegalMoves() {
		if m.IsBackStep() {
			view.Claims.Claim(m.StackIndex)
		}
	}
}
