package game

import "github.com/lox/thegame/internal/deck"

// TurnEvent is published when a seat starts its turn.
type TurnEvent struct {
	Turn     int
	Player   int
	Hand     []deck.Card
	Stacks   []Stack
	DeckSize int
	Required int
}

// PlayEvent is published for every card placed.
type PlayEvent struct {
	Turn       int
	Player     int
	Card       deck.Card
	StackIndex int
	Stack      Stack // after the play
	Distance   int
}

// Observer receives a running account of a game. It is a side channel only:
// nothing it does can change the outcome.
type Observer interface {
	TurnStarted(TurnEvent)
	CardPlayed(PlayEvent)
	ClaimsUpdated(board *PriorityBoard)
	GameFinished(Result)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) TurnStarted(TurnEvent)        {}
func (NopObserver) CardPlayed(PlayEvent)         {}
func (NopObserver) ClaimsUpdated(*PriorityBoard) {}
func (NopObserver) GameFinished(Result)          {}
