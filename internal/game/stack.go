package game

import (
	"errors"
	"fmt"

	"github.com/lox/thegame/internal/deck"
)

// ErrInvalidMove is returned when a card is placed on a stack that does not
// accept it. Strategies only ever choose from LegalMoves, so seeing it means
// a bug rather than a lost game.
var ErrInvalidMove = errors.New("invalid move")

// Direction is the order a stack is built in
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}

const (
	// StackCount is the number of play piles on the table.
	StackCount = 4

	// BackStep is the exact gap that lets a card move a stack backwards.
	BackStep = 10

	ascendingStart  deck.Card = deck.MinCard - 1
	descendingStart deck.Card = deck.MaxCard + 1
)

// Stack is one of the four play piles. Only the top card matters.
type Stack struct {
	dir     Direction
	current deck.Card
}

// NewStack creates an empty stack. Ascending stacks start below the lowest
// card, descending stacks above the highest.
func NewStack(dir Direction) Stack {
	s := Stack{dir: dir, current: ascendingStart}
	if dir == Descending {
		s.current = descendingStart
	}
	return s
}

// NewStacks returns the table layout: two ascending piles then two
// descending piles.
func NewStacks() []Stack {
	return []Stack{
		NewStack(Ascending),
		NewStack(Ascending),
		NewStack(Descending),
		NewStack(Descending),
	}
}

func (s Stack) Direction() Direction { return s.dir }

func (s Stack) Ascending() bool { return s.dir == Ascending }

// Current returns the top card, or the start sentinel for an untouched stack.
func (s Stack) Current() deck.Card { return s.current }

// CheckValid reports whether card may be placed on the stack: forwards in the
// stack's direction, or exactly BackStep against it.
func (s Stack) CheckValid(card deck.Card) bool {
	if s.dir == Ascending {
		return card > s.current || card == s.current-BackStep
	}
	return card < s.current || card == s.current+BackStep
}

// Distance scores a valid play; smaller is better. A back-step scores -1 so
// it sorts ahead of every forward play.
func (s Stack) Distance(card deck.Card) int {
	if s.dir == Ascending {
		if card == s.current-BackStep {
			return -1
		}
		return int(card - s.current)
	}
	if card == s.current+BackStep {
		return -1
	}
	return int(s.current - card)
}

// IsBackStep reports whether card would move the stack backwards.
func (s Stack) IsBackStep(card deck.Card) bool {
	return s.CheckValid(card) && s.Distance(card) == -1
}

// Add places card on top of the stack.
func (s *Stack) Add(card deck.Card) error {
	if !s.CheckValid(card) {
		return fmt.Errorf("%w: card %d on %s stack at %d", ErrInvalidMove, card, s.dir, s.current)
	}
	s.current = card
	return nil
}

func (s Stack) String() string {
	arrow := "↑"
	if s.dir == Descending {
		arrow = "↓"
	}
	return fmt.Sprintf("%d%s", s.current, arrow)
}
