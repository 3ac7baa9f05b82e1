package game

import (
	rand "math/rand/v2"
	"slices"

	"github.com/lox/thegame/internal/deck"
)

// TurnView is the state a strategy sees. Stacks and Hand are copies; the
// only thing a strategy may change is its own row of the priority board.
type TurnView struct {
	Player int
	Hand   []deck.Card
	Stacks []Stack
	Claims ClaimHandle
}

// LegalMoves enumerates the moves open to the viewing player.
func (v TurnView) LegalMoves() []Move {
	return LegalMoves(v.Hand, v.Stacks)
}

// Strategy decides how a seat plays. Implementations must be cheap to create;
// a fresh one is built for every seat on every Reset.
type Strategy interface {
	// Name identifies the strategy in logs and summaries.
	Name() string

	// ChooseMove picks one of moves, which is never empty and is in
	// canonical LegalMoves order.
	ChooseMove(view TurnView, moves []Move) Move

	// OwnTurnEnd runs right after this seat's turn, before the next seat
	// acts.
	OwnTurnEnd(view TurnView)

	// TurnEnd runs for every seat, in turn order, after any seat's turn.
	TurnEnd(view TurnView)
}

// StrategyFactory builds the strategy for one seat. rng is the game's
// random source and is valid until the next Reseed.
type StrategyFactory func(player int, rng *rand.Rand) Strategy

// Seat is a player at the table: a hand, a strategy and write access to
// its own claims.
type Seat struct {
	id       int
	hand     []deck.Card
	strategy Strategy
	claims   ClaimHandle
}

func newSeat(id int, strategy Strategy, claims ClaimHandle) *Seat {
	return &Seat{id: id, strategy: strategy, claims: claims}
}

func (s *Seat) ID() int { return s.id }

func (s *Seat) Strategy() Strategy { return s.strategy }

// Hand returns a copy of the seat's cards.
func (s *Seat) Hand() []deck.Card { return slices.Clone(s.hand) }

func (s *Seat) HandSize() int { return len(s.hand) }

func (s *Seat) draw(cards []deck.Card) {
	s.hand = append(s.hand, cards...)
}

// take removes the card at index i, keeping the order of the rest.
func (s *Seat) take(i int) deck.Card {
	card := s.hand[i]
	s.hand = slices.Delete(s.hand, i, i+1)
	return card
}

func (s *Seat) view(stacks []Stack) TurnView {
	return TurnView{
		Player: s.id,
		Hand:   slices.Clone(s.hand),
		Stacks: slices.Clone(stacks),
		Claims: s.claims,
	}
}
