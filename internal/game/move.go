package game

import (
	"cmp"
	"slices"

	"github.com/lox/thegame/internal/deck"
)

// Move is a legal play of the hand card at CardIndex onto the stack at
// StackIndex.
type Move struct {
	CardIndex  int
	StackIndex int
	Distance   int
}

// IsBackStep reports whether the move is a back-step.
func (m Move) IsBackStep() bool { return m.Distance == -1 }

// LegalMoves lists every playable (card, stack) pair. The order is canonical:
// hand order first, then stack order.
func LegalMoves(hand []deck.Card, stacks []Stack) []Move {
	var moves []Move
	for ci, card := range hand {
		for si, stack := range stacks {
			if stack.CheckValid(card) {
				moves = append(moves, Move{CardIndex: ci, StackIndex: si, Distance: stack.Distance(card)})
			}
		}
	}
	return moves
}

// SortByDistance orders moves best first. Ties keep their canonical order.
func SortByDistance(moves []Move) {
	slices.SortStableFunc(moves, func(a, b Move) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// BestMove returns the lowest distance move, first in canonical order on a
// tie. moves must not be empty.
func BestMove(moves []Move) Move {
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best
}
