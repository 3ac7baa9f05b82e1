package game

import (
	"testing"

	"github.com/lox/thegame/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Parallel()

	stacks := []Stack{
		{dir: Ascending, current: 30},
		{dir: Ascending, current: 90},
		{dir: Descending, current: 20},
		{dir: Descending, current: 70},
	}
	hand := []deck.Card{80, 10, 95}

	moves := LegalMoves(hand, stacks)
	want := []Move{
		{CardIndex: 0, StackIndex: 0, Distance: 50},
		{CardIndex: 0, StackIndex: 1, Distance: -1},
		{CardIndex: 0, StackIndex: 3, Distance: -1},
		{CardIndex: 1, StackIndex: 2, Distance: 10},
		{CardIndex: 1, StackIndex: 3, Distance: 60},
		{CardIndex: 2, StackIndex: 0, Distance: 65},
		{CardIndex: 2, StackIndex: 1, Distance: 5},
	}
	assert.Equal(t, want, moves)
}

func TestLegalMoves_None(t *testing.T) {
	t.Parallel()

	stacks := []Stack{
		{dir: Ascending, current: 98},
		{dir: Ascending, current: 98},
		{dir: Descending, current: 2},
		{dir: Descending, current: 2},
	}
	assert.Empty(t, LegalMoves([]deck.Card{50}, stacks))
	assert.Empty(t, LegalMoves(nil, NewStacks()))
}

func TestSortByDistance(t *testing.T) {
	t.Parallel()

	moves := []Move{
		{CardIndex: 0, StackIndex: 0, Distance: 7},
		{CardIndex: 1, StackIndex: 0, Distance: 3},
		{CardIndex: 2, StackIndex: 1, Distance: -1},
		{CardIndex: 3, StackIndex: 2, Distance: 3},
	}
	SortByDistance(moves)

	require.Len(t, moves, 4)
	assert.Equal(t, 2, moves[0].CardIndex)
	assert.Equal(t, 1, moves[1].CardIndex, "ties keep canonical order")
	assert.Equal(t, 3, moves[2].CardIndex)
	assert.Equal(t, 0, moves[3].CardIndex)
}

func TestBestMove(t *testing.T) {
	t.Parallel()

	moves := []Move{
		{CardIndex: 0, StackIndex: 0, Distance: 4},
		{CardIndex: 0, StackIndex: 2, Distance: 2},
		{CardIndex: 1, StackIndex: 1, Distance: 2},
	}
	assert.Equal(t, moves[1], BestMove(moves))

	moves = append(moves, Move{CardIndex: 2, StackIndex: 3, Distance: -1})
	assert.Equal(t, moves[3], BestMove(moves))
	assert.True(t, BestMove(moves).IsBackStep())
}
