package display

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lox/thegame/internal/bot"
	"github.com/lox/thegame/internal/deck"
	"github.com/lox/thegame/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStacks(t *testing.T) {
	t.Parallel()

	b := NewBoard(&bytes.Buffer{}, Options{NoColor: true})
	assert.Equal(t, "1↑  1↑  99↓  99↓", b.FormatStacks(game.NewStacks()))
}

func TestBoardEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewBoard(&buf, Options{NoColor: true, ShowClaims: true})

	stacks := game.NewStacks()
	b.TurnStarted(game.TurnEvent{Turn: 3, Player: 1, Hand: []deck.Card{5, 40}, Stacks: stacks, DeckSize: 60, Required: 2})
	require.NoError(t, stacks[0].Add(5))
	b.CardPlayed(game.PlayEvent{Turn: 3, Player: 1, Card: 5, StackIndex: 0, Stack: stacks[0], Distance: 4})
	b.CardPlayed(game.PlayEvent{Turn: 3, Player: 1, Card: 89, StackIndex: 2, Stack: stacks[2], Distance: -1})

	board := game.NewPriorityBoard(game.StackCount, 2)
	board.Handle(1).Claim(2)
	b.ClaimsUpdated(board)
	b.ClaimsUpdated(board)

	out := buf.String()
	assert.Contains(t, out, "Turn 3 · Player 1")
	assert.Contains(t, out, "deck 60")
	assert.Contains(t, out, "[5 40]")
	assert.Contains(t, out, "Played: 5 on stack 0 (5↑)")
	assert.Contains(t, out, "back-step")
	assert.Equal(t, 1, strings.Count(out, "Claims: [0 0] - [0 0] - [0 1] - [0 0]"), "unchanged claims are printed once")
}

func TestBoardHidesClaimsByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewBoard(&buf, Options{NoColor: true})
	b.ClaimsUpdated(game.NewPriorityBoard(game.StackCount, 1))
	assert.Empty(t, buf.String())
}

func TestBoardFullGame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := NewBoard(&buf, Options{NoColor: true})
	b.Banner(3, "naive", 8)

	g, err := game.New(game.Config{Players: 3, Strategy: bot.Factory(bot.Naive, nil), Seed: 8, Observer: b})
	require.NoError(t, err)
	res, err := g.Play(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "The Game · 3 players · naive · seed 8")
	assert.Equal(t, res.Turns, strings.Count(out, "Turn "))
	assert.Equal(t, res.Plays, strings.Count(out, "Played: "))
	if res.Won() {
		assert.Contains(t, out, "Won!")
	} else {
		assert.Contains(t, out, "Lost: player")
	}
}
