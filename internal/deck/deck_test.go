package deck

import (
	"testing"

	"github.com/lox/thegame/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	require.Equal(t, Count, d.Len())
	require.Equal(t, 97, Count)

	seen := make(map[Card]bool, Count)
	for _, c := range d.Draw(Count) {
		require.True(t, c.Valid(), "card %d out of range", c)
		require.False(t, seen[c], "duplicate card %d", c)
		seen[c] = true
	}
	assert.True(t, d.IsEmpty())
}

func TestNewDeckIsShuffled(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(1)).Draw(Count)
	b := NewDeck(randutil.New(2)).Draw(Count)
	assert.NotEqual(t, a, b)

	again := NewDeck(randutil.New(1)).Draw(Count)
	assert.Equal(t, a, again, "same seed must produce the same order")
}

func TestDraw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		before    int
		request   int
		drawn     int
		remaining int
	}{
		{"within supply", Count, 6, 6, Count - 6},
		{"exact supply", 2, 2, 2, 0},
		{"drains remainder", 1, 2, 1, 0},
		{"empty deck", 0, 2, 0, 0},
		{"zero request", 5, 0, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeck(randutil.New(3))
			d.Draw(Count - tt.before)
			require.Equal(t, tt.before, d.Len())

			got := d.Draw(tt.request)
			assert.Len(t, got, tt.drawn)
			assert.Equal(t, tt.remaining, d.Len())
			assert.Equal(t, tt.remaining == 0, d.IsEmpty())
		})
	}
}

func TestCardsPerPlayer(t *testing.T) {
	t.Parallel()

	tests := map[int]int{1: 8, 2: 7, 3: 6, 5: 6, 8: 6}
	for players, want := range tests {
		assert.Equal(t, want, CardsPerPlayer(players), "players=%d", players)
	}
}

func TestFormatCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", FormatCards(nil))
	assert.Equal(t, "[3 17 98]", FormatCards([]Card{3, 17, 98}))
	assert.Equal(t, "42", Card(42).String())
	assert.False(t, Card(1).Valid())
	assert.False(t, Card(99).Valid())
}
