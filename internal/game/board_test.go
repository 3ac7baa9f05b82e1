package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityBoard(t *testing.T) {
	t.Parallel()

	b := NewPriorityBoard(StackCount, 3)
	assert.Equal(t, StackCount, b.Stacks())
	assert.Equal(t, 3, b.Players())

	p0 := b.Handle(0)
	p1 := b.Handle(1)

	p1.Claim(2)
	assert.True(t, b.Claimed(2, 1))
	assert.True(t, p0.ClaimedByOther(2))
	assert.False(t, p1.ClaimedByOther(2), "own claims do not count")
	assert.True(t, p1.Claimed(2))

	p1.Claim(0)
	p0.Claim(0)
	assert.True(t, p0.ClaimedByOther(0))
	assert.True(t, p1.ClaimedByOther(0))

	p1.Clear()
	for s := 0; s < StackCount; s++ {
		assert.False(t, b.Claimed(s, 1), "stack %d", s)
	}
	assert.True(t, b.Claimed(0, 0), "clearing one player leaves the others")
	assert.False(t, p0.ClaimedByOther(0))
	assert.True(t, b.Handle(2).ClaimedByOther(0))
}

func TestPriorityBoardString(t *testing.T) {
	t.Parallel()

	b := NewPriorityBoard(StackCount, 2)
	b.Handle(1).Claim(1)
	assert.Equal(t, "[0 0] - [0 1] - [0 0] - [0 0]", b.String())

	b.Handle(1).Clear()
	assert.Equal(t, "[0 0] - [0 0] - [0 0] - [0 0]", b.String())
}
