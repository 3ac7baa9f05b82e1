package game

import (
	"strings"
)

// PriorityBoard records which players have a back-step pending on which
// stack. Anyone may read it; a player writes only its own column, through the
// ClaimHandle returned by Handle.
type PriorityBoard struct {
	claims [][]bool // [stack][player]
}

// NewPriorityBoard creates an empty board for the given table size.
func NewPriorityBoard(stacks, players int) *PriorityBoard {
	claims := make([][]bool, stacks)
	for i := range claims {
		claims[i] = make([]bool, players)
	}
	return &PriorityBoard{claims: claims}
}

// Handle returns the write access for one player.
func (b *PriorityBoard) Handle(player int) ClaimHandle {
	return ClaimHandle{board: b, player: player}
}

func (b *PriorityBoard) Stacks() int { return len(b.claims) }

func (b *PriorityBoard) Players() int {
	if len(b.claims) == 0 {
		return 0
	}
	return len(b.claims[0])
}

// Claimed reports whether player has claimed stack.
func (b *PriorityBoard) Claimed(stack, player int) bool {
	return b.claims[stack][player]
}

// ClaimedByOther reports whether anyone but player has claimed stack.
func (b *PriorityBoard) ClaimedByOther(stack, player int) bool {
	for p, claimed := range b.claims[stack] {
		if p != player && claimed {
			return true
		}
	}
	return false
}

// String renders the board one stack at a time: "[0 1 0] - [0 0 0] - ...".
func (b *PriorityBoard) String() string {
	var sb strings.Builder
	for i, row := range b.claims {
		if i > 0 {
			sb.WriteString(" - ")
		}
		sb.WriteByte('[')
		for p, claimed := range row {
			if p > 0 {
				sb.WriteByte(' ')
			}
			if claimed {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// ClaimHandle is one player's write access to the board.
type ClaimHandle struct {
	board  *PriorityBoard
	player int
}

func (h ClaimHandle) Player() int { return h.player }

// Claim flags stack as wanted for a back-step by this player.
func (h ClaimHandle) Claim(stack int) {
	h.board.claims[stack][h.player] = true
}

// Clear drops every claim this player holds.
func (h ClaimHandle) Clear() {
	for _, row := range h.board.claims {
		row[h.player] = false
	}
}

// Claimed reports whether this player holds a claim on stack.
func (h ClaimHandle) Claimed(stack int) bool {
	return h.board.Claimed(stack, h.player)
}

// ClaimedByOther reports whether another player holds a claim on stack.
func (h ClaimHandle) ClaimedByOther(stack int) bool {
	return h.board.ClaimedByOther(stack, h.player)
}
