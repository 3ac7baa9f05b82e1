// Package display renders a running game for humans. It implements
// game.Observer and never influences play.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/thegame/internal/deck"
	"github.com/lox/thegame/internal/game"
	"github.com/muesli/termenv"
)

// Styles contains styling for game display
type Styles struct {
	Header     lipgloss.Style
	StackUp    lipgloss.Style
	StackDown  lipgloss.Style
	Hand       lipgloss.Style
	Play       lipgloss.Style
	BackStep   lipgloss.Style
	Claims     lipgloss.Style
	Won        lipgloss.Style
	Lost       lipgloss.Style
	Separator  lipgloss.Style
	PlayerName lipgloss.Style
}

// NewStyles creates the display styles for the given renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		StackUp: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		StackDown: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Hand: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Play:     r.NewStyle(),
		BackStep: r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Claims:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Won: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lost: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Separator:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
		PlayerName: r.NewStyle().Bold(true),
	}
}

// Options configures a Board
type Options struct {
	// NoColor forces plain ASCII output regardless of the terminal.
	NoColor bool
	// ShowClaims prints the priority board after every turn.
	ShowClaims bool
}

// Board prints every turn of a game to a writer
type Board struct {
	w      io.Writer
	styles *Styles
	opts   Options
	last   string
}

var _ game.Observer = (*Board)(nil)

// NewBoard creates a display writing to w
func NewBoard(w io.Writer, opts Options) *Board {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Board{w: w, styles: NewStyles(r), opts: opts}
}

// Banner prints the game header
func (b *Board) Banner(players int, strategy string, seed int64) {
	fmt.Fprintln(b.w, b.styles.Header.Render(fmt.Sprintf("The Game · %d players · %s · seed %d", players, strategy, seed)))
}

// FormatStacks renders the four piles as "1↑  1↑  99↓  99↓".
func (b *Board) FormatStacks(stacks []game.Stack) string {
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		if s.Ascending() {
			parts[i] = b.styles.StackUp.Render(s.String())
		} else {
			parts[i] = b.styles.StackDown.Render(s.String())
		}
	}
	return strings.Join(parts, "  ")
}

func (b *Board) TurnStarted(e game.TurnEvent) {
	fmt.Fprintf(b.w, "%s %s  deck %d\n",
		b.styles.PlayerName.Render(fmt.Sprintf("Turn %d · Player %d", e.Turn, e.Player)),
		b.styles.Separator.Render("│"),
		e.DeckSize)
	fmt.Fprintln(b.w, b.FormatStacks(e.Stacks))
	fmt.Fprintln(b.w, b.styles.Hand.Render(deck.FormatCards(e.Hand)))
}

func (b *Board) CardPlayed(e game.PlayEvent) {
	line := fmt.Sprintf("Played: %d on stack %d (%s)", e.Card, e.StackIndex, e.Stack)
	if e.Distance == -1 {
		fmt.Fprintln(b.w, b.styles.BackStep.Render(line+" back-step"))
		return
	}
	fmt.Fprintln(b.w, b.styles.Play.Render(line))
}

func (b *Board) ClaimsUpdated(board *game.PriorityBoard) {
	if !b.opts.ShowClaims {
		return
	}
	s := board.String()
	if s == b.last {
		return
	}
	b.last = s
	fmt.Fprintln(b.w, b.styles.Claims.Render("Claims: "+s))
}

func (b *Board) GameFinished(r game.Result) {
	fmt.Fprintln(b.w, b.styles.Separator.Render(strings.Repeat("─", 32)))
	if r.Won() {
		fmt.Fprintln(b.w, b.styles.Won.Render(fmt.Sprintf("Won! Every card placed in %d turns", r.Turns)))
		return
	}
	fmt.Fprintln(b.w, b.styles.Lost.Render(fmt.Sprintf("Lost: player %d is blocked with %d cards left over", r.BlockedPlayer, r.Leftover)))
}
