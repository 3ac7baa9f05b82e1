// Package tui shows a live progress bar while a simulation batch runs.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	padding  = 2
	maxWidth = 60
)

// ProgressMsg reports how many games of the batch have finished
type ProgressMsg struct {
	Done    int
	Total   int
	Wins    int
	Elapsed time.Duration
}

// DoneMsg tells the model the batch is over
type DoneMsg struct{}

// Model is the Bubble Tea model for batch progress
type Model struct {
	title  string
	bar    progress.Model
	cancel context.CancelFunc

	done    int
	total   int
	wins    int
	elapsed time.Duration

	finished    bool
	interrupted bool
}

// NewModel creates a progress model. cancel is called when the user
// interrupts with ctrl+c and may be nil.
func NewModel(title string, total int, cancel context.CancelFunc) *Model {
	return &Model{
		title:  title,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxWidth)),
		cancel: cancel,
		total:  total,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.interrupted = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-padding*2, 10), maxWidth)
		return m, nil

	case ProgressMsg:
		m.done = msg.Done
		m.total = msg.Total
		m.wins = msg.Wins
		m.elapsed = msg.Elapsed
		return m, nil

	case DoneMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// Percent returns the finished fraction of the batch
func (m *Model) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Interrupted reports whether the user quit before the batch finished
func (m *Model) Interrupted() bool {
	return m.interrupted
}

func (m *Model) View() string {
	pad := strings.Repeat(" ", padding)

	var b strings.Builder
	b.WriteString("\n" + pad + HeaderStyle.Render(m.title) + "\n\n")
	b.WriteString(pad + m.bar.ViewAs(m.Percent()) + "\n\n")

	rate := 0.0
	if m.done > 0 {
		rate = float64(m.wins) * 100 / float64(m.done)
	}
	b.WriteString(pad + CountStyle.Render(fmt.Sprintf("%d/%d games", m.done, m.total)) +
		InfoStyle.Render(" · ") +
		WinStyle.Render(fmt.Sprintf("%d wins (%.1f%%)", m.wins, rate)) +
		InfoStyle.Render(fmt.Sprintf(" · %s", m.elapsed.Round(time.Millisecond))) + "\n")

	switch {
	case m.interrupted:
		b.WriteString("\n" + pad + WarningStyle.Render("Interrupted") + "\n")
	case !m.finished:
		b.WriteString("\n" + pad + InfoStyle.Render("ctrl+c to stop") + "\n")
	}
	return b.String()
}

// Runner drives a Model in its own tea.Program while a batch runs
type Runner struct {
	program *tea.Program
	model   *Model
	errc    chan error

	// updates holds at most the latest progress; forward drains it into the
	// program so Send never waits on the UI loop.
	updates   chan ProgressMsg
	forwarded chan struct{}
}

// Start launches the progress program in the background
func Start(model *Model, opts ...tea.ProgramOption) *Runner {
	r := &Runner{
		program:   tea.NewProgram(model, opts...),
		model:     model,
		errc:      make(chan error, 1),
		updates:   make(chan ProgressMsg, 1),
		forwarded: make(chan struct{}),
	}
	go func() {
		_, err := r.program.Run()
		r.errc <- err
	}()
	go r.forward()
	return r
}

func (r *Runner) forward() {
	defer close(r.forwarded)
	for msg := range r.updates {
		r.program.Send(msg)
	}
}

// Send queues progress for the program without blocking. An update the UI
// has not picked up yet is replaced by the newer one. Must not be called
// after Finish.
func (r *Runner) Send(msg ProgressMsg) {
	for {
		select {
		case r.updates <- msg:
			return
		default:
		}
		select {
		case <-r.updates:
		default:
		}
	}
}

// Finish delivers the last queued progress, stops the program and waits for
// it to exit
func (r *Runner) Finish() error {
	close(r.updates)
	<-r.forwarded
	r.program.Send(DoneMsg{})
	if err := <-r.errc; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("progress display: %w", err)
	}
	return nil
}

// Interrupted reports whether the user stopped the batch. Only valid after
// Finish.
func (r *Runner) Interrupted() bool {
	return r.model.Interrupted()
}
