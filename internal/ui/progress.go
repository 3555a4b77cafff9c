package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type labelMsg string

type workDoneMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// progressModel renders a spinner with a one-line label while a
// long-running measurement executes. It is display-only: key presses are
// ignored so the underlying work cannot be interrupted halfway.
type progressModel struct {
	sp    spinner.Model
	label string
	done  bool
}

func newProgressModel(label string) progressModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)
	return progressModel{sp: sp, label: label}
}

func (m progressModel) Init() tea.Cmd {
	return m.sp.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case labelMsg:
		m.label = string(msg)
		return m, nil

	case workDoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("  %s %s", m.sp.View(), m.label)
}

// ─── Runner ──────────────────────────────────────────────────────────────────

// WithProgress runs work under a spinner that shows the label reported
// through setLabel. When stdout is not a terminal the work runs directly
// with no spinner, matching plain piped output.
func WithProgress(initial string, work func(setLabel func(string))) {
	if !interactive {
		work(func(string) {})
		return
	}

	p := tea.NewProgram(newProgressModel(initial))

	done := make(chan struct{})
	go func() {
		defer close(done)
		work(func(label string) {
			p.Send(labelMsg(label))
		})
		p.Send(workDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		// Terminal setup failed; wait for the work to finish anyway.
		<-done
		return
	}
	<-done
}
