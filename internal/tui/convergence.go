// Package tui provides a live terminal view of iterative eigensolver
// convergence.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

// Update carries one convergence sample from the solver observer.
type Update struct {
	Iter     int
	Residual float64
}

// Done signals the end of the computation.
type Done struct {
	Converged  bool
	Exponents  []complex128
	UnstableN  int
	Iterations int
	Err        error
}

// Model streams residuals from an iterative solver run and plots their
// decay on a log scale.
type Model struct {
	System    string
	Updates   <-chan tea.Msg
	residuals []float64
	iter      int
	done      *Done
	width     int
}

func NewModel(system string, updates <-chan tea.Msg) *Model {
	return &Model{System: system, Updates: updates, width: 72}
}

func (m *Model) wait() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.Updates
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) Init() tea.Cmd {
	return m.wait()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.width = msg.Width - 8
		}
	case Update:
		m.iter = msg.Iter
		r := msg.Residual
		if r <= 0 {
			r = 1e-300
		}
		m.residuals = append(m.residuals, math.Log10(r))
		return m, m.wait()
	case Done:
		d := msg
		m.done = &d
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf("floq watch: %s", m.System)))
	b.WriteString("\n\n")

	if len(m.residuals) > 1 {
		graph := asciigraph.Plot(m.residuals,
			asciigraph.Height(12),
			asciigraph.Width(m.width),
			asciigraph.Caption("log10 residual vs iteration"))
		b.WriteString(panel.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(dim.Render(fmt.Sprintf("iteration %d", m.iter)))
	b.WriteString("\n")

	if m.done != nil {
		b.WriteString("\n")
		switch {
		case m.done.Err != nil:
			b.WriteString(red.Render("error: " + m.done.Err.Error()))
		case !m.done.Converged:
			b.WriteString(yellow.Render(fmt.Sprintf("not converged after %d iterations", m.done.Iterations)))
		case m.done.UnstableN > 0:
			b.WriteString(red.Render(fmt.Sprintf("converged: orbit unstable (%d exponent(s) with positive real part)", m.done.UnstableN)))
		default:
			b.WriteString(green.Render("converged: orbit stable"))
		}
		b.WriteString("\n")
		for i, e := range m.done.Exponents {
			b.WriteString(dim.Render(fmt.Sprintf("  exponent %d: %+.6f%+.6fi", i, real(e), imag(e))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}
