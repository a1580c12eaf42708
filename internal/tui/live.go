// Package tui renders a live view of a running search.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/beamopt/internal/optim"
)

const (
	graphWidth      = 70
	graphHeight     = 10
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type progressMsg optim.ProgressUpdate

type doneMsg struct{}

// Model displays search progress fed through a progress channel.
type Model struct {
	problem  string
	updates  <-chan optim.ProgressUpdate
	infeasAt float64 // values at or above this are treated as infeasible
	last     optim.ProgressUpdate
	history  []float64
	seen     int
	done     bool
}

// NewModel builds a live view. Updates end when the channel closes;
// infeasAt is the penalty level of the underlying problem, used to keep
// infeasible values out of the convergence plot.
func NewModel(problem string, updates <-chan optim.ProgressUpdate, infeasAt float64) Model {
	return Model{
		problem:  problem,
		updates:  updates,
		infeasAt: infeasAt,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.updates
		if !ok {
			return doneMsg{}
		}
		return progressMsg(u)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case progressMsg:
		m.last = optim.ProgressUpdate(msg)
		m.seen++
		if m.last.Best < m.infeasAt {
			m.history = append(m.history, m.last.Best)
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.wait()

	case doneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("beamopt search — %s", m.problem)))
	b.WriteString("\n")

	row := func(label, value string, style lipgloss.Style) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}

	row("phase", m.last.Phase, valueStyle)
	row("iteration", fmt.Sprintf("%d / %d", m.last.Iteration, m.last.Total), valueStyle)
	row("candidate", formatCandidate(m.last.Candidate), valueStyle)
	row("value", m.formatValue(m.last.Value), valueStyle)
	row("best", m.formatValue(m.last.Best), bestStyle)

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("best volume"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(helpStyle.Render("search finished"))
	} else {
		b.WriteString(helpStyle.Render("q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) formatValue(v float64) string {
	if m.seen == 0 {
		return "-"
	}
	if v >= m.infeasAt {
		return "infeasible"
	}
	return fmt.Sprintf("%.4f", v)
}

func formatCandidate(v []float64) string {
	if len(v) == 0 {
		return "-"
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.3f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
