package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/chebsolve/internal/bvp"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// IterationMsg carries one Newton iteration from the solver goroutine.
type IterationMsg bvp.Iteration

// DoneMsg carries the final outcome of the solve.
type DoneMsg struct {
	Result *bvp.Result
	Err    error
}

// Model displays a running solve: residual history while Newton iterates,
// then the solution curve. The solve itself runs in a separate goroutine and
// feeds the channel; closing the feed is not required, a DoneMsg ends the
// stream.
type Model struct {
	problem   string
	feed      <-chan tea.Msg
	last      bvp.Iteration
	residuals []float64
	result    *bvp.Result
	err       error
	done      bool
}

func NewModel(problem string, feed <-chan tea.Msg) Model {
	return Model{
		problem:   problem,
		feed:      feed,
		residuals: make([]float64, 0, 64),
	}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg { return <-m.feed }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			return m, tea.Quit
		}
	case IterationMsg:
		m.last = bvp.Iteration(msg)
		m.residuals = append(m.residuals, m.last.Residual)
		return m, m.wait()
	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.problem)) + "\n")

	switch {
	case !m.done:
		s.WriteString("SOLVING\n")
	case m.err != nil:
		s.WriteString(errorStyle.Render("FAILED: "+m.err.Error()) + "\n")
	default:
		s.WriteString("CONVERGED\n")
	}

	if len(m.residuals) > 1 {
		s.WriteString(graphStyle.Render(PlotResiduals(m.residuals)) + "\n")
	}

	s.WriteString(labelStyle.Render("Degree") + valueStyle.Render(fmt.Sprintf("%d", m.last.Degree)) + "\n")
	s.WriteString(labelStyle.Render("Iteration") + valueStyle.Render(fmt.Sprintf("%d", m.last.Iter)) + "\n")
	s.WriteString(labelStyle.Render("Residual") + valueStyle.Render(fmt.Sprintf("%.3e", m.last.Residual)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%.4f", m.last.Damping)) + "\n")

	if m.done && m.result != nil {
		for i, p := range m.result.Params {
			s.WriteString(labelStyle.Render(fmt.Sprintf("Param %d", i)) + valueStyle.Render(fmt.Sprintf("%.12g", p)) + "\n")
		}
		s.WriteString("\n" + graphStyle.Render(PlotSolution(m.result.Solution, "u(x)")) + "\n")
	}

	s.WriteString(helpStyle.Render("Q:Quit"))
	return s.String()
}
