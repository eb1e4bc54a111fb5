package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/zoo-api/internal/adapters/httpapi"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type healthCheckedMsg struct {
	health httpapi.HealthView
	err    error
}

// healthCheckModel animates while a single /healthz request is in flight and
// keeps its outcome for the summary line.
type healthCheckModel struct {
	spinner spinner.Model
	target  string
	check   tea.Cmd
	health  httpapi.HealthView
	err     error
	done    bool
}

func newHealthCheckModel(target string, check func() (httpapi.HealthView, error)) healthCheckModel {
	return healthCheckModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("42"))),
		),
		target: target,
		check: func() tea.Msg {
			health, err := check()
			return healthCheckedMsg{health: health, err: err}
		},
	}
}

func (m healthCheckModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.check)
}

func (m healthCheckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthCheckedMsg:
		m.done = true
		m.health = msg.health
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m healthCheckModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Checking %s...", m.spinner.View(), m.target)
}

// Summary is the one-line result printed once the check has finished.
func (m healthCheckModel) Summary() string {
	return fmt.Sprintf("%s: %s (%s)", m.target, m.health.Status, m.health.Timestamp)
}

// runHealthCheck draws the spinner on output until check returns.
func runHealthCheck(ctx context.Context, output io.Writer, target string, check func(context.Context) (httpapi.HealthView, error)) (healthCheckModel, error) {
	p := tea.NewProgram(
		newHealthCheckModel(target, func() (httpapi.HealthView, error) { return check(ctx) }),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return healthCheckModel{}, err
	}

	result, ok := finalModel.(healthCheckModel)
	if !ok {
		return healthCheckModel{}, fmt.Errorf("unexpected final health check model type %T", finalModel)
	}

	return result, result.err
}
