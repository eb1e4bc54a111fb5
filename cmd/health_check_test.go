package cmd

import (
	"errors"
	"testing"

	"github.com/bnema/zoo-api/internal/adapters/httpapi"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckModelKeepsOutcome(t *testing.T) {
	t.Parallel()

	model := newHealthCheckModel("http://zoo.local", func() (httpapi.HealthView, error) {
		return httpapi.HealthView{}, nil
	})
	assert.Contains(t, model.View(), "Checking http://zoo.local...")

	updated, cmd := model.Update(healthCheckedMsg{health: httpapi.HealthView{Status: "ok", Timestamp: "2026-01-02T03:04:05Z"}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	done := updated.(healthCheckModel)
	assert.Empty(t, done.View())
	assert.Equal(t, "http://zoo.local: ok (2026-01-02T03:04:05Z)", done.Summary())
}

func TestHealthCheckModelRunsCheckOnInit(t *testing.T) {
	t.Parallel()

	checkErr := errors.New("connection refused")
	model := newHealthCheckModel("http://zoo.local", func() (httpapi.HealthView, error) {
		return httpapi.HealthView{}, checkErr
	})

	msg := model.check()
	updated, _ := model.Update(msg)
	assert.ErrorIs(t, updated.(healthCheckModel).err, checkErr)
}
