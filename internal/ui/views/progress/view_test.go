package progress

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	progressdto "incubator/internal/modules/progress/dto"
)

type stubPort struct{}

func (stubPort) Overview(context.Context, string) (progressdto.OverviewOutput, error) {
	return progressdto.OverviewOutput{}, nil
}

func loaded(t *testing.T, msg OverviewLoadedMsg) Model {
	t.Helper()
	m := New(stubPort{})
	_ = m.Load(msg.ProjectID)
	m, _ = m.Update(msg)
	return m
}

func TestEmptySessionsState(t *testing.T) {
	t.Parallel()
	m := loaded(t, OverviewLoadedMsg{ProjectID: "p1", Overview: progressdto.OverviewOutput{
		ProjectID:      "p1",
		ProjectName:    "Acme",
		GlobalProgress: 0,
		Labels:         [4]string{"Research", "Development", "Testing", "Documentation"},
		Warnings:       []string{"could not load sessions: boom"},
	}})
	view := m.View()
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "No Sessions Yet")
	assert.Contains(t, view, "could not load sessions")
}

func TestUnassignedProject(t *testing.T) {
	t.Parallel()
	m := loaded(t, OverviewLoadedMsg{ProjectID: "dummy-project-id", Overview: progressdto.OverviewOutput{Unassigned: true}})
	assert.Contains(t, m.View(), "No Project Yet")
}

func TestErrorBannerAndRetry(t *testing.T) {
	t.Parallel()
	m := loaded(t, OverviewLoadedMsg{ProjectID: "p1", Err: errors.New("backend down")})
	assert.Contains(t, m.View(), "backend down")
	assert.Contains(t, m.View(), "press r to retry")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
}

func TestStaleResultsAreIgnored(t *testing.T) {
	t.Parallel()
	m := New(stubPort{})
	_ = m.Load("p2")
	m, _ = m.Update(OverviewLoadedMsg{ProjectID: "p1", Overview: progressdto.OverviewOutput{ProjectName: "Old"}})
	_, ok := m.Overview()
	assert.False(t, ok)
}
