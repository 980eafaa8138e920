package app

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdto "incubator/internal/modules/account/dto"
	feedbackdto "incubator/internal/modules/feedback/dto"
	progressdto "incubator/internal/modules/progress/dto"
	projectdto "incubator/internal/modules/project/dto"
	trainingdto "incubator/internal/modules/training/dto"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/ui/components"
	progressview "incubator/internal/ui/views/progress"
)

type fakeAccount struct{ promptSeen int }

func (f *fakeAccount) Landing(context.Context) (accountdto.LandingOutput, error) {
	return accountdto.LandingOutput{User: accountdto.UserOutput{Name: "Ada Lovelace", FirstName: "Ada"}, Destination: "startup-prompt"}, nil
}

func (f *fakeAccount) MarkStartupPromptSeen(context.Context) error {
	f.promptSeen++
	return nil
}

type fakeProject struct{}

func (fakeProject) Resolve(_ context.Context, explicitID string, _ bool) (projectdto.ResolveOutput, error) {
	if explicitID == "" {
		explicitID = "p1"
	}
	return projectdto.ResolveOutput{ProjectID: explicitID, Source: "cached"}, nil
}

func (fakeProject) Team(context.Context, string, string) (projectdto.TeamOutput, error) {
	return projectdto.TeamOutput{}, nil
}

type fakeProgress struct {
	overviewErr error
	set         []string
}

func (f *fakeProgress) Overview(_ context.Context, projectID string) (progressdto.OverviewOutput, error) {
	return progressdto.OverviewOutput{ProjectID: projectID}, f.overviewErr
}

func (f *fakeProgress) Sessions(_ context.Context, projectID string) (progressdto.SessionListOutput, error) {
	return progressdto.SessionListOutput{ProjectID: projectID}, nil
}

func (f *fakeProgress) SetModule(_ context.Context, _ string, module string, percent int) (progressdto.ModuleOutput, error) {
	f.set = append(f.set, fmt.Sprintf("%s=%d", module, percent))
	return progressdto.ModuleOutput{Name: module, Percentage: percent}, nil
}

type fakeFeedback struct{}

func (fakeFeedback) List(_ context.Context, sessionID string) (feedbackdto.FeedbackListOutput, error) {
	return feedbackdto.FeedbackListOutput{SessionID: sessionID}, nil
}

func (fakeFeedback) Add(_ context.Context, sessionID, text string) (feedbackdto.FeedbackOutput, error) {
	return feedbackdto.FeedbackOutput{SessionID: sessionID, Text: text}, nil
}

type fakeTraining struct{}

func (fakeTraining) Calendar(context.Context) (trainingdto.CalendarOutput, error) {
	return trainingdto.CalendarOutput{}, nil
}

func newTestModel(account *fakeAccount, progress *fakeProgress) Model {
	m := NewModel(account, fakeProject{}, progress, fakeFeedback{}, fakeTraining{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func TestStartupPromptIsShownAndDismissed(t *testing.T) {
	t.Parallel()
	account := &fakeAccount{}
	m := newTestModel(account, &fakeProgress{})

	msg := m.loadLandingCmd()()
	next, _ := m.Update(msg)
	m = next.(Model)
	require.True(t, m.showPrompt)
	assert.Contains(t, m.View(), "Welcome, Ada")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.showPrompt)
	assert.Equal(t, 1, account.promptSeen)
}

func TestUnauthorizedOverviewShowsLoginBanner(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{overviewErr: fmt.Errorf("GET /progress: %w", apperrors.ErrUnauthorized)}
	m := newTestModel(&fakeAccount{}, progress)

	next, _ := m.Update(m.resolveCmd("", false)())
	m = next.(Model)
	require.Equal(t, "p1", m.projectID)

	out, err := progress.Overview(context.Background(), "p1")
	next, _ = m.Update(progressview.OverviewLoadedMsg{ProjectID: "p1", Overview: out, Err: err})
	m = next.(Model)
	assert.ErrorIs(t, m.authErr, apperrors.ErrUnauthorized)
	assert.Contains(t, m.View(), "session has expired")
}

func TestPaletteSetsModuleOnResolvedProject(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{}
	m := newTestModel(&fakeAccount{}, progress)
	next, _ := m.Update(m.resolveCmd("", false)())
	m = next.(Model)

	next, cmd := m.Update(components.PaletteSubmitMsg{Input: "module research 40"})
	m = next.(Model)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, []string{"research=40"}, progress.set)
	assert.Equal(t, "research set to 40%", m.status)

	next, _ = m.Update(components.PaletteSubmitMsg{Input: "module research lots"})
	assert.Equal(t, "percent must be an integer", next.(Model).status)
}

func TestPaletteSwitchesProject(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeAccount{}, &fakeProgress{})
	_, cmd := m.Update(components.PaletteSubmitMsg{Input: "project p9"})
	require.NotNil(t, cmd)
	resolved, ok := cmd().(projectResolvedMsg)
	require.True(t, ok)
	assert.Equal(t, "p9", resolved.out.ProjectID)
}
