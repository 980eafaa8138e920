package team

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectdto "incubator/internal/modules/project/dto"
)

type stubTeam struct{ relations []string }

func (s *stubTeam) Team(_ context.Context, projectID, relation string) (projectdto.TeamOutput, error) {
	s.relations = append(s.relations, relation)
	return projectdto.TeamOutput{
		ProjectID: projectID,
		Relation:  relation,
		Members:   []projectdto.MemberOutput{{ID: "s1", FullName: "Sam Supervisor", Email: "sam@example.com", Role: "SUPERVISOR"}},
	}, nil
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedMsg runs cmd and returns the TeamLoadedMsg inside its batch.
func loadedMsg(t *testing.T, cmd tea.Cmd) TeamLoadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batched load")
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(TeamLoadedMsg); ok {
			return msg
		}
	}
	t.Fatalf("no TeamLoadedMsg in batch")
	return TeamLoadedMsg{}
}

func TestTeamShowsMembers(t *testing.T) {
	t.Parallel()
	m := New(nil)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	_ = m.Load("p1")
	assert.Contains(t, m.View(), "loading members")

	m, _ = m.Update(TeamLoadedMsg{ProjectID: "p1", Relation: "members", Team: projectdto.TeamOutput{
		Members: []projectdto.MemberOutput{{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com", Role: "MEMBER"}},
	}})
	assert.Contains(t, m.View(), "Ada Lovelace")
	assert.Contains(t, m.View(), "member")
}

func TestTeamSwitchesRelationAndIgnoresStaleResults(t *testing.T) {
	t.Parallel()
	port := &stubTeam{}
	m := New(port)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	_ = m.Load("p1")

	m, cmd := m.Update(keyMsg("2"))
	msg := loadedMsg(t, cmd)
	assert.Equal(t, []string{"encadrants"}, port.relations)

	m, _ = m.Update(TeamLoadedMsg{ProjectID: "p1", Relation: "members", Team: projectdto.TeamOutput{
		Members: []projectdto.MemberOutput{{FullName: "Stale Member"}},
	}})
	assert.Contains(t, m.View(), "loading supervisors")

	m, _ = m.Update(msg)
	assert.Contains(t, m.View(), "Sam Supervisor")
	assert.NotContains(t, m.View(), "Stale Member")
}

func TestTeamEmptyAndRetry(t *testing.T) {
	t.Parallel()
	port := &stubTeam{}
	m := New(port)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	_ = m.Load("p1")

	m, _ = m.Update(TeamLoadedMsg{ProjectID: "p1", Relation: "members", Err: errors.New("server down")})
	assert.Contains(t, m.View(), "server down")
	assert.Contains(t, m.View(), "press r to retry")

	m, cmd := m.Update(keyMsg("r"))
	msg := loadedMsg(t, cmd)
	assert.Equal(t, []string{"members"}, port.relations)

	msg.Team.Members = nil
	m, _ = m.Update(msg)
	assert.Contains(t, m.View(), "Nobody here yet")
}
