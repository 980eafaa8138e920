package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	projectdto "incubator/internal/modules/project/dto"
	"incubator/internal/ui/theme"
)

type TeamPort interface {
	Team(ctx context.Context, projectID, relation string) (projectdto.TeamOutput, error)
}

type TeamLoadedMsg struct {
	ProjectID string
	Relation  string
	Team      projectdto.TeamOutput
	Err       error
}

var relations = []struct{ key, name, label string }{
	{"1", "members", "Members"},
	{"2", "encadrants", "Supervisors"},
	{"3", "juryMembers", "Jury"},
}

type Model struct {
	port      TeamPort
	projectID string
	relation  int

	table    table.Model
	spinner  spinner.Model
	loading  bool
	loaded   bool
	err      error
	warnings []string
	width    int
	height   int
}

func New(port TeamPort) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, table: t, spinner: sp}
}

func columns(width int) []table.Column {
	nameW := max(width*3/10, 12)
	emailW := max(width*4/10, 16)
	roleW := max(width-nameW-emailW-8, 8)
	return []table.Column{
		{Title: "Name", Width: nameW},
		{Title: "Email", Width: emailW},
		{Title: "Role", Width: roleW},
	}
}

// Load fetches the current relation of projectID.
func (m *Model) Load(projectID string) tea.Cmd {
	m.projectID = projectID
	m.loading = true
	m.err = nil
	return tea.Batch(m.fetchCmd(projectID, relations[m.relation].name), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width - 6))
		m.table.SetHeight(max(msg.Height-8, 3))

	case TeamLoadedMsg:
		if msg.ProjectID != m.projectID || msg.Relation != relations[m.relation].name {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.warnings = msg.Team.Warnings
		rows := make([]table.Row, 0, len(msg.Team.Members))
		for _, member := range msg.Team.Members {
			rows = append(rows, table.Row{member.FullName, member.Email, strings.ToLower(member.Role)})
		}
		m.table.SetRows(rows)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.projectID == "" {
			return m, nil
		}
		key := msg.String()
		if key == "r" && !m.loading {
			cmd := m.Load(m.projectID)
			return m, cmd
		}
		for i, rel := range relations {
			if key == rel.key && i != m.relation {
				m.relation = i
				m.table.SetRows(nil)
				cmd := m.Load(m.projectID)
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	tabs := make([]string, len(relations))
	for i, rel := range relations {
		label := fmt.Sprintf("%s %s", rel.key, rel.label)
		if i == m.relation {
			tabs[i] = theme.Hot.Render(label)
		} else {
			tabs[i] = theme.Muted.Render(label)
		}
	}
	header := strings.Join(tabs, "   ")

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " loading " + strings.ToLower(relations[m.relation].label) + "…"
	case m.err != nil:
		body = theme.Banner(m.err)
	case !m.loaded:
		body = theme.Muted.Render("resolving project…")
	case len(m.table.Rows()) == 0:
		body = theme.Empty.Render("Nobody here yet")
	default:
		body = m.table.View()
	}
	for _, w := range m.warnings {
		body += "\n" + theme.Warn.Render("! "+w)
	}
	return theme.Pane.Render(header + "\n\n" + body)
}

func (m Model) fetchCmd(projectID, relation string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return TeamLoadedMsg{ProjectID: projectID, Relation: relation, Err: fmt.Errorf("project service not configured")}
		}
		out, err := port.Team(context.Background(), projectID, relation)
		return TeamLoadedMsg{ProjectID: projectID, Relation: relation, Team: out, Err: err}
	}
}
