package progress

import (
	"context"
	"fmt"
	"strings"

	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "incubator/internal/modules/progress/dto"
	"incubator/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Overview(ctx context.Context, projectID string) (progressdto.OverviewOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	ProjectID string
	Overview  progressdto.OverviewOutput
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      ProgressPort
	projectID string
	overview  progressdto.OverviewOutput
	err       error
	loaded    bool
	loading   bool
	spinner   spinner.Model
	bar       bubbleprogress.Model
	width     int
	height    int
}

func New(port ProgressPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, bar: theme.NewBar(40)}
}

// Load fetches the overview for projectID.
func (m *Model) Load(projectID string) tea.Cmd {
	m.projectID = projectID
	m.loading = true
	m.err = nil
	return tea.Batch(m.fetchCmd(projectID), m.spinner.Tick)
}

func (m Model) Overview() (progressdto.OverviewOutput, bool) {
	return m.overview, m.loaded
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(60, msg.Width-30))

	case OverviewLoadedMsg:
		if msg.ProjectID != m.projectID {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.overview = msg.Overview
			m.loaded = true
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading && m.projectID != "" {
			cmd := m.Load(m.projectID)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch {
	case m.loading && !m.loaded:
		return theme.Pane.Render(m.spinner.View() + " loading progress…")
	case m.err != nil:
		return theme.Banner(m.err)
	case !m.loaded:
		return theme.Empty.Render("resolving project…")
	}
	return m.render()
}

func (m Model) render() string {
	o := m.overview
	var sb strings.Builder
	if o.Unassigned {
		sb.WriteString(theme.Title.Render("No Project Yet") + "\n\n")
		sb.WriteString(theme.Muted.Render("You are not part of a project yet. Ask your supervisor to add you,\nor select one from the palette with `project <id>`."))
		sb.WriteString(m.renderWarnings())
		return theme.Pane.Render(sb.String())
	}

	name := o.ProjectName
	if name == "" {
		name = o.ProjectID
	}
	sb.WriteString(theme.Title.Render(name))
	if m.loading {
		sb.WriteString("  " + m.spinner.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%-14s %s\n", "Global", theme.Percent(m.bar, o.GlobalProgress)))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-14s %3d%% average of current modules", "", o.ModuleProgress)) + "\n\n")
	for i, label := range o.Labels {
		sb.WriteString(fmt.Sprintf("%-14s %s\n", label, theme.Percent(m.bar, o.Modules[i])))
	}

	sb.WriteString("\n" + theme.Title.Render("Recent sessions") + "\n")
	if len(o.Sessions) == 0 {
		sb.WriteString(theme.Empty.Render("No Sessions Yet"))
	} else {
		for i, s := range o.Sessions {
			if i == 5 {
				sb.WriteString(theme.Muted.Render(fmt.Sprintf("  … %d more on the Sessions tab", len(o.Sessions)-5)) + "\n")
				break
			}
			sb.WriteString(fmt.Sprintf("  %-12s %3d%%\n", s.Date, s.Global))
		}
	}
	sb.WriteString(m.renderWarnings())
	return theme.Pane.Render(sb.String())
}

func (m Model) renderWarnings() string {
	if len(m.overview.Warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.overview.Warnings))
	for _, w := range m.overview.Warnings {
		lines = append(lines, theme.Warn.Render("! "+w))
	}
	return "\n\n" + strings.Join(lines, "\n")
}

func (m Model) fetchCmd(projectID string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return OverviewLoadedMsg{ProjectID: projectID, Err: fmt.Errorf("progress service not configured")}
		}
		out, err := port.Overview(context.Background(), projectID)
		return OverviewLoadedMsg{ProjectID: projectID, Overview: out, Err: err}
	}
}
