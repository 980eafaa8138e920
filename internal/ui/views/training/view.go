package training

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trainingdto "incubator/internal/modules/training/dto"
	"incubator/internal/ui/theme"
)

type CalendarPort interface {
	Calendar(ctx context.Context) (trainingdto.CalendarOutput, error)
}

type CalendarLoadedMsg struct {
	Calendar trainingdto.CalendarOutput
	Err      error
}

type Model struct {
	port     CalendarPort
	calendar trainingdto.CalendarOutput
	vp       viewport.Model
	spinner  spinner.Model
	loading  bool
	loaded   bool
	err      error
}

func New(port CalendarPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, vp: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = max(msg.Width-4, 1)
		m.vp.Height = max(msg.Height-4, 1)

	case CalendarLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.loaded = true
			m.calendar = msg.Calendar
			m.vp.SetContent(render(msg.Calendar))
			m.vp.GotoTop()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.fetchCmd(), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch {
	case m.loading && !m.loaded:
		return theme.Pane.Render(m.spinner.View() + " loading workshops…")
	case m.err != nil:
		return theme.Banner(m.err)
	}
	return m.vp.View()
}

func render(c trainingdto.CalendarOutput) string {
	var sb strings.Builder
	section := func(title string, items []trainingdto.WorkshopOutput, empty string) {
		sb.WriteString(theme.Title.Render(title) + "\n")
		if len(items) == 0 {
			sb.WriteString(theme.Empty.Render(empty) + "\n")
			return
		}
		for _, w := range items {
			when := strings.TrimSpace(w.Date + " " + w.Time)
			sb.WriteString(fmt.Sprintf("%s  %s\n", theme.Hot.Render(when), w.Title))
			meta := []string{}
			if w.Location != "" {
				meta = append(meta, w.Location)
			}
			if w.Duration > 0 {
				meta = append(meta, fmt.Sprintf("%d min", w.Duration))
			}
			if w.Author != "" {
				meta = append(meta, "by "+w.Author)
			}
			if len(meta) > 0 {
				sb.WriteString(theme.Muted.Render("  "+strings.Join(meta, " · ")) + "\n")
			}
			if w.Description != "" {
				sb.WriteString("  " + w.Description + "\n")
			}
			sb.WriteString("\n")
		}
	}
	section("Upcoming workshops", c.Upcoming, "No upcoming workshops")
	sb.WriteString("\n")
	section("Past workshops", c.Past, "No past workshops")
	for _, w := range c.Warnings {
		sb.WriteString(theme.Warn.Render("! "+w) + "\n")
	}
	return sb.String()
}

func (m Model) fetchCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return CalendarLoadedMsg{Err: fmt.Errorf("training service not configured")}
		}
		out, err := port.Calendar(context.Background())
		return CalendarLoadedMsg{Calendar: out, Err: err}
	}
}
