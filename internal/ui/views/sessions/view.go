package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	feedbackdto "incubator/internal/modules/feedback/dto"
	progressdto "incubator/internal/modules/progress/dto"
	"incubator/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SessionPort interface {
	Sessions(ctx context.Context, projectID string) (progressdto.SessionListOutput, error)
}

type FeedbackPort interface {
	List(ctx context.Context, sessionID string) (feedbackdto.FeedbackListOutput, error)
	Add(ctx context.Context, sessionID, text string) (feedbackdto.FeedbackOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionsLoadedMsg struct {
	ProjectID string
	Sessions  progressdto.SessionListOutput
	Err       error
}

type FeedbackLoadedMsg struct {
	SessionID string
	Feedback  feedbackdto.FeedbackListOutput
	Err       error
}

type FeedbackAddedMsg struct {
	SessionID string
	Item      feedbackdto.FeedbackOutput
	Err       error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session progressdto.SessionOutput
}

func (i sessionItem) Title() string { return i.session.Date }
func (i sessionItem) Description() string {
	return fmt.Sprintf("global %d%%  %s", i.session.Global, strings.Join(i.session.Modules[:], "/"))
}
func (i sessionItem) FilterValue() string { return i.session.Date + " " + i.session.Summary }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	sessions  SessionPort
	feedback  FeedbackPort
	projectID string

	list     list.Model
	detail   viewport.Model
	spinner  spinner.Model
	loading  bool
	loaded   bool
	err      error
	warnings []string

	feedbackFor string
	items       feedbackdto.FeedbackListOutput
	feedbackErr error

	width  int
	height int
}

func New(sessions SessionPort, feedback FeedbackPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{sessions: sessions, feedback: feedback, list: l, detail: vp, spinner: sp}
}

// Load fetches the sessions of projectID.
func (m *Model) Load(projectID string) tea.Cmd {
	m.projectID = projectID
	m.loading = true
	m.err = nil
	return tea.Batch(m.loadSessionsCmd(projectID), m.spinner.Tick)
}

// SelectedSessionID returns the highlighted session.
func (m Model) SelectedSessionID() (string, bool) {
	item, ok := m.list.SelectedItem().(sessionItem)
	if !ok {
		return "", false
	}
	return item.session.ID, true
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// AddFeedback posts text on the highlighted session.
func (m Model) AddFeedback(text string) tea.Cmd {
	sessionID, ok := m.SelectedSessionID()
	if !ok {
		return nil
	}
	port := m.feedback
	return func() tea.Msg {
		if port == nil {
			return FeedbackAddedMsg{SessionID: sessionID, Err: fmt.Errorf("feedback service not configured")}
		}
		item, err := port.Add(context.Background(), sessionID, text)
		return FeedbackAddedMsg{SessionID: sessionID, Item: item, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SessionsLoadedMsg:
		if msg.ProjectID != m.projectID {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.loaded = true
		m.warnings = msg.Sessions.Warnings
		items := make([]list.Item, len(msg.Sessions.Sessions))
		for i, s := range msg.Sessions.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(items) > 0 {
			m.list.Select(0)
			cmds = append(cmds, m.loadFeedbackCmd(msg.Sessions.Sessions[0].ID))
		}
		m.detail.SetContent(m.renderDetail())

	case FeedbackLoadedMsg:
		if id, ok := m.SelectedSessionID(); !ok || id != msg.SessionID {
			return m, nil
		}
		m.feedbackFor = msg.SessionID
		m.items = msg.Feedback
		m.feedbackErr = msg.Err
		m.detail.SetContent(m.renderDetail())

	case FeedbackAddedMsg:
		if msg.Err != nil {
			m.feedbackErr = msg.Err
			m.detail.SetContent(m.renderDetail())
			return m, nil
		}
		return m, m.loadFeedbackCmd(msg.SessionID)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading && !m.Filtering() && m.projectID != "" {
			cmd := m.Load(m.projectID)
			return m, cmd
		}
	}

	if m.loaded {
		prev := m.list.Index()
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prev {
			if id, ok := m.SelectedSessionID(); ok {
				m.feedbackFor = ""
				m.detail.SetContent(m.renderDetail())
				cmds = append(cmds, m.loadFeedbackCmd(id))
			}
		}
		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch {
	case m.loading && !m.loaded:
		return theme.Pane.Render(m.spinner.View() + " loading sessions…")
	case m.err != nil:
		return theme.Banner(m.err)
	case !m.loaded:
		return theme.Empty.Render("resolving project…")
	case len(m.list.Items()) == 0:
		return theme.Pane.Render(theme.Title.Render("No Sessions Yet") + "\n\n" +
			theme.Muted.Render("Sessions recorded with your supervisor will show up here.") + m.renderWarnings())
	}
	left := theme.PaneActive.Render(m.list.View())
	right := theme.Pane.Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) resize() {
	listW := m.width * 2 / 5
	detailW := m.width - listW - 4
	h := max(m.height-4, 1)
	m.list.SetSize(max(listW-2, 1), h)
	m.detail.Width = max(detailW-2, 1)
	m.detail.Height = h
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(sessionItem)
	if !ok {
		return ""
	}
	s := item.session
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Session "+s.Date) + "\n\n")
	sb.WriteString(fmt.Sprintf("Global progress  %d%%\n", s.Global))
	labels := [4]string{"Research", "Development", "Testing", "Documentation"}
	for i, label := range labels {
		sb.WriteString(fmt.Sprintf("  %-14s %3d%%\n", label, s.Percentages[i]))
	}
	if strings.TrimSpace(s.Summary) != "" {
		sb.WriteString("\n" + theme.Title.Render("Summary") + "\n" + s.Summary + "\n")
	}
	if strings.TrimSpace(s.Feedback) != "" {
		sb.WriteString("\n" + theme.Title.Render("Supervisor notes") + "\n" + s.Feedback + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Feedback") + "\n")
	switch {
	case m.feedbackFor != s.ID:
		sb.WriteString(theme.Muted.Render("loading…"))
	case m.feedbackErr != nil:
		sb.WriteString(theme.Banner(m.feedbackErr))
	case len(m.items.Items) == 0:
		sb.WriteString(theme.Empty.Render("No Feedback Yet"))
	default:
		for _, f := range m.items.Items {
			head := f.Author
			if !f.CreatedAt.IsZero() {
				head += "  " + f.CreatedAt.Format("2006-01-02 15:04")
			}
			sb.WriteString(theme.Muted.Render(head) + "\n" + f.Text + "\n\n")
		}
	}
	for _, w := range m.items.Warnings {
		sb.WriteString("\n" + theme.Warn.Render("! "+w))
	}
	return sb.String()
}

func (m Model) renderWarnings() string {
	if len(m.warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, w := range m.warnings {
		sb.WriteString("\n" + theme.Warn.Render("! "+w))
	}
	return "\n" + sb.String()
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadSessionsCmd(projectID string) tea.Cmd {
	port := m.sessions
	return func() tea.Msg {
		if port == nil {
			return SessionsLoadedMsg{ProjectID: projectID, Err: fmt.Errorf("progress service not configured")}
		}
		out, err := port.Sessions(context.Background(), projectID)
		return SessionsLoadedMsg{ProjectID: projectID, Sessions: out, Err: err}
	}
}

func (m Model) loadFeedbackCmd(sessionID string) tea.Cmd {
	port := m.feedback
	return func() tea.Msg {
		if port == nil {
			return FeedbackLoadedMsg{SessionID: sessionID}
		}
		out, err := port.List(context.Background(), sessionID)
		return FeedbackLoadedMsg{SessionID: sessionID, Feedback: out, Err: err}
	}
}
