package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "incubator/internal/modules/account/dto"
	feedbackdto "incubator/internal/modules/feedback/dto"
	progressdto "incubator/internal/modules/progress/dto"
	projectdto "incubator/internal/modules/project/dto"
	trainingdto "incubator/internal/modules/training/dto"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/ui/components"
	"incubator/internal/ui/theme"
	progressview "incubator/internal/ui/views/progress"
	sessionsview "incubator/internal/ui/views/sessions"
	teamview "incubator/internal/ui/views/team"
	trainingview "incubator/internal/ui/views/training"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type accountPort interface {
	Landing(ctx context.Context) (accountdto.LandingOutput, error)
	MarkStartupPromptSeen(ctx context.Context) error
}

type projectPort interface {
	Resolve(ctx context.Context, explicitID string, refresh bool) (projectdto.ResolveOutput, error)
	Team(ctx context.Context, projectID, relation string) (projectdto.TeamOutput, error)
}

type progressPort interface {
	Overview(ctx context.Context, projectID string) (progressdto.OverviewOutput, error)
	Sessions(ctx context.Context, projectID string) (progressdto.SessionListOutput, error)
	SetModule(ctx context.Context, projectID, module string, percent int) (progressdto.ModuleOutput, error)
}

type feedbackPort interface {
	List(ctx context.Context, sessionID string) (feedbackdto.FeedbackListOutput, error)
	Add(ctx context.Context, sessionID, text string) (feedbackdto.FeedbackOutput, error)
}

type trainingPort interface {
	Calendar(ctx context.Context) (trainingdto.CalendarOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabProgress tabID = iota
	tabSessions
	tabTeam
	tabTraining
	tabCount
)

var tabLabels = [tabCount]string{
	"Progress", "Sessions", "Team", "Training",
}

// ─── async messages ───────────────────────────────────────────────────────────

type landingLoadedMsg struct {
	landing accountdto.LandingOutput
	err     error
}

type projectResolvedMsg struct {
	out projectdto.ResolveOutput
	err error
}

type promptDismissedMsg struct{ err error }

type moduleSetMsg struct {
	module progressdto.ModuleOutput
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Retry   key.Binding
	Enter   key.Binding
	Team    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload tab")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "dismiss prompt")),
		Team:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "team relation")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Retry, k.Team},
		{k.Enter},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the resolved
// project, the startup prompt, the help overlay and the command palette.
type Model struct {
	account  accountPort
	project  projectPort
	progress progressPort

	progressView progressview.Model
	sessionsView sessionsview.Model
	teamView     teamview.Model
	trainingView trainingview.Model

	user       accountdto.UserOutput
	projectID  string
	unassigned bool
	authErr    error
	showPrompt bool

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	account accountPort,
	project projectPort,
	progress progressPort,
	feedback feedbackPort,
	training trainingPort,
) Model {
	var teamPort teamview.TeamPort
	if project != nil {
		teamPort = project
	}
	var overviewPort progressview.ProgressPort
	var sessionPort sessionsview.SessionPort
	if progress != nil {
		overviewPort = progress
		sessionPort = progress
	}
	var feedbackV sessionsview.FeedbackPort
	if feedback != nil {
		feedbackV = feedback
	}
	var calendarPort trainingview.CalendarPort
	if training != nil {
		calendarPort = training
	}

	return Model{
		account:      account,
		project:      project,
		progress:     progress,
		progressView: progressview.New(overviewPort),
		sessionsView: sessionsview.New(sessionPort, feedbackV),
		teamView:     teamview.New(teamPort),
		trainingView: trainingview.New(calendarPort),
		activeTab:    tabProgress,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "connecting…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadLandingCmd(),
		m.resolveCmd("", false),
		m.trainingView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case landingLoadedMsg:
		if msg.err != nil {
			m.noteAuth(msg.err)
			m.status = "account: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.landing.User
		m.showPrompt = msg.landing.Destination == "startup-prompt"
		m.status = fmt.Sprintf("signed in as %s", m.user.Name)

	case projectResolvedMsg:
		if msg.err != nil {
			m.noteAuth(msg.err)
			m.status = "project: " + msg.err.Error()
			return m, nil
		}
		m.projectID = msg.out.ProjectID
		m.unassigned = msg.out.Unassigned
		if msg.out.Warning != "" {
			m.status = "project: " + msg.out.Warning
		}
		cmd := m.reloadProjectViews()
		return m, cmd

	case promptDismissedMsg:
		m.showPrompt = false
		if msg.err != nil {
			m.status = "startup prompt: " + msg.err.Error()
		}
		return m, nil

	case moduleSetMsg:
		if msg.err != nil {
			m.noteAuth(msg.err)
			m.status = "update module: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("%s set to %d%%", msg.module.Name, msg.module.Percentage)
		cmd := m.progressView.Load(m.projectID)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	// Loaded messages always reach their view, whichever tab is active.
	case progressview.OverviewLoadedMsg:
		m.noteAuth(msg.Err)
		var cmd tea.Cmd
		m.progressView, cmd = m.progressView.Update(msg)
		return m, cmd

	case sessionsview.SessionsLoadedMsg, sessionsview.FeedbackLoadedMsg, sessionsview.FeedbackAddedMsg:
		if added, ok := msg.(sessionsview.FeedbackAddedMsg); ok {
			m.noteAuth(added.Err)
			if added.Err == nil {
				m.status = "feedback added"
			}
		}
		var cmd tea.Cmd
		m.sessionsView, cmd = m.sessionsView.Update(msg)
		return m, cmd

	case teamview.TeamLoadedMsg:
		m.noteAuth(msg.Err)
		var cmd tea.Cmd
		m.teamView, cmd = m.teamView.Update(msg)
		return m, cmd

	case trainingview.CalendarLoadedMsg:
		m.noteAuth(msg.Err)
		var cmd tea.Cmd
		m.trainingView, cmd = m.trainingView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.showPrompt {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter", "esc":
				return m, m.dismissPromptCmd()
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Spinner ticks go to every view; each drops ticks it does not need.
	if _, ok := msg.(tea.KeyMsg); !ok {
		var c1, c2, c3, c4 tea.Cmd
		m.progressView, c1 = m.progressView.Update(msg)
		m.sessionsView, c2 = m.sessionsView.Update(msg)
		m.teamView, c3 = m.teamView.Update(msg)
		m.trainingView, c4 = m.trainingView.Update(msg)
		return m, tea.Batch(c1, c2, c3, c4)
	}

	// Keys go to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabProgress:
		m.progressView, tabCmd = m.progressView.Update(msg)
	case tabSessions:
		m.sessionsView, tabCmd = m.sessionsView.Update(msg)
	case tabTeam:
		m.teamView, tabCmd = m.teamView.Update(msg)
	case tabTraining:
		m.trainingView, tabCmd = m.trainingView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// noteAuth records an expired or missing session so the banner can replace
// the tab content until the user logs in again.
func (m *Model) noteAuth(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrUnauthenticated) {
		m.authErr = err
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := max(m.height-tabBarH-statusBarH, 1)

	var content string
	switch {
	case m.authErr != nil:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderAuthBanner())
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.showPrompt:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderPrompt())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabProgress:
		return m.progressView.View()
	case tabSessions:
		return m.sessionsView.View()
	case tabTeam:
		return m.teamView.View()
	case tabTraining:
		return m.trainingView.View()
	}
	return ""
}

func (m Model) renderAuthBanner() string {
	msg := "You are not logged in."
	if errors.Is(m.authErr, apperrors.ErrUnauthorized) {
		msg = "Your session has expired."
	}
	return theme.ErrorBanner.Render(msg + "\n" + theme.Muted.Render("Run `incubator login --token <jwt>` and start the UI again. q quits."))
}

func (m Model) renderPrompt() string {
	name := m.user.FirstName
	if name == "" {
		name = m.user.Name
	}
	body := theme.Title.Render("Welcome, "+name) + "\n\n" +
		"You are not part of a startup project yet.\n" +
		"Ask your supervisor to add you to a team, or create one with\n" +
		"`incubator project create --name <name>`.\n\n" +
		theme.Muted.Render("enter to continue")
	return theme.PaneActive.Render(body)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "incubator  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.projectID != "" && !m.unassigned {
		left = theme.Hot.Render("● "+m.projectID) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  r:reload  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "project":
		if len(parts) < 2 {
			m.status = "usage: project <id>"
			return m, nil
		}
		m.status = "switching project…"
		return m, m.resolveCmd(parts[1], false)

	case "project:refresh":
		m.status = "resolving project…"
		return m, m.resolveCmd("", true)

	case "module":
		if len(parts) < 3 {
			m.status = "usage: module <name> <percent>"
			return m, nil
		}
		percent, err := strconv.Atoi(parts[2])
		if err != nil {
			m.status = "percent must be an integer"
			return m, nil
		}
		return m, m.setModuleCmd(parts[1], percent)

	case "feedback":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if text == "" {
			m.status = "usage: feedback <text>"
			return m, nil
		}
		if _, ok := m.sessionsView.SelectedSessionID(); !ok {
			m.status = "no session selected"
			return m, nil
		}
		m.activeTab = tabSessions
		return m, m.sessionsView.AddFeedback(text)

	case "refresh":
		cmd := m.reloadProjectViews()
		return m, cmd

	case "prompt":
		m.showPrompt = true
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	return m.activeTab == tabSessions && m.sessionsView.Filtering()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.progressView, _ = m.progressView.Update(sz)
	m.sessionsView, _ = m.sessionsView.Update(sz)
	m.teamView, _ = m.teamView.Update(sz)
	m.trainingView, _ = m.trainingView.Update(sz)
}

func (m *Model) reloadProjectViews() tea.Cmd {
	if m.projectID == "" {
		return nil
	}
	return tea.Batch(
		m.progressView.Load(m.projectID),
		m.sessionsView.Load(m.projectID),
		m.teamView.Load(m.projectID),
	)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadLandingCmd() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		if account == nil {
			return landingLoadedMsg{err: fmt.Errorf("account service not configured")}
		}
		out, err := account.Landing(context.Background())
		return landingLoadedMsg{landing: out, err: err}
	}
}

func (m Model) resolveCmd(explicitID string, refresh bool) tea.Cmd {
	project := m.project
	return func() tea.Msg {
		if project == nil {
			return projectResolvedMsg{err: fmt.Errorf("project service not configured")}
		}
		out, err := project.Resolve(context.Background(), explicitID, refresh)
		return projectResolvedMsg{out: out, err: err}
	}
}

func (m Model) dismissPromptCmd() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		if account == nil {
			return promptDismissedMsg{}
		}
		return promptDismissedMsg{err: account.MarkStartupPromptSeen(context.Background())}
	}
}

func (m Model) setModuleCmd(module string, percent int) tea.Cmd {
	progress, projectID := m.progress, m.projectID
	return func() tea.Msg {
		if progress == nil {
			return moduleSetMsg{err: fmt.Errorf("progress service not configured")}
		}
		out, err := progress.SetModule(context.Background(), projectID, module, percent)
		return moduleSetMsg{module: out, err: err}
	}
}
