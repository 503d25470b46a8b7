package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/katsuyou/internal/config"
	"github.com/f3rmion/katsuyou/internal/conjugate"
	"github.com/f3rmion/katsuyou/internal/history"
	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewConjugate ViewType = iota
	ViewHistory
	ViewVerbs
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	Icon     string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// Deps are the services the app is built on. History may be nil when
// history is disabled.
type Deps struct {
	Engine    *conjugate.Engine
	Lexicon   *lexicon.Lexicon
	History   *history.Store
	Config    *config.Config
	ConfigDir string
}

// AppModel is the main TUI model
type AppModel struct {
	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	conjugateView views.ConjugateModel
	historyView   views.HistoryModel
	verbsView     views.VerbsModel
	settingsView  views.SettingsModel

	initialVerb string

	// Help overlay
	showHelp bool
}

// Option configures the app.
type Option func(*AppModel)

// WithVerb conjugates v as soon as the app starts.
func WithVerb(v string) Option {
	return func(m *AppModel) {
		m.initialVerb = v
	}
}

// NewApp creates the TUI application
func NewApp(deps Deps, opts ...Option) AppModel {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	menuItems := []MenuItem{
		{Label: "Conjugate", Icon: "活", View: ViewConjugate, Shortcut: "1"},
		{Label: "History", Icon: "歴", View: ViewHistory, Shortcut: "2"},
		{Label: "Verbs", Icon: "辞", View: ViewVerbs, Shortcut: "3"},
		{Label: "Settings", Icon: "設", View: ViewSettings, Shortcut: "4"},
	}

	app := AppModel{
		sidebarWidth: 18,
		currentView:  ViewConjugate,
		menuItems:    menuItems,

		conjugateView: views.NewConjugateModel(deps.Engine, deps.Lexicon, deps.History, cfg.Share.BaseURL, cfg.Output.Romaji),
		historyView:   views.NewHistoryModel(deps.History),
		verbsView:     views.NewVerbsModel(deps.Lexicon),
		settingsView:  views.NewSettingsModel(cfg, deps.ConfigDir),
	}
	for _, opt := range opts {
		opt(&app)
	}
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.historyView.Reload()}
	if m.initialVerb != "" {
		v := m.initialVerb
		cmds = append(cmds, func() tea.Msg { return views.ConjugateRequestMsg{Verb: v} })
	}
	return tea.Batch(cmds...)
}

// inputFocused reports whether the active view owns the keyboard.
func (m AppModel) inputFocused() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewConjugate:
		return m.conjugateView.InputFocused()
	case ViewVerbs:
		return m.verbsView.InputFocused()
	}
	return false
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.inputFocused() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "esc":
				if m.sidebarActive {
					return m, tea.Quit
				}
				m.sidebarActive = true
				return m, nil
			case "tab":
				m.sidebarActive = !m.sidebarActive
				return m, nil
			}
			for _, item := range m.menuItems {
				if msg.String() == item.Shortcut {
					m.switchTo(item.View)
					return m, nil
				}
			}
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.conjugateView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.verbsView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		m.switchTo(msg.View)
		return m, nil

	case views.ConjugateRequestMsg:
		m.switchTo(ViewConjugate)

	case views.HistoryChangedMsg:
		return m, m.historyView.Reload()
	}

	// Everything that is not a key press goes to every view; each one
	// ignores what it does not own.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.conjugateView, cmd = m.conjugateView.Update(msg)
	cmds = append(cmds, cmd)
	m.historyView, cmd = m.historyView.Update(msg)
	cmds = append(cmds, cmd)
	m.verbsView, cmd = m.verbsView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m AppModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewConjugate:
		m.conjugateView, cmd = m.conjugateView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewVerbs:
		m.verbsView, cmd = m.verbsView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewConjugate:
		content = m.conjugateView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewVerbs:
		content = m.verbsView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" 活用 katsuyou "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Icon + " " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Current view, keyboard elsewhere
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Global Keys", [][2]string{
		{"1-4", "Switch views"},
		{"tab", "Toggle sidebar focus"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
	{"Conjugate", [][2]string{
		{"enter", "Conjugate the input"},
		{"/ or i", "Edit the verb"},
		{"←/→", "Switch category"},
		{"r", "Toggle romaji"},
		{"c", "Copy forms"},
		{"y", "Copy share link"},
	}},
	{"History", [][2]string{
		{"enter", "Conjugate again"},
		{"d", "Delete entry"},
		{"D D", "Clear history"},
	}},
	{"Verbs", [][2]string{
		{"/", "Search"},
		{"t", "Cycle type filter"},
		{"enter", "Conjugate"},
	}},
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("katsuyou - Japanese verb conjugation") + "\n"

	for _, s := range helpSections {
		helpText += HelpSectionStyle.Render(s.title) + "\n"
		for _, k := range s.keys {
			helpText += HelpKeyStyle.Render(k[0]) + HelpDescStyle.Render(k[1]) + "\n"
		}
	}

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
