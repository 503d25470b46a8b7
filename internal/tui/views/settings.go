package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/katsuyou/internal/config"
)

var (
	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc")).
				Width(14)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true)
)

var settingsTabs = []string{"Output", "History", "Reading", "Share & Anki", "Logging"}

// SettingsModel shows the active configuration.
type SettingsModel struct {
	config    *config.Config
	configDir string
	tab       int

	width  int
	height int
}

// NewSettingsModel creates the settings view.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{config: cfg, configDir: configDir}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
		case "left", "h":
			m.tab = (m.tab - 1 + len(settingsTabs)) % len(settingsTabs)
		}
	}
	return m, nil
}

func (m SettingsModel) rows() [][2]string {
	c := m.config
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	switch m.tab {
	case 0:
		cats := "all"
		if len(c.Output.Categories) > 0 {
			cats = strings.Join(c.Output.Categories, ", ")
		}
		return [][2]string{
			{"format", c.Output.Format},
			{"romaji", onOff(c.Output.Romaji)},
			{"color", onOff(c.Output.Color)},
			{"categories", cats},
		}
	case 1:
		return [][2]string{
			{"enabled", onOff(c.History.Enabled)},
			{"limit", fmt.Sprint(c.History.Limit)},
			{"database", c.HistoryPath(m.configDir)},
		}
	case 2:
		lex := c.Reading.Lexicon
		if lex == "" {
			lex = "(built-in only)"
		}
		return [][2]string{
			{"tokenizer", onOff(c.Reading.Tokenizer)},
			{"lexicon", lex},
		}
	case 3:
		return [][2]string{
			{"share url", c.Share.BaseURL},
			{"anki field", c.Anki.Field},
			{"anki forms", strings.Join(c.Anki.Forms, ", ")},
		}
	default:
		return [][2]string{
			{"level", c.Log.Level},
			{"format", c.Log.Format},
		}
	}
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Configuration"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render(m.configDir + "/" + config.FileName))
	b.WriteString("\n\n")

	var tabs []string
	for i, t := range settingsTabs {
		if i == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(t))
		} else {
			tabs = append(tabs, tabStyle.Render(t))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	for _, row := range m.rows() {
		b.WriteString(settingsHeaderStyle.Render(row[0]))
		b.WriteString(itemStyle.Render(row[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→: section • edit config.yaml and restart to apply"))
	return b.String()
}
