package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/katsuyou/internal/history"
	"github.com/f3rmion/katsuyou/internal/verb"
)

type historyLoadedMsg struct {
	entries []verb.HistoryEntry
	err     error
}

// HistoryModel lists recent queries.
type HistoryModel struct {
	store    *history.Store
	entries  []verb.HistoryEntry
	selected int
	offset   int
	confirm  bool // waiting for a second D to clear everything
	err      error

	width  int
	height int
}

// NewHistoryModel creates the history view. store may be nil when history
// is disabled.
func NewHistoryModel(store *history.Store) HistoryModel {
	return HistoryModel{store: store}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload returns a command that reads the store.
func (m HistoryModel) Reload() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		entries, err := store.List(context.Background())
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.entries, m.err = msg.entries, msg.err
		m.selected = min(m.selected, max(len(m.entries)-1, 0))
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key != "D" {
			m.confirm = false
		}
		switch key {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "g", "home":
			m.selected = 0
		case "G", "end":
			m.selected = max(len(m.entries)-1, 0)
		case "enter":
			if m.selected < len(m.entries) {
				v := m.entries[m.selected].Verb
				return m, func() tea.Msg { return ConjugateRequestMsg{Verb: v} }
			}
		case "d", "delete":
			if m.store != nil && m.selected < len(m.entries) {
				id, store := m.entries[m.selected].ID, m.store
				return m, m.mutate(func(ctx context.Context) error {
					return store.Delete(ctx, id)
				})
			}
		case "D":
			if m.store == nil || len(m.entries) == 0 {
				return m, nil
			}
			if !m.confirm {
				m.confirm = true
				return m, nil
			}
			m.confirm = false
			return m, m.mutate(m.store.Clear)
		}
		m.scroll()
	}
	return m, nil
}

func (m HistoryModel) mutate(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := op(context.Background()); err != nil {
			return historyLoadedMsg{entries: m.entries, err: err}
		}
		entries, err := m.store.List(context.Background())
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *HistoryModel) visibleRows() int {
	return max(m.height-6, 3)
}

func (m *HistoryModel) scroll() {
	rows := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
}

// View renders the history list.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recent verbs"))
	if m.store != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d/%d", len(m.entries), m.store.Limit())))
	}
	b.WriteString("\n\n")

	if m.store == nil {
		b.WriteString(mutedStyle.Render("History is disabled in config.yaml"))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(mutedStyle.Render("No history yet. Conjugate a verb to start."))
		return b.String()
	}

	verbW := 0
	for _, e := range m.entries {
		verbW = max(verbW, runewidth.StringWidth(e.Verb))
	}

	end := min(m.offset+m.visibleRows(), len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf(" %s  %s  %s ",
			runewidth.FillRight(e.Verb, verbW),
			runewidth.FillRight(e.VerbType, 20),
			e.Timestamp.Local().Format("Jan 2 15:04"),
		)
		if i == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirm {
		b.WriteString(errorStyle.Render("Press D again to clear all history"))
	} else {
		b.WriteString(helpStyle.Render("j/k: move • enter: conjugate • d: delete • D: clear all"))
	}
	return b.String()
}
