package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/verb"
)

var searchBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#ffe66d")).
	Padding(0, 1)

// typeFilters cycles with t; "" shows every class.
var typeFilters = []verb.VerbType{"", verb.Godan, verb.Ichidan, verb.Irregular}

// VerbsModel browses the lexicon.
type VerbsModel struct {
	lexicon *lexicon.Lexicon
	shown   []*lexicon.Entry

	searchInput textinput.Model
	searching   bool
	searchTerm  string
	typeFilter  int

	selected int
	offset   int
	width    int
	height   int
}

// NewVerbsModel creates the lexicon browser.
func NewVerbsModel(lex *lexicon.Lexicon) VerbsModel {
	si := textinput.New()
	si.Placeholder = "verb, reading or meaning"
	si.CharLimit = 40
	si.Width = 30

	m := VerbsModel{lexicon: lex, searchInput: si}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions.
func (m *VerbsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InputFocused reports whether the search box has focus.
func (m VerbsModel) InputFocused() bool {
	return m.searching
}

func (m *VerbsModel) applyFilter() {
	m.shown = nil
	if m.lexicon == nil {
		return
	}
	term := strings.ToLower(strings.TrimSpace(m.searchTerm))
	for _, e := range m.lexicon.Filter(typeFilters[m.typeFilter], "") {
		if term != "" &&
			!strings.Contains(e.Verb, term) &&
			!strings.Contains(e.Reading, term) &&
			!strings.Contains(strings.ToLower(e.Meaning), term) {
			continue
		}
		m.shown = append(m.shown, e)
	}
	m.selected, m.offset = 0, 0
}

// Update handles messages.
func (m VerbsModel) Update(msg tea.Msg) (VerbsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searching {
		switch key.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.searchTerm = m.searchInput.Value()
			m.applyFilter()
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "x":
		m.searchTerm = ""
		m.searchInput.SetValue("")
		m.applyFilter()
	case "t":
		m.typeFilter = (m.typeFilter + 1) % len(typeFilters)
		m.applyFilter()
	case "j", "down":
		if m.selected < len(m.shown)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		if m.selected < len(m.shown) {
			v := m.shown[m.selected].Verb
			return m, func() tea.Msg { return ConjugateRequestMsg{Verb: v} }
		}
	}

	rows := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	return m, nil
}

func (m VerbsModel) visibleRows() int {
	return max(m.height-8, 3)
}

// View renders the lexicon list.
func (m VerbsModel) View() string {
	var b strings.Builder

	filter := "all"
	if t := typeFilters[m.typeFilter]; t != "" {
		filter = string(t)
	}
	b.WriteString(titleStyle.Render("Verbs"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d shown • type: %s", len(m.shown), filter)))
	if m.searchTerm != "" {
		b.WriteString(mutedStyle.Render(" • search: " + m.searchTerm))
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString(searchBoxStyle.Render("Search: " + m.searchInput.View()))
	}
	b.WriteString("\n")

	verbW, readW := 0, 0
	for _, e := range m.shown {
		verbW = max(verbW, runewidth.StringWidth(e.Verb))
		readW = max(readW, runewidth.StringWidth(e.Reading))
	}

	end := min(m.offset+m.visibleRows(), len(m.shown))
	for i := m.offset; i < end; i++ {
		e := m.shown[i]
		line := fmt.Sprintf(" %s  %s  %-3s %-9s %s ",
			runewidth.FillRight(e.Verb, verbW),
			runewidth.FillRight(e.Reading, readW),
			e.JLPT, e.Type, e.Meaning)
		line = runewidth.Truncate(line, max(m.width-4, 20), "…")
		if i == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.shown) == 0 {
		b.WriteString(mutedStyle.Render("No verbs match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move • enter: conjugate • /: search • x: clear search • t: type filter"))
	return b.String()
}
