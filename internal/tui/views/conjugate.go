package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/katsuyou/internal/clipboard"
	"github.com/f3rmion/katsuyou/internal/conjugate"
	"github.com/f3rmion/katsuyou/internal/history"
	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/render"
	"github.com/f3rmion/katsuyou/internal/share"
	"github.com/f3rmion/katsuyou/internal/tui/bigchar"
	"github.com/f3rmion/katsuyou/internal/verb"
)

// ConjugateRequestMsg asks the conjugate view to show a verb.
type ConjugateRequestMsg struct {
	Verb string
}

// HistoryChangedMsg is sent after the history store was written.
type HistoryChangedMsg struct {
	Err error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ConjugateModel is the main view: a verb input and its conjugation table.
type ConjugateModel struct {
	input    textinput.Model
	table    viewport.Model
	engine   *conjugate.Engine
	lexicon  *lexicon.Lexicon
	history  *history.Store
	shareURL string

	result   *verb.Result
	entry    *lexicon.Entry
	err      error
	category int // 0 = all, otherwise index+1 into the result's categories
	romaji   bool
	status   string

	width  int
	height int
}

// NewConjugateModel creates the conjugate view. store may be nil.
func NewConjugateModel(engine *conjugate.Engine, lex *lexicon.Lexicon, store *history.Store, shareURL string, romaji bool) ConjugateModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a verb in dictionary form (食べる, かく, 勉強する)..."
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return ConjugateModel{
		input:    ti,
		table:    viewport.New(60, 10),
		engine:   engine,
		lexicon:  lex,
		history:  store,
		shareURL: shareURL,
		romaji:   romaji,
	}
}

// SetSize updates the view dimensions.
func (m *ConjugateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// InputFocused reports whether keystrokes are going to the text input.
func (m ConjugateModel) InputFocused() bool {
	return m.input.Focused()
}

// Result returns the verb currently shown, if any.
func (m ConjugateModel) Result() (verb.Result, bool) {
	if m.result == nil {
		return verb.Result{}, false
	}
	return *m.result, true
}

// Update handles messages.
func (m ConjugateModel) Update(msg tea.Msg) (ConjugateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConjugateRequestMsg:
		m.input.SetValue(msg.Verb)
		return m, m.submit()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "enter":
				return m, m.submit()
			case "esc":
				if m.result != nil {
					m.input.Blur()
					return m, nil
				}
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/", "i":
			m.input.Focus()
			return m, textinput.Blink
		case "left", "h":
			m.cycleCategory(-1)
			return m, nil
		case "right", "l":
			m.cycleCategory(1)
			return m, nil
		case "r":
			m.romaji = !m.romaji
			m.refreshTable()
			return m, nil
		case "y":
			return m, m.copyShareLink()
		case "c":
			return m, m.copyForms()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// submit conjugates the input and records it in history.
func (m *ConjugateModel) submit() tea.Cmd {
	res, err := m.engine.Conjugate(m.input.Value())
	m.err = err
	m.category = 0
	if err != nil {
		m.result = nil
		m.entry = nil
		m.refreshTable()
		return nil
	}

	m.result = &res
	m.entry = nil
	if m.lexicon != nil {
		m.entry = m.lexicon.Find(res.Verb.DictionaryForm)
	}
	m.input.Blur()
	m.layout()

	if m.history == nil {
		return nil
	}
	store := m.history
	return func() tea.Msg {
		_, err := store.Add(context.Background(), res.Verb)
		return HistoryChangedMsg{Err: err}
	}
}

func (m *ConjugateModel) cycleCategory(delta int) {
	if m.result == nil {
		return
	}
	n := len(m.result.ByCategory()) + 1
	m.category = (m.category + delta + n) % n
	m.refreshTable()
}

func (m *ConjugateModel) visibleForms() []verb.Form {
	if m.result == nil {
		return nil
	}
	if m.category == 0 {
		return m.result.Forms
	}
	groups := m.result.ByCategory()
	return groups[m.category-1].Forms
}

func (m *ConjugateModel) copyShareLink() tea.Cmd {
	if m.result == nil {
		return nil
	}
	link, err := share.Link(m.shareURL, m.result.Verb.DictionaryForm)
	if err == nil {
		err = clipboard.Write(link)
	}
	return m.setStatus(err, "Copied share link")
}

func (m *ConjugateModel) copyForms() tea.Cmd {
	forms := m.visibleForms()
	if len(forms) == 0 {
		return nil
	}
	return m.setStatus(clipboard.Write(clipboard.FormLines(forms)), fmt.Sprintf("Copied %d forms", len(forms)))
}

func (m *ConjugateModel) setStatus(err error, ok string) tea.Cmd {
	if err != nil {
		m.status = errorStyle.Render(err.Error())
	} else {
		m.status = copiedStyle.Render(ok)
	}
	return clearStatusAfter(2 * time.Second)
}

// header is the big-glyph verb, its reading and its class.
func (m ConjugateModel) header() string {
	if m.result == nil {
		return ""
	}
	v := m.result.Verb

	var word string
	if bigchar.IsAvailable() {
		cols := min(12*len([]rune(v.DictionaryForm)), max(m.width-8, 12))
		if art := bigchar.GetCached(v.DictionaryForm, cols, 6); art != "" {
			word = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d")).Render(art)
		}
	}
	if word == "" {
		word = bigWordStyle.Render(v.DictionaryForm)
	}

	reading := v.Reading
	if m.romaji && v.Romaji != "" {
		reading += "  " + romajiStyle.Render(v.Romaji)
	}
	lines := []string{word, readingStyle.Render(reading), typeBadgeStyle.Render(v.Label())}
	if m.entry != nil && m.entry.Meaning != "" {
		gloss := m.entry.Meaning
		if m.entry.JLPT != "" {
			gloss += "  (" + m.entry.JLPT + ")"
		}
		lines = append(lines, meaningStyle.Render(gloss))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.NewStyle().Width(max(m.width-4, 20)).Align(lipgloss.Center).Render(block)
}

func (m ConjugateModel) tabs() string {
	if m.result == nil {
		return ""
	}
	labels := []string{"All"}
	for _, g := range m.result.ByCategory() {
		labels = append(labels, g.Category.Title())
	}

	var tabs []string
	for i, l := range labels {
		if i == m.category {
			tabs = append(tabs, tabActiveStyle.Render(l))
		} else {
			tabs = append(tabs, tabStyle.Render(l))
		}
	}
	return lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(strings.Join(tabs, ""))
}

// layout sizes the table to whatever the header leaves over.
func (m *ConjugateModel) layout() {
	used := 4 // input, help, spacing
	if h := m.header(); h != "" {
		used += lipgloss.Height(h) + lipgloss.Height(m.tabs()) + 1
	}
	m.table.Width = max(m.width-4, 20)
	m.table.Height = max(m.height-used, 3)
	m.refreshTable()
}

func (m *ConjugateModel) refreshTable() {
	m.table.SetContent(m.renderForms(m.visibleForms()))
	m.table.GotoTop()
}

func (m ConjugateModel) renderForms(forms []verb.Form) string {
	if len(forms) == 0 {
		return ""
	}

	nameW, kanjiW, kanaW := 0, 0, 0
	for _, f := range forms {
		nameW = max(nameW, runewidth.StringWidth(f.Name))
		kanjiW = max(kanjiW, runewidth.StringWidth(f.Kanji))
		kanaW = max(kanaW, runewidth.StringWidth(f.Hiragana))
	}

	var b strings.Builder
	var current verb.Category
	for _, f := range forms {
		if f.Category != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = f.Category
			b.WriteString(categoryStyle.Render(current.Title()))
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(runewidth.FillRight(f.Name, nameW)))
		b.WriteString("  ")
		b.WriteString(kanjiStyle.Render(runewidth.FillRight(f.Kanji, kanjiW)))
		b.WriteString("  ")
		b.WriteString(kanaStyle.Render(runewidth.FillRight(f.Hiragana, kanaW)))
		if m.romaji {
			b.WriteString("  ")
			b.WriteString(romajiStyle.Render(f.Romaji))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the conjugate view.
func (m ConjugateModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(render.ErrorMessage(m.err)))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.header())
		b.WriteString("\n")
		b.WriteString(m.tabs())
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.input.Focused() {
		b.WriteString(helpStyle.Render("enter: conjugate"))
	} else {
		b.WriteString(helpStyle.Render("/: new verb • ←/→: category • j/k: scroll • r: romaji • y: copy link • c: copy forms"))
	}
	return b.String()
}
