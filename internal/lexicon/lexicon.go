// Package lexicon holds the verb list used for readings, meanings and suggestions.
package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/f3rmion/katsuyou/internal/verb"
)

//go:embed verbs.jsonl
var embedded []byte

// Entry is one line of a lexicon file.
type Entry struct {
	Verb    string        `json:"verb"`
	Reading string        `json:"reading"`
	Meaning string        `json:"meaning"`
	JLPT    string        `json:"jlpt,omitempty"` // N5 ... N1
	Type    verb.VerbType `json:"type,omitempty"`
}

// Lexicon indexes entries by written form and by reading.
type Lexicon struct {
	entries   map[string]*Entry
	byReading map[string][]*Entry
	order     []*Entry
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		entries:   make(map[string]*Entry),
		byReading: make(map[string][]*Entry),
	}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the lexicon built from the embedded verb list.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = NewDefault()
	})
	return defaultLex
}

// NewDefault returns a private copy of the embedded verb list that the
// caller may extend.
func NewDefault() *Lexicon {
	l := New()
	// The embedded file is part of the build; a bad line is skipped like any other.
	_ = l.Load(bytes.NewReader(embedded))
	return l
}

// Load reads JSON lines from r. Entries already present are replaced,
// so a user file loaded after the defaults overrides them.
func (l *Lexicon) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Skip malformed entries
			continue
		}
		if entry.Verb == "" {
			continue
		}
		l.add(&entry)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lexicon: %w", err)
	}
	return nil
}

// LoadFromFile loads a JSONL lexicon file.
func (l *Lexicon) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening lexicon file: %w", err)
	}
	defer file.Close()

	return l.Load(file)
}

func (l *Lexicon) add(e *Entry) {
	if old, ok := l.entries[e.Verb]; ok {
		if old.Reading != e.Reading {
			l.unindex(old)
			defer l.index(old)
		}
		*old = *e
		return
	}
	l.entries[e.Verb] = e
	l.order = append(l.order, e)
	l.index(e)
}

func (l *Lexicon) unindex(e *Entry) {
	list := l.byReading[e.Reading]
	for i, x := range list {
		if x == e {
			l.byReading[e.Reading] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
}

func (l *Lexicon) index(e *Entry) {
	if e.Reading != "" {
		l.byReading[e.Reading] = append(l.byReading[e.Reading], e)
	}
}

// Lookup returns the entry for a written form, or nil.
func (l *Lexicon) Lookup(word string) *Entry {
	return l.entries[word]
}

// LookupReading returns every entry read as reading, in file order.
func (l *Lexicon) LookupReading(reading string) []*Entry {
	return l.byReading[reading]
}

// Find returns the entry for a written form, falling back to a reading
// shared by exactly one entry.
func (l *Lexicon) Find(word string) *Entry {
	if e := l.entries[word]; e != nil {
		return e
	}
	if es := l.byReading[word]; len(es) == 1 {
		return es[0]
	}
	return nil
}

// Reading returns the kana reading of word.
func (l *Lexicon) Reading(word string) (string, bool) {
	e := l.entries[word]
	if e == nil || e.Reading == "" {
		return "", false
	}
	return e.Reading, true
}

// Entries returns all entries in load order.
func (l *Lexicon) Entries() []*Entry {
	out := make([]*Entry, len(l.order))
	copy(out, l.order)
	return out
}

// Filter returns entries matching typ and jlpt; empty values match all.
func (l *Lexicon) Filter(typ verb.VerbType, jlpt string) []*Entry {
	var out []*Entry
	for _, e := range l.order {
		if typ != "" && e.Type != typ {
			continue
		}
		if jlpt != "" && !strings.EqualFold(e.JLPT, jlpt) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Size returns the number of entries in the lexicon.
func (l *Lexicon) Size() int {
	return len(l.entries)
}
