// Package reading resolves kana readings for verbs written with kanji.
package reading

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/f3rmion/katsuyou/internal/kana"
)

// Source resolves the reading of a word. It matches classify.ReadingSource.
type Source interface {
	Reading(word string) (string, bool)
}

// Chain asks each source in turn and returns the first reading found.
type Chain []Source

// Reading implements Source.
func (c Chain) Reading(word string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if r, ok := s.Reading(word); ok && r != "" {
			return r, true
		}
	}
	return "", false
}

// Analysis is what the morphological analyzer reports for one word.
type Analysis struct {
	Reading     string   // hiragana reading of the whole input
	Tokens      []string // surfaces, one per token
	Conjugation string   // IPA conjugation type of the last token, e.g. 五段・カ行イ音便
	BaseForm    string   // dictionary form of the last token
}

// Tokenizer reads words with kagome and the IPA dictionary. The
// dictionary is loaded on first use.
type Tokenizer struct {
	once sync.Once
	t    *tokenizer.Tokenizer
	err  error
}

// NewTokenizer creates a lazily initialized tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

func (k *Tokenizer) init() error {
	k.once.Do(func() {
		k.t, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if k.err != nil {
			k.err = fmt.Errorf("loading ipa dictionary: %w", k.err)
		}
	})
	return k.err
}

// Analyze tokenizes word and joins the token readings.
func (k *Tokenizer) Analyze(word string) (Analysis, error) {
	if err := k.init(); err != nil {
		return Analysis{}, err
	}

	tokens := k.t.Tokenize(word)
	if len(tokens) == 0 {
		return Analysis{}, fmt.Errorf("no tokens for %q", word)
	}

	var a Analysis
	var b strings.Builder
	for _, tok := range tokens {
		a.Tokens = append(a.Tokens, tok.Surface)
		r, ok := tok.Reading()
		if !ok || r == "*" || r == "" {
			if !kana.AllKana(tok.Surface) {
				return Analysis{}, fmt.Errorf("no reading for %q in %q", tok.Surface, word)
			}
			r = tok.Surface
		}
		b.WriteString(r)
	}
	a.Reading = kana.ToHiragana(b.String())

	last := tokens[len(tokens)-1]
	if f := last.Features(); len(f) > 4 && f[4] != "*" {
		a.Conjugation = f[4]
	}
	if base, ok := last.BaseForm(); ok {
		a.BaseForm = base
	}
	return a, nil
}

// Reading implements Source.
func (k *Tokenizer) Reading(word string) (string, bool) {
	a, err := k.Analyze(word)
	if err != nil || !kana.AllKana(a.Reading) {
		return "", false
	}
	return a.Reading, true
}
