// Package classify decides the conjugation class of a dictionary-form verb.
package classify

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/f3rmion/katsuyou/internal/kana"
	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/rules"
	"github.com/f3rmion/katsuyou/internal/verb"
)

// ReadingSource resolves the kana reading of a word written with kanji.
type ReadingSource interface {
	Reading(word string) (string, bool)
}

// Classifier classifies verbs, using an optional ReadingSource for kanji.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	readings ReadingSource
}

// New creates a classifier. A nil source limits readings to kana input
// and the built-in lists.
func New(src ReadingSource) *Classifier {
	return &Classifier{readings: src}
}

var defaultClassifier = New(lexicon.Default())

// Classify classifies input using the embedded verb lexicon for readings.
func Classify(input string) (verb.VerbInfo, error) {
	return defaultClassifier.Classify(input)
}

// candidate is the normalized input handed to each step.
type candidate struct {
	surface string
	runes   []rune
	reading string // hiragana, "" when unknown
}

// step is one entry of the ordered check list. A step either claims the
// candidate (returning a verdict or an error) or passes.
type step struct {
	name  string
	check func(c candidate) (verb.VerbInfo, bool, error)
}

// steps is the classification order; the first step that claims the
// candidate wins. Lookalikes run first so that neither the irregular
// suffix test nor the -iru/-eru test can claim them.
var steps = []step{
	{name: "lookalike", check: checkLookalike},
	{name: "homophone", check: checkHomophone},
	{name: "irregular", check: checkIrregular},
	{name: "ichidan", check: checkIchidan},
	{name: "godan", check: checkGodan},
}

// Classify validates input and runs the ordered checks.
func (c *Classifier) Classify(input string) (verb.VerbInfo, error) {
	surface, err := Normalize(input)
	if err != nil {
		return verb.VerbInfo{}, err
	}

	cand := candidate{surface: surface, runes: []rune(surface)}
	cand.reading = c.reading(surface)

	for _, s := range steps {
		info, ok, err := s.check(cand)
		if err != nil {
			return verb.VerbInfo{}, err
		}
		if ok {
			info.Romaji = kana.ToRomaji(info.Reading)
			return info, nil
		}
	}

	return verb.VerbInfo{}, verb.NewError(verb.CodeUnknownVerb, "%s", surface)
}

// Explain returns the name of the step that decided input, for diagnostics.
// For a kana homophone it also names the verb that was assumed.
func (c *Classifier) Explain(input string) string {
	surface, err := Normalize(input)
	if err != nil {
		return "validation"
	}
	cand := candidate{surface: surface, runes: []rune(surface), reading: c.reading(surface)}
	for _, s := range steps {
		if _, ok, err := s.check(cand); ok || err != nil {
			if h, found := homophones[cand.surface]; found && s.name == "homophone" {
				return fmt.Sprintf("homophone: read as %s (%s); also %s",
					h.assumed, h.typ, strings.Join(h.others, ", "))
			}
			return s.name
		}
	}
	return "none"
}

func (c *Classifier) reading(surface string) string {
	if kana.AllKana(surface) {
		return kana.ToHiragana(surface)
	}
	if c.readings == nil {
		return ""
	}
	if r, ok := c.readings.Reading(surface); ok && kana.AllKana(r) {
		return kana.ToHiragana(r)
	}
	return ""
}

// Normalize trims whitespace and validates the script of input.
// Input written entirely in katakana is folded to hiragana.
func Normalize(input string) (string, error) {
	s := strings.TrimFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == '　'
	})
	if s == "" {
		return "", verb.NewError(verb.CodeEmptyInput, "no verb given")
	}
	if r, bad := kana.FirstInvalid(s); bad {
		return "", verb.NewError(verb.CodeInvalidCharacters, "found %q", r)
	}
	if kana.AllKana(s) {
		s = kana.ToHiragana(s)
	}
	return s, nil
}

// split builds a VerbInfo from a surface divided at prefixLen and endingLen
// runes. prefixReading is the kana of the prefix, "" if unknown.
func split(c candidate, typ verb.VerbType, irr verb.IrregularType, prefixLen, endingLen int, prefixReading string) verb.VerbInfo {
	r := c.runes
	info := verb.VerbInfo{
		DictionaryForm: c.surface,
		Reading:        c.reading,
		Type:           typ,
		Irregular:      irr,
		CompoundPrefix: string(r[:prefixLen]),
		Stem:           string(r[prefixLen : len(r)-endingLen]),
		Ending:         string(r[len(r)-endingLen:]),
	}
	if prefixLen > 0 {
		info.CompoundPrefixReading = prefixReading
		if info.Reading != "" && prefixReading == "" {
			info.Reading = ""
		}
	}
	return info
}

// tailReading derives a compound's reading from its kana prefix and the
// reading of its known tail, when the source had none.
func tailReading(c candidate, prefix, tail string) (reading, prefixReading string) {
	if c.reading != "" {
		if strings.HasSuffix(c.reading, tail) {
			return c.reading, strings.TrimSuffix(c.reading, tail)
		}
		return c.reading, ""
	}
	if prefix == "" {
		return tail, ""
	}
	if kana.AllKana(prefix) {
		p := kana.ToHiragana(prefix)
		return p + tail, p
	}
	return "", ""
}

func checkLookalike(c candidate) (verb.VerbInfo, bool, error) {
	for _, e := range knownEntries {
		if !matchesEntry(c.surface, e.surface) {
			continue
		}
		// Compounds keep their prefix inside the stem, as in 持ち帰る.
		prefix := strings.TrimSuffix(c.surface, e.surface)
		c.reading, _ = tailReading(c, prefix, e.reading)
		return split(c, e.typ, "", 0, 1, ""), true, nil
	}
	return verb.VerbInfo{}, false, nil
}

// matchesEntry reports whether surface is entry, or ends with entry when
// entry starts with a kanji.
func matchesEntry(surface, entry string) bool {
	if surface == entry {
		return true
	}
	first := []rune(entry)[0]
	return kana.IsKanji(first) && strings.HasSuffix(surface, entry)
}

func checkHomophone(c candidate) (verb.VerbInfo, bool, error) {
	h, ok := homophones[c.surface]
	if !ok {
		return verb.VerbInfo{}, false, nil
	}
	return split(c, h.typ, "", 0, 1, ""), true, nil
}

func checkIrregular(c candidate) (verb.VerbInfo, bool, error) {
	for _, p := range irregularPatterns {
		if !strings.HasSuffix(c.surface, p.base) {
			continue
		}
		prefix := strings.TrimSuffix(c.surface, p.base)
		if p.teOnly && prefix != "" && !strings.HasSuffix(prefix, "て") && !strings.HasSuffix(prefix, "で") {
			continue
		}

		reading, prefixReading := tailReading(c, prefix, p.reading)
		c.reading = reading
		return split(c, verb.Irregular, p.typ, len([]rune(prefix)), 1, prefixReading), true, nil
	}
	return verb.VerbInfo{}, false, nil
}

func checkIchidan(c candidate) (verb.VerbInfo, bool, error) {
	n := len(c.runes)
	if n < 2 || c.runes[n-1] != 'る' {
		return verb.VerbInfo{}, false, nil
	}

	before := c.runes[n-2]
	if kana.IsKanji(before) {
		rr := []rune(c.reading)
		if len(rr) < 2 || rr[len(rr)-1] != 'る' {
			// Ichidan verbs that hide the row behind a kanji are listed in
			// ichidanKnown; anything else left here is godan.
			return verb.VerbInfo{}, false, nil
		}
		before = rr[len(rr)-2]
	}

	v, ok := kana.Vowel(before)
	if !ok || (v != 'i' && v != 'e') {
		return verb.VerbInfo{}, false, nil
	}
	return split(c, verb.Ichidan, "", 0, 1, ""), true, nil
}

func checkGodan(c candidate) (verb.VerbInfo, bool, error) {
	n := len(c.runes)
	if n < 2 {
		return verb.VerbInfo{}, false, nil
	}
	if !rules.IsGodanEnding(string(c.runes[n-1])) {
		return verb.VerbInfo{}, false, nil
	}
	return split(c, verb.Godan, "", 0, 1, ""), true, nil
}
