package render

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/katsuyou/internal/verb"
)

func sampleItem() Item {
	return Item{
		Result: verb.Result{
			Verb: verb.VerbInfo{
				DictionaryForm: "書く", Reading: "かく", Romaji: "kaku",
				Type: verb.Godan, Stem: "書", Ending: "く",
			},
			Forms: []verb.Form{
				{ID: "basic/dictionary", Category: verb.CategoryBasic, Name: "Dictionary form", Kanji: "書く", Hiragana: "かく", Romaji: "kaku"},
				{ID: "basic/te", Category: verb.CategoryBasic, Name: "Te-form", Kanji: "書いて", Hiragana: "かいて", Romaji: "kaite"},
				{ID: "polite/masu", Category: verb.CategoryPolite, Name: "Masu-form", Kanji: "書きます", Hiragana: "かきます", Romaji: "kakimasu", Formality: verb.Polite},
			},
		},
		Meaning: "to write",
		JLPT:    "N5",
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	r := New(Options{Romaji: true})
	out := r.Table(sampleItem())

	assert.Contains(t, out, "書く 【かく】 kaku")
	assert.Contains(t, out, "godan")
	assert.Contains(t, out, "to write")
	assert.Contains(t, out, "Basic\n")
	assert.Contains(t, out, "Polite\n")
	assert.Contains(t, out, "kaite")
	assert.Less(t, strings.Index(out, "Basic"), strings.Index(out, "Polite"))
	assert.NotContains(t, out, "\x1b[")

	noRomaji := New(Options{}).Table(sampleItem())
	assert.NotContains(t, noRomaji, "kaite")
	assert.Contains(t, noRomaji, "かいて")
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	out, err := New(Options{Romaji: true}).Markdown(sampleItem())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "## 書く (かく)\n"))
	assert.Contains(t, out, "- Type: godan")
	assert.Contains(t, out, "- Meaning: to write")
	assert.Contains(t, out, "### Basic")
	assert.Contains(t, out, "| Form | Kanji | Hiragana | Romaji |")
	assert.Contains(t, out, "| Te-form | 書いて | かいて | kaite |")

	out, err = New(Options{}).Markdown(sampleItem())
	require.NoError(t, err)
	assert.Contains(t, out, "| Te-form | 書いて | かいて |\n")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	out, err := JSON([]Item{sampleItem()})
	require.NoError(t, err)

	var decoded []struct {
		Result struct {
			Verb struct {
				DictionaryForm string `json:"dictionary_form"`
				Type           string `json:"type"`
			} `json:"verb"`
			Forms []struct {
				ID    string `json:"id"`
				Kanji string `json:"kanji"`
			} `json:"forms"`
		} `json:"result"`
		Meaning string `json:"meaning"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "書く", decoded[0].Result.Verb.DictionaryForm)
	assert.Equal(t, "godan", decoded[0].Result.Verb.Type)
	assert.Equal(t, "basic/te", decoded[0].Result.Forms[1].ID)
	assert.Equal(t, "to write", decoded[0].Meaning)

	empty, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", empty)
}

func TestRender_Formats(t *testing.T) {
	t.Parallel()

	r := New(Options{})
	items := []Item{sampleItem()}

	for _, f := range append(Formats, "") {
		out, err := r.Render(f, items)
		require.NoError(t, err, f)
		assert.Contains(t, out, "書いて", f)
	}

	_, err := r.Render("yaml", items)
	assert.Error(t, err)
}

func TestVerbInfo(t *testing.T) {
	t.Parallel()

	out := New(Options{Romaji: true}).VerbInfo(verb.VerbInfo{
		DictionaryForm: "勉強する", Reading: "べんきょうする", Romaji: "benkyousuru",
		Type: verb.Irregular, Irregular: verb.Suru,
		CompoundPrefix: "勉強", Stem: "す", Ending: "る",
	})
	assert.Contains(t, out, "irregular (suru)")
	assert.Contains(t, out, "prefix:")
	assert.Contains(t, out, "benkyousuru")

	out = New(Options{}).VerbInfo(verb.VerbInfo{DictionaryForm: "食べる", Type: verb.Ichidan, Stem: "食べ", Ending: "る"})
	assert.Contains(t, out, "(unknown)")
	assert.NotContains(t, out, "prefix:")
}

func TestHistory(t *testing.T) {
	t.Parallel()

	r := New(Options{})
	assert.Equal(t, "No history yet\n", r.History(nil))

	out := r.History([]verb.HistoryEntry{
		{ID: "01HV0000000000000000000000", Verb: "書く", VerbType: "godan", Timestamp: time.Now()},
		{ID: "01HV0000000000000000000001", Verb: "食べる", VerbType: "ichidan", Timestamp: time.Now()},
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "書く")
	assert.Contains(t, lines[1], "ichidan")
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{verb.NewError(verb.CodeEmptyInput, "no verb given"), "Please enter a verb."},
		{verb.NewError(verb.CodeInvalidCharacters, "found %q", 'x'), "Only hiragana, katakana and kanji are accepted (found 'x')."},
		{verb.NewError(verb.CodeUnknownVerb, "%s", "きれい"), "Not a recognized dictionary-form verb: きれい."},
		{verb.NewError(verb.CodeAmbiguousVerb, "かえる could be 帰る"), "Ambiguous verb: かえる could be 帰る."},
		{verb.NewError(verb.CodeConjugationFailed, "bad"), "Could not conjugate: bad."},
		{errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorMessage(tt.err))
	}
}
