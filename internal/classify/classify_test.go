package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/katsuyou/internal/kana"
	"github.com/f3rmion/katsuyou/internal/lexicon"
	"github.com/f3rmion/katsuyou/internal/verb"
)

type mapSource map[string]string

func (m mapSource) Reading(word string) (string, bool) {
	r, ok := m[word]
	return r, ok
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		wantCode verb.ErrorCode
	}{
		{name: "trims spaces", input: "  食べる \n", want: "食べる"},
		{name: "trims ideographic space", input: "　かく　", want: "かく"},
		{name: "folds katakana", input: "タベル", want: "たべる"},
		{name: "keeps mixed script", input: "食ベル", want: "食ベル"},
		{name: "empty", input: "", wantCode: verb.CodeEmptyInput},
		{name: "whitespace only", input: " \t　", wantCode: verb.CodeEmptyInput},
		{name: "latin", input: "taberu", wantCode: verb.CodeInvalidCharacters},
		{name: "inner space", input: "食べ る", wantCode: verb.CodeInvalidCharacters},
		{name: "digits", input: "書く2", wantCode: verb.CodeInvalidCharacters},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, verb.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := New(lexicon.Default())

	tests := []struct {
		input     string
		typ       verb.VerbType
		irr       verb.IrregularType
		reading   string
		prefix    string
		stem      string
		ending    string
		romaji    string
		prefixRdg string
	}{
		{input: "書く", typ: verb.Godan, reading: "かく", stem: "書", ending: "く", romaji: "kaku"},
		{input: "かく", typ: verb.Godan, reading: "かく", stem: "か", ending: "く", romaji: "kaku"},
		{input: "カク", typ: verb.Godan, reading: "かく", stem: "か", ending: "く", romaji: "kaku"},
		{input: "作る", typ: verb.Godan, reading: "つくる", stem: "作", ending: "る", romaji: "tsukuru"},
		{input: "つくる", typ: verb.Godan, reading: "つくる", stem: "つく", ending: "る", romaji: "tsukuru"},
		{input: "食べる", typ: verb.Ichidan, reading: "たべる", stem: "食べ", ending: "る", romaji: "taberu"},
		{input: "たべる", typ: verb.Ichidan, reading: "たべる", stem: "たべ", ending: "る", romaji: "taberu"},
		{input: "見る", typ: verb.Ichidan, reading: "みる", stem: "見", ending: "る", romaji: "miru"},
		{input: "起きる", typ: verb.Ichidan, reading: "おきる", stem: "起き", ending: "る", romaji: "okiru"},
		{input: "出来る", typ: verb.Ichidan, reading: "できる", stem: "出来", ending: "る", romaji: "dekiru"},

		// -iru/-eru shapes that are godan
		{input: "帰る", typ: verb.Godan, reading: "かえる", stem: "帰", ending: "る", romaji: "kaeru"},
		{input: "入る", typ: verb.Godan, reading: "はいる", stem: "入", ending: "る", romaji: "hairu"},
		{input: "はしる", typ: verb.Godan, reading: "はしる", stem: "はし", ending: "る", romaji: "hashiru"},
		{input: "しる", typ: verb.Godan, reading: "しる", stem: "し", ending: "る", romaji: "shiru"},
		{input: "切る", typ: verb.Godan, reading: "きる", stem: "切", ending: "る", romaji: "kiru"},
		{input: "着る", typ: verb.Ichidan, reading: "きる", stem: "着", ending: "る", romaji: "kiru"},

		// irregular
		{input: "する", typ: verb.Irregular, irr: verb.Suru, reading: "する", stem: "す", ending: "る", romaji: "suru"},
		{input: "来る", typ: verb.Irregular, irr: verb.Kuru, reading: "くる", stem: "来", ending: "る", romaji: "kuru"},
		{input: "くる", typ: verb.Irregular, irr: verb.Kuru, reading: "くる", stem: "く", ending: "る", romaji: "kuru"},
		{input: "行く", typ: verb.Irregular, irr: verb.Iku, reading: "いく", stem: "行", ending: "く", romaji: "iku"},
		{input: "ある", typ: verb.Irregular, irr: verb.Aru, reading: "ある", stem: "あ", ending: "る", romaji: "aru"},
		{input: "くださる", typ: verb.Irregular, irr: verb.Honorific, reading: "くださる", stem: "くださ", ending: "る", romaji: "kudasaru"},
		{
			input: "勉強する", typ: verb.Irregular, irr: verb.Suru, reading: "べんきょうする",
			prefix: "勉強", prefixRdg: "べんきょう", stem: "す", ending: "る", romaji: "benkyousuru",
		},
		{
			input: "持って来る", typ: verb.Irregular, irr: verb.Kuru, reading: "もってくる",
			prefix: "持って", prefixRdg: "もって", stem: "来", ending: "る", romaji: "mottekuru",
		},
		{
			input: "もってくる", typ: verb.Irregular, irr: verb.Kuru, reading: "もってくる",
			prefix: "もって", prefixRdg: "もって", stem: "く", ending: "る", romaji: "mottekuru",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := c.Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, got.Type)
			assert.Equal(t, tt.irr, got.Irregular)
			assert.Equal(t, tt.reading, got.Reading)
			assert.Equal(t, tt.prefix, got.CompoundPrefix)
			assert.Equal(t, tt.prefixRdg, got.CompoundPrefixReading)
			assert.Equal(t, tt.stem, got.Stem)
			assert.Equal(t, tt.ending, got.Ending)
			assert.Equal(t, tt.romaji, got.Romaji)
			assert.Equal(t, got.DictionaryForm, got.CompoundPrefix+got.Stem+got.Ending)
		})
	}
}

func TestClassify_Errors(t *testing.T) {
	t.Parallel()

	c := New(lexicon.Default())

	tests := []struct {
		input string
		code  verb.ErrorCode
	}{
		{"", verb.CodeEmptyInput},
		{"   ", verb.CodeEmptyInput},
		{"run", verb.CodeInvalidCharacters},
		{"食べるよ!", verb.CodeInvalidCharacters},
		{"食べ", verb.CodeUnknownVerb},
		{"る", verb.CodeUnknownVerb},
		{"きれい", verb.CodeUnknownVerb},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := c.Classify(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, verb.CodeOf(err), err.Error())
		})
	}
}

func TestClassify_Homophones(t *testing.T) {
	t.Parallel()

	c := New(nil)
	tests := []struct {
		input string
		typ   verb.VerbType
	}{
		{"かえる", verb.Godan},
		{"カエル", verb.Godan},
		{"きる", verb.Ichidan},
		{"いる", verb.Ichidan},
		{"へる", verb.Godan},
		{"ねる", verb.Ichidan},
		{"しめる", verb.Ichidan},
		{"ふける", verb.Ichidan},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := c.Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, got.Type)
			assert.Equal(t, kana.ToHiragana(tt.input), got.Reading)
			assert.Equal(t, "る", got.Ending)
		})
	}
}

func TestClassify_KanjiWithoutReading(t *testing.T) {
	t.Parallel()

	c := New(nil)

	// The mora before る is hidden behind a kanji and the verb is not a
	// listed ichidan verb, so it is godan.
	for _, input := range []string{"作る", "祈る", "眠る", "光る", "捻る"} {
		got, err := c.Classify(input)
		require.NoError(t, err, input)
		assert.Equal(t, verb.Godan, got.Type, input)
		assert.Equal(t, "る", got.Ending, input)
		assert.Empty(t, got.Reading, input)
	}

	// Listed ichidan verbs still win, alone and as a compound tail.
	got, err := c.Classify("見る")
	require.NoError(t, err)
	assert.Equal(t, verb.Ichidan, got.Type)

	got, err = c.Classify("夢見る")
	require.NoError(t, err)
	assert.Equal(t, verb.Ichidan, got.Type)

	// Okurigana shows the row, so no reading is needed.
	got, err = c.Classify("食べる")
	require.NoError(t, err)
	assert.Equal(t, verb.Ichidan, got.Type)
	assert.Empty(t, got.Reading)
	assert.Empty(t, got.Romaji)

	// Listed verbs carry their own reading.
	got, err = c.Classify("帰る")
	require.NoError(t, err)
	assert.Equal(t, verb.Godan, got.Type)
	assert.Equal(t, "かえる", got.Reading)
}

func TestClassify_ReadingSource(t *testing.T) {
	t.Parallel()

	c := New(mapSource{"捲る": "めくる", "褒める": "ほめる", "捗る": "hakadoru"})

	got, err := c.Classify("捲る")
	require.NoError(t, err)
	assert.Equal(t, verb.Godan, got.Type)
	assert.Equal(t, "めくる", got.Reading)

	got, err = c.Classify("褒める")
	require.NoError(t, err)
	assert.Equal(t, verb.Ichidan, got.Type)
	assert.Equal(t, "homeru", got.Romaji)

	// A reading that is not kana is ignored.
	got, err = c.Classify("捗る")
	require.NoError(t, err)
	assert.Equal(t, verb.Godan, got.Type)
	assert.Empty(t, got.Reading)
}

func TestClassify_CompoundLookalike(t *testing.T) {
	t.Parallel()

	got, err := New(nil).Classify("持ち帰る")
	require.NoError(t, err)
	assert.Equal(t, verb.Godan, got.Type)
	assert.Equal(t, "持ち帰", got.Stem)
	assert.Empty(t, got.CompoundPrefix)
	// The kanji prefix has no known reading.
	assert.Empty(t, got.Reading)

	got, err = New(nil).Classify("気に入る")
	require.NoError(t, err)
	assert.Equal(t, verb.Godan, got.Type)
	assert.Equal(t, "気に入", got.Stem)
}

func TestClassify_TeOnlyKana(t *testing.T) {
	t.Parallel()

	c := New(nil)
	for _, in := range []string{"めくる", "つくる", "まいく"} {
		got, err := c.Classify(in)
		require.NoError(t, err, in)
		assert.Equal(t, verb.Godan, got.Type, in)
	}

	got, err := c.Classify("もっていく")
	require.NoError(t, err)
	assert.Equal(t, verb.Iku, got.Irregular)
	assert.Equal(t, "もって", got.CompoundPrefix)
}

func TestClassify_Lexicon(t *testing.T) {
	t.Parallel()

	lex := lexicon.Default()
	c := New(lex)

	for _, e := range lex.Entries() {
		got, err := c.Classify(e.Verb)
		require.NoError(t, err, e.Verb)
		assert.Equal(t, e.Type, got.Type, e.Verb)
		assert.Equal(t, e.Reading, got.Reading, e.Verb)
		assert.Equal(t, e.Verb, got.CompoundPrefix+got.Stem+got.Ending, e.Verb)
		if got.Type == verb.Irregular {
			assert.True(t, got.Irregular.Valid(), e.Verb)
		} else {
			assert.Empty(t, got.Irregular, e.Verb)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	c := New(lexicon.Default())
	for _, in := range []string{"持ち帰る", "勉強する", "帰る", "もってくる"} {
		first, err := c.Classify(in)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := c.Classify(in)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	c := New(lexicon.Default())
	assert.Equal(t, "lookalike", c.Explain("帰る"))
	assert.Equal(t, "homophone: read as 帰る (godan); also 返る, 変える, 替える", c.Explain("かえる"))
	assert.Equal(t, "homophone: read as 居る (ichidan); also 要る, 煎る", c.Explain("いる"))
	assert.Equal(t, "irregular", c.Explain("勉強する"))
	assert.Equal(t, "ichidan", c.Explain("食べる"))
	assert.Equal(t, "godan", c.Explain("書く"))
	assert.Equal(t, "validation", c.Explain("abc"))
	assert.Equal(t, "none", c.Explain("きれい"))
}
