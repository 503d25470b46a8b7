package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/katsuyou/internal/verb"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	lex := Default()
	require.Greater(t, lex.Size(), 100)

	e := lex.Lookup("食べる")
	require.NotNil(t, e)
	assert.Equal(t, "たべる", e.Reading)
	assert.Equal(t, verb.Ichidan, e.Type)
	assert.Equal(t, "N5", e.JLPT)

	r, ok := lex.Reading("勉強する")
	assert.True(t, ok)
	assert.Equal(t, "べんきょうする", r)

	_, ok = lex.Reading("存在しない")
	assert.False(t, ok)

	for _, e := range lex.Entries() {
		assert.NotEmpty(t, e.Reading, e.Verb)
		assert.True(t, e.Type.Valid(), e.Verb)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`# comment`,
		``,
		`{"verb":"書く","reading":"かく","meaning":"to write","type":"godan"}`,
		`not json`,
		`{"reading":"なし"}`,
		`{"verb":"掻く","reading":"かく","meaning":"to scratch","type":"godan"}`,
	}, "\n")

	lex := New()
	require.NoError(t, lex.Load(strings.NewReader(input)))
	assert.Equal(t, 2, lex.Size())

	assert.Len(t, lex.LookupReading("かく"), 2)
	// Two verbs share the reading, so it does not resolve.
	assert.Nil(t, lex.Find("かく"))
	assert.Equal(t, "to write", lex.Find("書く").Meaning)
}

func TestLoad_Replace(t *testing.T) {
	t.Parallel()

	lex := New()
	require.NoError(t, lex.Load(strings.NewReader(`{"verb":"書く","reading":"かく","meaning":"to write"}`)))
	require.NoError(t, lex.Load(strings.NewReader(`{"verb":"書く","reading":"しょく","meaning":"typo"}`)))

	assert.Equal(t, 1, lex.Size())
	assert.Len(t, lex.Entries(), 1)
	assert.Empty(t, lex.LookupReading("かく"))
	require.Len(t, lex.LookupReading("しょく"), 1)
	assert.Equal(t, "typo", lex.Find("しょく").Meaning)
}

func TestNewDefault_IsPrivate(t *testing.T) {
	t.Parallel()

	lex := NewDefault()
	require.NoError(t, lex.Load(strings.NewReader(`{"verb":"捲る","reading":"めくる","type":"godan"}`)))

	assert.NotNil(t, lex.Lookup("捲る"))
	assert.Nil(t, Default().Lookup("捲る"))
	assert.Equal(t, Default().Size()+1, lex.Size())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "extra.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"verb":"捲る","reading":"めくる","type":"godan","jlpt":"N1"}`+"\n"), 0644))

	lex := New()
	require.NoError(t, lex.LoadFromFile(path))
	assert.Equal(t, "めくる", lex.Find("めくる").Reading)

	err := lex.LoadFromFile(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	lex := Default()

	ichidan := lex.Filter(verb.Ichidan, "")
	require.NotEmpty(t, ichidan)
	for _, e := range ichidan {
		assert.Equal(t, verb.Ichidan, e.Type)
	}

	n5 := lex.Filter("", "n5")
	require.NotEmpty(t, n5)
	for _, e := range n5 {
		assert.Equal(t, "N5", e.JLPT)
	}

	assert.Len(t, lex.Filter("", ""), lex.Size())
}
