package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/katsuyou/internal/conjugate"
	"github.com/f3rmion/katsuyou/internal/lexicon"
)

const (
	testModels = `{
		"1001": {"id": 1001, "name": "Vocab", "sortf": 0, "flds": [
			{"name": "Front", "ord": 0, "sticky": false, "rtl": false, "font": "Arial", "size": 20},
			{"name": "Back", "ord": 1, "sticky": false, "rtl": false, "font": "Arial", "size": 20}
		]},
		"1002": {"id": 1002, "name": "Grammar", "flds": [
			{"name": "Pattern", "ord": 0, "font": "Arial", "size": 20}
		]}
	}`
	testDecks = `{"1": {"id": 1, "name": "Default"}, "2": {"id": 2, "name": "Japanese::Verbs"}}`
)

type testNote struct {
	id     int64
	mid    int64
	fields []string
}

var testNotes = []testNote{
	{1, 1001, []string{"食べる", "to eat"}},
	{2, 1001, []string{"<b>書く</b> (かく)", "to write"}},
	{3, 1001, []string{"きれい", "pretty"}},
	{4, 1002, []string{"〜てもいい"}},
}

// writeTestPackage builds a minimal .apkg in dir and returns its path.
func writeTestPackage(t *testing.T, dir string) string {
	t.Helper()

	dbPath := filepath.Join(dir, "collection.anki2")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE col (id INTEGER PRIMARY KEY, mod INTEGER, models TEXT, decks TEXT)`,
		`CREATE TABLE notes (id INTEGER PRIMARY KEY, guid TEXT, mid INTEGER, mod INTEGER, usn INTEGER,
			tags TEXT, flds TEXT, sfld TEXT, csum INTEGER, flags INTEGER, data TEXT)`,
		`CREATE TABLE cards (id INTEGER PRIMARY KEY, nid INTEGER)`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO col (id, mod, models, decks) VALUES (1, 0, ?, ?)`, testModels, testDecks)
	require.NoError(t, err)

	for _, n := range testNotes {
		_, err := db.Exec(`INSERT INTO notes VALUES (?, ?, ?, 0, 0, '', ?, ?, 0, 0, '')`,
			n.id, "guid"+string(rune('a'+n.id)), n.mid, strings.Join(n.fields, fieldSep), n.fields[0])
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO cards (id, nid) VALUES (?, ?)`, n.id*10, n.id)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	apkg := filepath.Join(dir, "deck.apkg")
	out, err := os.Create(apkg)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("collection.anki2")
	require.NoError(t, err)
	in, err := os.Open(dbPath)
	require.NoError(t, err)
	_, err = io.Copy(w, in)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())
	return apkg
}

func TestOpen(t *testing.T) {
	t.Parallel()

	pkg, err := Open(writeTestPackage(t, t.TempDir()))
	require.NoError(t, err)
	defer pkg.Close()

	assert.Len(t, pkg.Models, 2)
	assert.Len(t, pkg.Decks, 2)
	assert.Len(t, pkg.Notes, 4)
	assert.Equal(t, 4, pkg.Cards)

	vocab := pkg.Models[1001]
	require.NotNil(t, vocab)
	assert.Equal(t, []string{"Front", "Back"}, vocab.FieldNames())

	idx, ok := vocab.FieldIndex("back")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	assert.Equal(t, "to eat", pkg.FieldValue(pkg.Notes[0], "Back"))
	assert.Equal(t, "", pkg.FieldValue(pkg.Notes[0], "Missing"))

	summary := pkg.Summary()
	assert.Contains(t, summary, "Japanese::Verbs")
	assert.Contains(t, summary, "Vocab [Front, Back]")
	assert.Contains(t, summary, "Notes: 4")
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.apkg"))
	assert.Error(t, err)

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.apkg")
	f, err := os.Create(empty)
	require.NoError(t, err)
	require.NoError(t, zip.NewWriter(f).Close())
	require.NoError(t, f.Close())

	_, err = Open(empty)
	assert.ErrorContains(t, err, "no collection")
}

func TestAugment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pkg, err := Open(writeTestPackage(t, dir))
	require.NoError(t, err)
	defer pkg.Close()

	engine := conjugate.NewEngine(lexicon.Default(), nil)
	report, err := Augment(pkg, engine, Options{
		Field: "Front",
		Forms: []string{"basic/te", "polite/masu"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Augmented)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, int64(3), report.Skipped[0].NoteID)

	assert.Equal(t, []string{"Front", "Back", "Katsuyou_basic_te", "Katsuyou_polite_masu"}, pkg.Models[1001].FieldNames())
	assert.Len(t, pkg.Models[1002].FieldNames(), 1)

	out := filepath.Join(dir, "out.apkg")
	require.NoError(t, pkg.SaveAs(out))

	reopened, err := Open(out)
	require.NoError(t, err)
	defer reopened.Close()

	require.Len(t, reopened.Notes, 4)
	assert.Equal(t, "食べて【たべて】", reopened.FieldValue(reopened.Notes[0], "Katsuyou_basic_te"))
	assert.Equal(t, "書きます【かきます】", reopened.FieldValue(reopened.Notes[1], "Katsuyou_polite_masu"))
	assert.Equal(t, "", reopened.FieldValue(reopened.Notes[2], "Katsuyou_basic_te"))
	assert.Equal(t, "〜てもいい", reopened.FieldValue(reopened.Notes[3], "Pattern"))
	assert.NotZero(t, reopened.Notes[0].CSum)
}

func TestAugment_Errors(t *testing.T) {
	t.Parallel()

	pkg, err := Open(writeTestPackage(t, t.TempDir()))
	require.NoError(t, err)
	defer pkg.Close()

	engine := conjugate.NewEngine(lexicon.Default(), nil)

	_, err = Augment(pkg, engine, Options{Field: "Front"})
	assert.Error(t, err)

	_, err = Augment(pkg, engine, Options{Field: "Reading", Forms: []string{"basic/te"}})
	assert.ErrorContains(t, err, "Reading")
}

func TestDetectField(t *testing.T) {
	t.Parallel()

	pkg, err := Open(writeTestPackage(t, t.TempDir()))
	require.NoError(t, err)
	defer pkg.Close()

	engine := conjugate.NewEngine(lexicon.Default(), nil)
	isVerb := func(s string) bool {
		_, err := engine.Classify(s)
		return err == nil
	}
	assert.Equal(t, "Front", DetectField(pkg, isVerb))
	assert.Equal(t, "", DetectField(pkg, func(string) bool { return false }))
}

func TestCleanVerb(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"食べる", "食べる"},
		{"<b>書く</b>", "書く"},
		{"食べる (たべる)", "食べる"},
		{"見る、観る", "見る"},
		{"  行く&nbsp;", "行く"},
		{"帰る【かえる】", "帰る"},
		{"<div>話す<br>to speak</div>", "話す"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanVerb(tt.in), tt.in)
	}
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Katsuyou_polite_masu", FieldName("polite/masu"))
	assert.Equal(t, "Katsuyou_past_masen-deshita", FieldName("past/masen-deshita"))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, checksum("食べる"), checksum("<b>食べる</b>"))
	assert.NotEqual(t, checksum("食べる"), checksum("書く"))
}
