// Package anki reads Anki .apkg decks and writes them back with
// conjugation fields added to verb notes.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// fieldSep separates note fields in the flds column.
const fieldSep = "\x1f"

// Package is an extracted .apkg file backed by its SQLite collection.
type Package struct {
	path    string
	tempDir string
	db      *sql.DB
	Models  map[int64]*Model
	Decks   map[int64]*Deck
	Notes   []*Note
	Cards   int

	// rawModels keeps every model key so unknown settings survive a save.
	rawModels map[string]map[string]json.RawMessage
	modelKeys map[int64]string
}

// Model is an Anki note type.
type Model struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"flds"`
}

// Field is one field of a note type.
type Field struct {
	Name   string `json:"name"`
	Ord    int    `json:"ord"`
	Sticky bool   `json:"sticky"`
	RTL    bool   `json:"rtl"`
	Font   string `json:"font"`
	Size   int    `json:"size"`
}

// Deck is an Anki deck.
type Deck struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note is an Anki note. Fields follows the model's field order.
type Note struct {
	ID      int64
	GUID    string
	ModelID int64
	Mod     int64
	Tags    string
	Fields  []string
	SFLD    string
	CSum    int64

	dirty bool
}

// Open extracts an .apkg file and loads its collection.
func Open(path string) (*Package, error) {
	pkg := &Package{
		path:      path,
		Models:    make(map[int64]*Model),
		Decks:     make(map[int64]*Deck),
		rawModels: make(map[string]map[string]json.RawMessage),
		modelKeys: make(map[int64]string),
	}

	tempDir, err := os.MkdirTemp("", "katsuyou-anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	pkg.tempDir = tempDir

	if err := pkg.extract(); err != nil {
		pkg.Close()
		return nil, err
	}

	dbPath := filepath.Join(tempDir, "collection.anki21")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		dbPath = filepath.Join(tempDir, "collection.anki2")
	}
	if _, err := os.Stat(dbPath); err != nil {
		pkg.Close()
		return nil, fmt.Errorf("no collection in %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		pkg.Close()
		return nil, fmt.Errorf("opening collection: %w", err)
	}
	pkg.db = db

	for _, load := range []func() error{pkg.loadCollection, pkg.loadNotes, pkg.countCards} {
		if err := load(); err != nil {
			pkg.Close()
			return nil, err
		}
	}
	return pkg, nil
}

// extract unzips the .apkg file into the temp directory.
func (p *Package) extract() error {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		fpath := filepath.Join(p.tempDir, f.Name)

		// Prevent zip slip
		if !strings.HasPrefix(fpath, filepath.Clean(p.tempDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(fpath, 0755); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(f, fpath); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(out, rc)
	return err
}

// loadCollection loads models and decks from the col table.
func (p *Package) loadCollection() error {
	var models, decks string
	if err := p.db.QueryRow("SELECT models, decks FROM col").Scan(&models, &decks); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	if err := json.Unmarshal([]byte(models), &p.rawModels); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}
	for key, raw := range p.rawModels {
		var model Model
		if err := remarshal(raw, &model); err != nil {
			continue // Skip malformed models
		}
		if model.ID == 0 {
			fmt.Sscan(key, &model.ID)
		}
		sort.Slice(model.Fields, func(i, j int) bool { return model.Fields[i].Ord < model.Fields[j].Ord })
		p.Models[model.ID] = &model
		p.modelKeys[model.ID] = key
	}

	var decksMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(decks), &decksMap); err != nil {
		return fmt.Errorf("parsing decks: %w", err)
	}
	for _, raw := range decksMap {
		var deck Deck
		if err := json.Unmarshal(raw, &deck); err != nil {
			continue // Skip malformed decks
		}
		p.Decks[deck.ID] = &deck
	}
	return nil
}

func remarshal(in map[string]json.RawMessage, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// loadNotes loads all notes from the database.
func (p *Package) loadNotes() error {
	rows, err := p.db.Query(`SELECT id, guid, mid, mod, tags, flds, sfld, csum FROM notes ORDER BY id`)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note Note
		var flds string
		if err := rows.Scan(&note.ID, &note.GUID, &note.ModelID, &note.Mod,
			&note.Tags, &flds, &note.SFLD, &note.CSum); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		note.Fields = strings.Split(flds, fieldSep)
		p.Notes = append(p.Notes, &note)
	}
	return rows.Err()
}

func (p *Package) countCards() error {
	if err := p.db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&p.Cards); err != nil {
		return fmt.Errorf("counting cards: %w", err)
	}
	return nil
}

// Model returns the note type of note.
func (p *Package) Model(note *Note) *Model {
	return p.Models[note.ModelID]
}

// FieldIndex returns the position of the named field (case-insensitive).
func (m *Model) FieldIndex(name string) (int, bool) {
	for i, f := range m.Fields {
		if strings.EqualFold(f.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// FieldNames returns the model's field names in order.
func (m *Model) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldValue returns a field of note by name, or "".
func (p *Package) FieldValue(note *Note, name string) string {
	model := p.Model(note)
	if model == nil {
		return ""
	}
	if i, ok := model.FieldIndex(name); ok && i < len(note.Fields) {
		return note.Fields[i]
	}
	return ""
}

// Close removes the extracted files.
func (p *Package) Close() error {
	if p.db != nil {
		p.db.Close()
	}
	if p.tempDir != "" {
		os.RemoveAll(p.tempDir)
	}
	return nil
}

// Summary describes the package contents.
func (p *Package) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Anki Package: %s\n", p.path)
	fmt.Fprintf(&sb, "  Decks: %d\n", len(p.Decks))
	for _, deck := range sortedDecks(p.Decks) {
		fmt.Fprintf(&sb, "    - %s\n", deck.Name)
	}
	fmt.Fprintf(&sb, "  Note types: %d\n", len(p.Models))
	for _, model := range sortedModels(p.Models) {
		fmt.Fprintf(&sb, "    - %s [%s]\n", model.Name, strings.Join(model.FieldNames(), ", "))
	}
	fmt.Fprintf(&sb, "  Notes: %d\n", len(p.Notes))
	fmt.Fprintf(&sb, "  Cards: %d\n", p.Cards)

	return sb.String()
}

func sortedDecks(m map[int64]*Deck) []*Deck {
	out := make([]*Deck, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedModels(m map[int64]*Model) []*Model {
	out := make([]*Model, 0, len(m))
	for _, x := range m {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
