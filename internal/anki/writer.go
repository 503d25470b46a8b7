package anki

import (
	"archive/zip"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AddFields appends the named fields to a note type, skipping names it
// already has. Existing notes of the model get empty values.
func (p *Package) AddFields(modelID int64, names []string) error {
	model, ok := p.Models[modelID]
	if !ok {
		return fmt.Errorf("model %d not found", modelID)
	}

	for _, name := range names {
		if _, exists := model.FieldIndex(name); exists {
			continue
		}
		model.Fields = append(model.Fields, Field{
			Name: name,
			Ord:  len(model.Fields),
			Font: "Arial",
			Size: 20,
		})
	}

	for _, note := range p.Notes {
		if note.ModelID != modelID {
			continue
		}
		for len(note.Fields) < len(model.Fields) {
			note.Fields = append(note.Fields, "")
			note.dirty = true
		}
	}
	return nil
}

// SetField sets a named field of note. The field must exist on its model.
func (p *Package) SetField(note *Note, name, value string) error {
	model := p.Model(note)
	if model == nil {
		return fmt.Errorf("model not found for note %d", note.ID)
	}
	i, ok := model.FieldIndex(name)
	if !ok {
		return fmt.Errorf("note type %s has no field %s", model.Name, name)
	}

	for len(note.Fields) < len(model.Fields) {
		note.Fields = append(note.Fields, "")
	}
	if note.Fields[i] == value {
		return nil
	}
	note.Fields[i] = value
	note.Mod = time.Now().Unix()
	note.dirty = true
	return nil
}

// SaveAs writes the modified package to a new .apkg file.
func (p *Package) SaveAs(outputPath string) error {
	if err := p.updateModels(); err != nil {
		return fmt.Errorf("updating database: %w", err)
	}
	if err := p.updateNotes(); err != nil {
		return fmt.Errorf("updating database: %w", err)
	}
	// Flush SQLite before zipping the file underneath it.
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("closing collection: %w", err)
	}
	p.db = nil

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zw := zip.NewWriter(outFile)
	err = filepath.Walk(p.tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(p.tempDir, path)
		if err != nil {
			return err
		}
		return addToZip(zw, path, filepath.ToSlash(rel))
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("creating zip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return outFile.Close()
}

func addToZip(zw *zip.Writer, path, name string) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// updateModels writes the field lists back into the col table, keeping
// every other model setting as loaded.
func (p *Package) updateModels() error {
	for id, model := range p.Models {
		raw := p.rawModels[p.modelKeys[id]]
		if raw == nil {
			continue
		}
		flds, err := json.Marshal(model.Fields)
		if err != nil {
			return fmt.Errorf("marshaling fields of %s: %w", model.Name, err)
		}
		raw["flds"] = flds
	}

	modelsJSON, err := json.Marshal(p.rawModels)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	if _, err := p.db.Exec("UPDATE col SET models = ?, mod = ?", string(modelsJSON), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("updating models: %w", err)
	}
	return nil
}

// updateNotes writes modified notes back to the database.
func (p *Package) updateNotes() error {
	for _, note := range p.Notes {
		if !note.dirty {
			continue
		}
		note.CSum = checksum(note.SFLD)

		_, err := p.db.Exec(`UPDATE notes SET mod = ?, usn = -1, flds = ?, csum = ? WHERE id = ?`,
			note.Mod, strings.Join(note.Fields, fieldSep), note.CSum, note.ID)
		if err != nil {
			return fmt.Errorf("updating note %d: %w", note.ID, err)
		}
		note.dirty = false
	}
	return nil
}

// checksum is Anki's csum: the first 8 hex digits of the SHA-1 of the
// sort field, as an integer.
func checksum(sfld string) int64 {
	sum := sha1.Sum([]byte(StripHTML(sfld)))
	n, _ := strconv.ParseInt(fmt.Sprintf("%x", sum[:4]), 16, 64)
	return n
}
