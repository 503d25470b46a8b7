// Package clipboard copies share links and forms to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// ErrUnavailable is returned when no clipboard backend is installed.
var ErrUnavailable = errors.New("clipboard unavailable")

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend (pbcopy, xclip, xsel,
// wl-copy, clip.exe) was found.
func Available() bool {
	return !clipboard.Unsupported
}

// FormLines formats forms as tab-separated lines for pasting into a sheet.
func FormLines(forms []verb.Form) string {
	var b strings.Builder
	for _, f := range forms {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n", f.Name, f.Kanji, f.Hiragana, f.Romaji)
	}
	return b.String()
}
