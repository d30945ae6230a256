// internal/words/words.go
//
// Word list provider for the aid.
//
// Responsibilities:
//   - Read a newline-delimited word list by resource name.
//   - Fall back to the embedded accepted_words.txt when the default list is not on disk.
//   - Keep only words of the configured length; optionally lowercase them.
//
// Lines are trimmed; blank lines and lines starting with '#' are skipped.
// Everything else is handed to the caller as given, so the caller decides
// whether comparisons are case-sensitive.

package words

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordleaid/assets"
)

var (
	// ErrWordListNotFound is returned when a named list does not exist.
	ErrWordListNotFound = errors.New("words: word list not found")
	// ErrEmptyWordList is returned when a list holds no usable words.
	ErrEmptyWordList = errors.New("words: word list is empty")
)

// Loader reads word lists from disk.
type Loader struct {
	Dir       string // base directory for relative names; empty means the working directory
	Length    int    // keep only words of this many letters; 0 keeps everything
	Lowercase bool
}

// NewLoader returns a Loader keeping words of length letters.
func NewLoader(length int) *Loader {
	return &Loader{Length: length}
}

// Load reads the list called name.
func (l *Loader) Load(name string) ([]string, error) {
	raw, source, err := l.read(name)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	skipped := 0
	for _, w := range raw {
		if l.Lowercase {
			w = strings.ToLower(w)
		}
		if l.Length > 0 && utf8.RuneCountInString(w) != l.Length {
			skipped++
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWordList, source)
	}

	log.Debug().Str("source", source).Int("words", len(out)).Int("skipped", skipped).Msg("word list loaded")
	return out, nil
}

// read returns the raw lines of name and a description of where they came from.
func (l *Loader) read(name string) ([]string, string, error) {
	path := name
	if l.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		lines, err := assets.ReadLines(f)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
		return lines, path, nil

	case errors.Is(err, fs.ErrNotExist) && filepath.Base(name) == assets.AcceptedWordsFile:
		lines, err := assets.AcceptedWords()
		if err != nil {
			return nil, "", fmt.Errorf("read embedded %s: %w", assets.AcceptedWordsFile, err)
		}
		return lines, "embedded:" + assets.AcceptedWordsFile, nil

	case errors.Is(err, fs.ErrNotExist):
		return nil, "", fmt.Errorf("%w: %s", ErrWordListNotFound, path)

	default:
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
}
