// internal/aid/aid.go
//
// Construction of the Wordle aid.
// Responsibilities:
//   - Validate the immutable configuration (rendering, word length, workers).
//   - Optionally load the default word list through a WordSource.
//   - Hold the read-only state shared by Compare and FindCandidates.
//
// An *Aid is never mutated after New returns; it is safe for concurrent use.

package aid

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidInput is returned for words or feedback of the wrong length,
// unknown tiles and unrecognised configuration values.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoWordList is returned when the default pool is requested but none was loaded.
var ErrNoWordList = errors.New("no word list loaded")

const (
	// DefaultWordLength matches the classic game.
	DefaultWordLength = 5
	// DefaultWordListName is the resource read when LoadDefaultWordList is set.
	DefaultWordListName = "accepted_words.txt"
	// ParallelThreshold is the pool size from which filtering fans out to workers.
	ParallelThreshold = 2048
)

// Config is the construction-time configuration of an Aid.
type Config struct {
	Rendering           Rendering
	WordLength          int
	LoadDefaultWordList bool
	WordListName        string
	CaseInsensitive     bool
	Workers             int
}

// DefaultConfig is emoji blocks, 5 letters,
// case-sensitive, default word list loaded eagerly.
func DefaultConfig() Config {
	return Config{
		Rendering:           RenderBlocks,
		WordLength:          DefaultWordLength,
		LoadDefaultWordList: true,
		WordListName:        DefaultWordListName,
		Workers:             runtime.GOMAXPROCS(0),
	}
}

// WordSource supplies word lists by resource name.
type WordSource interface {
	Load(name string) ([]string, error)
}

// Aid compares words and filters candidate pools.
type Aid struct {
	rendering Rendering
	length    int
	fold      bool
	workers   int
	pool      []string
}

// New validates cfg and builds an Aid. src is only consulted when
// cfg.LoadDefaultWordList is set; it may be nil otherwise.
func New(cfg Config, src WordSource) (*Aid, error) {
	rendering, err := ParseRendering(string(cfg.Rendering))
	if err != nil {
		return nil, err
	}
	if cfg.WordLength <= 0 {
		return nil, fmt.Errorf("%w: word length must be positive, got %d", ErrInvalidInput, cfg.WordLength)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	a := &Aid{
		rendering: rendering,
		length:    cfg.WordLength,
		fold:      cfg.CaseInsensitive,
		workers:   workers,
	}

	if cfg.LoadDefaultWordList {
		if src == nil {
			return nil, fmt.Errorf("load default word list: %w", ErrNoWordList)
		}
		name := cfg.WordListName
		if name == "" {
			name = DefaultWordListName
		}
		pool, err := src.Load(name)
		if err != nil {
			return nil, fmt.Errorf("load word list %s: %w", name, err)
		}
		a.pool = pool
	}
	return a, nil
}

// WithWordList returns a copy of a whose default pool is words.
func (a *Aid) WithWordList(words []string) *Aid {
	cp := *a
	cp.pool = append([]string(nil), words...)
	return &cp
}

// WordLength reports the configured word length.
func (a *Aid) WordLength() int { return a.length }

// Rendering reports the configured tile rendering.
func (a *Aid) Rendering() Rendering { return a.rendering }

// Words returns the default pool. Callers must not modify it.
func (a *Aid) Words() []string { return a.pool }

// Render displays f with the configured rendering.
func (a *Aid) Render(f Feedback) string { return a.rendering.Render(f) }

// letters splits w into runes, folding case when configured, and checks its length.
func (a *Aid) letters(w, what string) ([]rune, error) {
	if n := utf8.RuneCountInString(w); n != a.length {
		return nil, fmt.Errorf("%w: %s %q must be %d letters, got %d", ErrInvalidInput, what, w, a.length, n)
	}
	if a.fold {
		w = strings.Map(unicode.ToLower, w)
	}
	return []rune(w), nil
}
