// internal/aid/types.go
//
// Core type definitions for the Wordle aid.
// Defines:
//   - Tile: per-letter feedback for a guess (hit/present/absent).
//   - Feedback: an ordered tile sequence aligned with a guessed word.
//   - GuessRecord: a (guessed word, feedback) pair from a solving session.
//   - Rendering: how tiles are displayed (emoji blocks or ASCII letters).

package aid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tile represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "absent":  letter has no unclaimed occurrence left in the target.
type Tile string

const (
	TileHit     Tile = "hit"
	TilePresent Tile = "present"
	TileAbsent  Tile = "absent"
)

// Valid reports whether t is one of the three known tiles.
func (t Tile) Valid() bool {
	return t == TileHit || t == TilePresent || t == TileAbsent
}

// Feedback is the tile sequence produced for one guess.
// In JSON it is an array of tile names; a tilestring ("Y___?") is accepted on input.
type Feedback []Tile

// UnmarshalJSON accepts either ["hit","absent",...] or a tilestring.
func (f *Feedback) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		fb, err := ParseFeedback(s)
		if err != nil {
			return err
		}
		*f = fb
		return nil
	}
	var tiles []Tile
	if err := json.Unmarshal(data, &tiles); err != nil {
		return fmt.Errorf("%w: feedback must be a tilestring or an array of tiles", ErrInvalidInput)
	}
	*f = tiles
	return nil
}

// AllHit reports true if every tile is a hit.
func (f Feedback) AllHit() bool {
	for _, t := range f {
		if t != TileHit {
			return false
		}
	}
	return len(f) > 0
}

// GuessRecord pairs a guessed word with the feedback it received.
type GuessRecord struct {
	Word     string   `json:"word"`
	Feedback Feedback `json:"feedback"`
}

// Rendering selects the display form of tiles.
type Rendering string

const (
	RenderBlocks Rendering = "blocks"
	RenderAlpha  Rendering = "alpha"
)

// ParseRendering accepts "blocks" or "alpha" in any letter case.
func ParseRendering(s string) (Rendering, error) {
	switch r := Rendering(strings.ToLower(strings.TrimSpace(s))); r {
	case RenderBlocks, RenderAlpha:
		return r, nil
	}
	return "", fmt.Errorf("%w: rendering must be either 'alpha' or 'blocks', got %q", ErrInvalidInput, s)
}

// symbol returns the display string of t under r.
func (r Rendering) symbol(t Tile) string {
	if r == RenderAlpha {
		switch t {
		case TileHit:
			return "Y"
		case TilePresent:
			return "?"
		default:
			return "_"
		}
	}
	switch t {
	case TileHit:
		return "🟩"
	case TilePresent:
		return "🟨"
	default:
		return "⬛"
	}
}

// Render joins the display symbols of f.
func (r Rendering) Render(f Feedback) string {
	var b strings.Builder
	for _, t := range f {
		b.WriteString(r.symbol(t))
	}
	return b.String()
}

// tileSymbols lists every accepted input symbol, in both renderings.
// White squares are read as absent too (light-mode screenshots).
var tileSymbols = map[rune]Tile{
	'Y': TileHit,
	'🟩': TileHit,
	'?': TilePresent,
	'🟨': TilePresent,
	'_': TileAbsent,
	'⬛': TileAbsent,
	'⬜': TileAbsent,
}

// ParseFeedback reads a tilestring such as "Y___?" or "🟩⬛⬛⬛🟨".
// Both renderings may be mixed. Length is not checked here.
func ParseFeedback(s string) (Feedback, error) {
	s = strings.TrimSpace(s)
	out := make(Feedback, 0, len(s))
	for _, r := range s {
		t, ok := tileSymbols[r]
		if !ok {
			return nil, fmt.Errorf("%w: unknown tile symbol %q in %q", ErrInvalidInput, r, s)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseRecord reads "WORD=TILES", e.g. "SLOSH=Y___?".
func ParseRecord(s string) (GuessRecord, error) {
	word, tiles, ok := strings.Cut(s, "=")
	if !ok {
		return GuessRecord{}, fmt.Errorf("%w: record %q must look like WORD=TILES", ErrInvalidInput, s)
	}
	fb, err := ParseFeedback(tiles)
	if err != nil {
		return GuessRecord{}, err
	}
	return GuessRecord{Word: strings.TrimSpace(word), Feedback: fb}, nil
}
