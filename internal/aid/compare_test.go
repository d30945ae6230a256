package aid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAid builds an Aid without a default word list.
func newTestAid(t *testing.T, mutate ...func(*Config)) *Aid {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LoadDefaultWordList = false
	for _, m := range mutate {
		m(&cfg)
	}
	a, err := New(cfg, nil)
	require.NoError(t, err)
	return a
}

func TestCompare(t *testing.T) {
	a := newTestAid(t)

	cases := []struct {
		guess, target string
		want          string
	}{
		{"SLOSH", "SHUNT", "🟩⬛⬛⬛🟨"},
		{"CRANE", "CRANE", "🟩🟩🟩🟩🟩"},
		{"CRANE", "BOILS", "⬛⬛⬛⬛⬛"},
		{"EERIE", "SPELT", "🟨⬛⬛⬛⬛"},
		{"EERIE", "THEME", "🟨⬛⬛⬛🟩"},
		{"SPEED", "ABIDE", "⬛⬛🟨⬛🟨"},
		{"LLAMA", "HELLO", "🟨🟨⬛⬛⬛"},
		{"ROBOT", "FLOOR", "🟨🟨⬛🟩⬛"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.target, func(t *testing.T) {
			got, err := a.Compare(tc.guess, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Render(got))
		})
	}
}

func TestCompareSloshShunt(t *testing.T) {
	a := newTestAid(t)
	got, err := a.Compare("SLOSH", "SHUNT")
	require.NoError(t, err)
	assert.Equal(t, Feedback{TileHit, TileAbsent, TileAbsent, TileAbsent, TilePresent}, got)
}

func TestCompareSelfIsAllHit(t *testing.T) {
	a := newTestAid(t)
	for _, w := range []string{"SHUNT", "EERIE", "aaaaa", "SLOSH"} {
		got, err := a.Compare(w, w)
		require.NoError(t, err)
		assert.True(t, got.AllHit(), w)
	}
}

func TestCompareDisjointIsAllAbsent(t *testing.T) {
	a := newTestAid(t)
	got, err := a.Compare("CRANE", "PILOT")
	require.NoError(t, err)
	for _, tile := range got {
		assert.Equal(t, TileAbsent, tile)
	}
}

func TestCompareConservesLetters(t *testing.T) {
	a := newTestAid(t)
	words := []string{"SLOSH", "SHUNT", "EERIE", "SPEED", "ABIDE", "LLAMA", "HELLO", "GEESE", "EMCEE", "TEPEE"}
	for _, g := range words {
		for _, w := range words {
			fb, err := a.Compare(g, w)
			require.NoError(t, err)

			claimed := map[rune]int{}
			for i, r := range g {
				if fb[i] != TileAbsent {
					claimed[r]++
				}
			}
			for r, n := range claimed {
				assert.LessOrEqual(t, n, countRune(w, r), "%s vs %s letter %c", g, w, r)
			}
		}
	}
}

func TestCompareInvalidLength(t *testing.T) {
	a := newTestAid(t)

	_, err := a.Compare("AB", "ABCDE")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), `"AB"`)

	_, err = a.Compare("ABCDE", "ABCDEF")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompareConfiguredLength(t *testing.T) {
	a := newTestAid(t, func(c *Config) { c.WordLength = 6 })

	got, err := a.Compare("BANANA", "CABANA")
	require.NoError(t, err)
	assert.Equal(t, "🟨🟩⬛🟩🟩🟩", a.Render(got))

	_, err = a.Compare("SLOSH", "SHUNT")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompareCaseFolding(t *testing.T) {
	sensitive := newTestAid(t)
	got, err := sensitive.Compare("slosh", "SHUNT")
	require.NoError(t, err)
	assert.Equal(t, "⬛⬛⬛⬛⬛", sensitive.Render(got))

	folded := newTestAid(t, func(c *Config) { c.CaseInsensitive = true })
	got, err = folded.Compare("slosh", "SHUNT")
	require.NoError(t, err)
	assert.Equal(t, "🟩⬛⬛⬛🟨", folded.Render(got))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
