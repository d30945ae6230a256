// internal/aid/compare.go
//
// Comparator: scores a guess against a target using the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as hits.
//   - Count the remaining (non-hit) target letters.
//
// Pass 2:
//   - For each non-hit guess letter, left to right: if an unclaimed occurrence
//     remains, mark it present and decrement the count; otherwise mark it absent.
//
// Each target occurrence satisfies at most one guess position, so
// SLOSH vs SHUNT yields 🟩⬛⬛⬛🟨 and not 🟩⬛⬛🟨🟨.

package aid

// Compare returns the feedback guess receives against target.
func (a *Aid) Compare(guess, target string) (Feedback, error) {
	g, err := a.letters(guess, "guess")
	if err != nil {
		return nil, err
	}
	t, err := a.letters(target, "target")
	if err != nil {
		return nil, err
	}
	return score(g, t), nil
}

// score assumes len(g) == len(t).
func score(g, t []rune) Feedback {
	n := len(g)
	res := make(Feedback, n)
	remaining := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			res[i] = TileHit
		} else {
			remaining[t[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == TileHit {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = TilePresent
			remaining[g[i]]--
		} else {
			res[i] = TileAbsent
		}
	}
	return res
}
