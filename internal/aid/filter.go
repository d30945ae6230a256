// internal/aid/filter.go
//
// Candidate filter: keeps the pool words still consistent with every guess record.
//
// Step 1 collects the green map (position → letter) from every hit in the history.
// Step 2 checks each candidate c against each record (word g, feedback f):
//   - hit at i     ⇒ c[i] == g[i]
//   - present at i ⇒ c[i] != g[i], and c holds g[i] at least as many times as the
//                    record has hit+present tiles for that letter
//   - absent at i  ⇒ c[i] != g[i], and c holds g[i] outside its green positions no
//                    more often than the record has present tiles for that letter
//
// With no present tile of the letter the absent rule reads "the letter may only sit
// on its green squares", and with no green square either "the letter is not in c".
// Counting the present tiles keeps e.g. SPELT alive for EERIE=?____, where the one
// E in the answer is reported once as present and then as absent.
//
// Candidates are independent, so large pools are split across goroutines and the
// results re-joined in pool order.

package aid

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// record is a GuessRecord prepared for repeated checks.
type record struct {
	word     []rune
	feedback Feedback
	hits     map[rune]int
	presents map[rune]int
}

type filter struct {
	records []record
	green   map[int]rune
}

// FindCandidates returns the words of pool consistent with every record in history,
// in pool order. A nil pool selects the default word list.
func (a *Aid) FindCandidates(history []GuessRecord, pool []string) ([]string, error) {
	if pool == nil {
		if a.pool == nil {
			return nil, ErrNoWordList
		}
		pool = a.pool
	}

	f, err := a.compile(history)
	if err != nil {
		return nil, err
	}

	keep := make([]bool, len(pool))
	if len(pool) < ParallelThreshold || a.workers == 1 {
		if err := a.scan(f, pool, keep); err != nil {
			return nil, err
		}
	} else {
		chunk := (len(pool) + a.workers - 1) / a.workers
		var eg errgroup.Group
		for lo := 0; lo < len(pool); lo += chunk {
			lo := lo
			hi := min(lo+chunk, len(pool))
			eg.Go(func() error {
				return a.scan(f, pool[lo:hi], keep[lo:hi])
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(pool))
	for i, ok := range keep {
		if ok {
			out = append(out, pool[i])
		}
	}
	return out, nil
}

// compile validates history and derives the green map.
func (a *Aid) compile(history []GuessRecord) (*filter, error) {
	f := &filter{
		records: make([]record, 0, len(history)),
		green:   make(map[int]rune, a.length),
	}
	for _, h := range history {
		word, err := a.letters(h.Word, "guessed word")
		if err != nil {
			return nil, err
		}
		if len(h.Feedback) != a.length {
			return nil, fmt.Errorf("%w: feedback for %q must have %d tiles, got %d",
				ErrInvalidInput, h.Word, a.length, len(h.Feedback))
		}
		r := record{
			word:     word,
			feedback: h.Feedback,
			hits:     make(map[rune]int),
			presents: make(map[rune]int),
		}
		for i, t := range h.Feedback {
			switch t {
			case TileHit:
				r.hits[word[i]]++
				f.green[i] = word[i]
			case TilePresent:
				r.presents[word[i]]++
			case TileAbsent:
			default:
				return nil, fmt.Errorf("%w: unknown tile %q in feedback for %q", ErrInvalidInput, t, h.Word)
			}
		}
		f.records = append(f.records, r)
	}
	return f, nil
}

// scan marks keep[i] for every consistent words[i].
func (a *Aid) scan(f *filter, words []string, keep []bool) error {
	for i, w := range words {
		c, err := a.letters(w, "candidate")
		if err != nil {
			return err
		}
		keep[i] = f.admits(c)
	}
	return nil
}

func (f *filter) admits(c []rune) bool {
	counts := make(map[rune]int, len(c))
	for _, r := range c {
		counts[r]++
	}

	for _, r := range f.records {
		for i, t := range r.feedback {
			x := r.word[i]
			switch t {
			case TileHit:
				if c[i] != x {
					return false
				}
			case TilePresent:
				if c[i] == x || counts[x] < r.hits[x]+r.presents[x] {
					return false
				}
			case TileAbsent:
				if c[i] == x || f.offGreen(c, x) > r.presents[x] {
					return false
				}
			}
		}
	}
	return true
}

// offGreen counts the occurrences of x in c that are not on a green square for x.
func (f *filter) offGreen(c []rune, x rune) int {
	n := 0
	for p, r := range c {
		if r != x {
			continue
		}
		if g, ok := f.green[p]; ok && g == x {
			continue
		}
		n++
	}
	return n
}
