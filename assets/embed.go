// assets/embed.go
//
// Embedded copy of the accepted-answers word list, used when no
// accepted_words.txt exists on disk.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

// AcceptedWordsFile is the embedded default list name.
const AcceptedWordsFile = "accepted_words.txt"

//go:embed accepted_words.txt
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AcceptedWords returns the embedded default list.
func AcceptedWords() ([]string, error) {
	f, err := FS.Open(AcceptedWordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
