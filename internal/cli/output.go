package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) error {
	switch o.format {
	case "json":
		return o.printJSON(data)
	case "", "text":
		return o.printText(data)
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", o.format)
	}
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) printText(data any) error {
	switch v := data.(type) {
	case CompareResult:
		return o.printCompare(v)
	case CandidatesResult:
		return o.printCandidates(v)
	default:
		// Fallback to JSON for unknown types
		return o.printJSON(data)
	}
}

func (o *Output) printCompare(c CompareResult) error {
	_, err := fmt.Fprintf(o.w, "%s %s\n", c.Guess, c.Tiles)
	return err
}

func (o *Output) printCandidates(c CandidatesResult) error {
	for _, w := range c.Candidates {
		if _, err := fmt.Fprintln(o.w, w); err != nil {
			return err
		}
	}
	if c.Truncated {
		_, err := fmt.Fprintf(o.w, "... %d more (%d candidates)\n", c.Count-len(c.Candidates), c.Count)
		return err
	}
	return nil
}
