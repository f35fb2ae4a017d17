package parser

import "fmt"

// ChartFormatError reports a malformed or truncated chart. Loading never
// partially succeeds when one is returned.
type ChartFormatError struct {
	Line   int    // 1 based line number
	Text   string // The offending line
	Reason string
	Err    error // Underlying conversion error, if any
}

func (e *ChartFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart line %d %q: %s: %v", e.Line, e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("chart line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *ChartFormatError) Unwrap() error {
	return e.Err
}
