package determinant

import (
	"fmt"
	"strings"
)

// Trace is an append-only log of narration lines. Lines are never reordered
// or removed once appended. The zero value is an empty trace ready to use.
//
// Recursive strategies return a Trace alongside their value and the caller
// merges it with Extend, so no trace state is shared between calls.
type Trace struct {
	lines []string
}

// Append adds one line.
func (t *Trace) Append(line string) {
	t.lines = append(t.lines, line)
}

// Appendf adds one fmt-formatted line.
func (t *Trace) Appendf(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Blank adds an empty separator line.
func (t *Trace) Blank() {
	t.lines = append(t.lines, "")
}

// Extend appends all lines of other after the current ones.
func (t *Trace) Extend(other Trace) {
	t.lines = append(t.lines, other.lines...)
}

// Len returns the number of lines.
func (t Trace) Len() int { return len(t.lines) }

// Lines returns a copy of the lines; never nil.
func (t Trace) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)

	return out
}

// String joins the lines with newlines.
func (t Trace) String() string {
	return strings.Join(t.lines, "\n")
}
