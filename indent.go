package errreport

import (
	"bytes"
	"io"
)

// indentPrefix replaces every newline that flows through an indentWriter.
// Six spaces keeps continuation lines aligned with the "   N: " and
// six-space cause prefixes used by the pretty rendering.
var indentPrefix = []byte("\n      ")

// indentWriter is an io.Writer adapter that re-indents the text passing
// through it: every newline is forwarded with six spaces appended, so a
// cause message spanning several lines stays nested under its own first
// line instead of resetting to column zero.
//
// The adapter works per write call and keeps no state between calls, which
// is enough because a newline belongs to exactly one write: whichever call
// carries it gets the prefix inserted immediately after it.
type indentWriter struct {
	w io.Writer
}

// Write forwards p to the underlying writer, inserting indentPrefix in
// place of each newline. The returned count covers the bytes of p that were
// consumed, not the inserted indentation, keeping the io.Writer contract.
// A failure from the underlying writer aborts the remaining segments.
func (iw *indentWriter) Write(p []byte) (int, error) {
	var written int
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		if _, err := iw.w.Write(p[:i]); err != nil {
			return written, err
		}
		written += i
		if _, err := iw.w.Write(indentPrefix); err != nil {
			return written, err
		}
		written++ // the newline itself
		p = p[i+1:]
	}
	if len(p) > 0 {
		n, err := iw.w.Write(p)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
