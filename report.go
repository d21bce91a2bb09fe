package errreport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Report renders one error and its chain of causes. The zero display mode
// joins everything on a single line; Pretty(true) switches to a multi-line
// block with one cause per line.
//
// Rendering is a pure function of the wrapped error and the display mode:
// it never mutates the Report, so the same Report can be rendered any
// number of times with identical output. Pretty is the only mutating
// method and must not race with rendering.
type Report struct {
	// err is the root error being reported.
	err error
	// pretty selects the multi-line rendering.
	pretty bool
}

// New wraps err in a Report configured for single-line output.
//
// The Report holds err for its whole lifetime; a nil err renders as the
// empty string in both modes.
func New(err error) *Report {
	return &Report{err: err}
}

// From wraps err in a Report configured for single-line output.
// It is identical to New and exists for call sites that read better as a
// conversion than as a construction.
func From(err error) *Report {
	return New(err)
}

// Pretty switches between the single-line and multi-line renderings and
// returns the receiver so construction and configuration chain:
//
//	r := errreport.New(err).Pretty(true)
//
// Pretty mutates the receiver in place. Callers must use the returned
// Report and must not rely on an earlier binding still holding the
// previous mode.
func (r *Report) Pretty(pretty bool) *Report {
	r.pretty = pretty
	return r
}

// Render writes the report to w in the configured mode. The only possible
// failure is a write error from w itself, returned unmodified the moment
// it occurs; bytes already written stay written and no further writes are
// attempted.
func (r *Report) Render(w io.Writer) error {
	if r.pretty {
		return r.renderMultiline(w)
	}
	return r.renderSingleline(w)
}

// String renders the report into memory. It satisfies fmt.Stringer and
// cannot fail.
func (r *Report) String() string {
	var sb strings.Builder
	_ = r.Render(&sb) // strings.Builder writes never fail
	return sb.String()
}

// Format satisfies fmt.Formatter. Every verb produces the same bytes as
// Render, so %v, %+v, %#v, %s and %q all print the configured rendering
// and no verb can reach a generic dump of the struct's fields. This keeps
// code paths that print errors through %v and code paths that debug-print
// them through %#v byte-identical.
func (r *Report) Format(f fmt.State, verb rune) {
	_ = r.Render(f) // fmt.State buffers in memory and does not fail
}

// LogValue satisfies slog.LogValuer: a Report logged as a slog attribute
// records the rendered text in the configured mode.
func (r *Report) LogValue() slog.Value {
	return slog.StringValue(r.String())
}

// renderSingleline emits the root message and every cause message joined
// by ": ", with no trailing separator and no newline.
func (r *Report) renderSingleline(w io.Writer) error {
	if r.err == nil {
		return nil
	}
	if _, err := io.WriteString(w, r.err.Error()); err != nil {
		return err
	}
	for cause := range Chain(errors.Unwrap(r.err)) {
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if _, err := io.WriteString(w, cause.Error()); err != nil {
			return err
		}
	}
	return nil
}

// renderMultiline emits the root message, then each cause on its own line
// under a "Caused by:" header. When the chain holds two or more causes,
// each line carries the cause's zero-based index right-aligned in a
// four-character field; a sole cause gets six spaces instead, which keeps
// it aligned with the indexed form. Newlines inside a cause's own message
// are re-indented by six spaces through an indentWriter.
func (r *Report) renderMultiline(w io.Writer) error {
	if r.err == nil {
		return nil
	}
	if _, err := io.WriteString(w, r.err.Error()); err != nil {
		return err
	}

	first := errors.Unwrap(r.err)
	if first == nil {
		return nil
	}
	if _, err := io.WriteString(w, "\n\nCaused by:"); err != nil {
		return err
	}

	multiple := errors.Unwrap(first) != nil
	indented := &indentWriter{w: w}
	index := 0
	for cause := range Chain(first) {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if multiple {
			if _, err := fmt.Fprintf(w, "%4d: ", index); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "      "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(indented, cause.Error()); err != nil {
			return err
		}
		index++
	}
	return nil
}
