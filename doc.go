// Package errreport renders an error together with its full chain of
// underlying causes, either on a single line or as an indented multi-line
// block.
//
// The chain is the sequence obtained by starting at an error and repeatedly
// calling errors.Unwrap until it returns nil. A Report wraps one such root
// error plus a single display-mode flag and turns the whole chain into text;
// it never captures stack traces and never validates or rewrites the
// messages it is given.
//
// # Single-line output
//
// By default a Report joins the root error and every cause with ": ":
//
//	err := fmt.Errorf("scan target: %w", errors.New("connection refused"))
//	fmt.Println(errreport.New(err))
//	// scan target: connection refused: connection refused
//
// Note that Go errors built with fmt.Errorf("...: %w", err) already embed
// the cause text in their own message, so the joined form repeats it. The
// Report prints each error's message verbatim; errors that report only their
// own context (as the types in the examples do) produce the cleanest output.
//
// # Multi-line output
//
// Pretty(true) switches to a block form with every cause on its own line
// under a "Caused by:" header. Causes are numbered only when there is more
// than one. For a chain sync -> dial -> connection refused:
//
//	fmt.Println(errreport.New(err).Pretty(true))
//	// sync failed
//	//
//	// Caused by:
//	//    0: dial failed
//	//    1: connection refused
//
// A newline inside a single cause's message does not reset the layout: the
// continuation lines are re-indented by six spaces so the cause stays
// visually nested.
//
// # Display and debug parity
//
// Report implements fmt.Formatter, and every verb produces the same bytes,
// so %v, %+v, %#v, %s and %q all print the configured rendering rather than
// a dump of the struct's fields. Report also implements slog.LogValuer, so
// logging a Report through log/slog records the rendered text.
package errreport
