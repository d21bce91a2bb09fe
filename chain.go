package errreport

import (
	"errors"
	"iter"
)

// Chain returns an iterator over err and its chain of causes, outermost
// first. Each step follows errors.Unwrap, so the walk stops at the first
// error without an Unwrap() error method. A nil err yields nothing.
//
// Errors that wrap multiple causes via Unwrap() []error (such as those
// built with errors.Join) terminate the chain: they are yielded themselves,
// but their branches are not followed, because the chain is a single
// predecessor line rather than a tree.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for e := err; e != nil; e = errors.Unwrap(e) {
			if !yield(e) {
				return
			}
		}
	}
}
