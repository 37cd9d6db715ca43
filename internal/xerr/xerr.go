// Package xerr defines the error taxonomy of the core and the display
// conventions around it: a sentinel error, a Wrapf-style call-site
// wrapper built on golang.org/x/xerrors, and a FormatError entry point
// for colored output. The demonstration command prints its errors
// through internal/literal.FormatError, not this one.
package xerr

import (
	"github.com/fatih/color"
	"golang.org/x/xerrors"
)

// ErrUndefinedTuple is raised by Store.Out and Space.TupleOut when the
// caller attempts to insert a tuple containing Any.
var ErrUndefinedTuple = xerrors.New("tuplespace: undefined tuple")

// UndefinedTuple wraps ErrUndefinedTuple with the offending tuple's
// display form.
func UndefinedTuple(display string) error {
	return xerrors.Errorf("%w: %s", ErrUndefinedTuple, display)
}

// FormatError renders err for display, optionally colorizing it.
// A failed delivery handoff inside Space is resolved internally and
// never reaches this taxonomy; see Space.TupleOut.
func FormatError(err error, colored bool) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !colored {
		return msg
	}
	return color.New(color.FgHiRed).Sprint(msg)
}
