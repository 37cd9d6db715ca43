package literal

import (
	"fmt"

	"github.com/fatih/color"
	"golang.org/x/xerrors"
)

// ErrSyntax is the sentinel all parse failures wrap, in the style of
// internal/xerr's taxonomy.
var ErrSyntax = xerrors.New("literal: syntax error")

// SyntaxError carries the byte offset of the failure alongside the
// message, mirroring the positional metadata yomlette's parser attaches
// to its errors (see parser/error.go's PrettyPrinter) without pulling
// in a source-snippet pretty-printer this grammar is too small to need.
type SyntaxError struct {
	Pos int
	msg string
}

func newSyntaxError(pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, msg: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrSyntax, e.Pos, e.msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// FormatError renders err for display, coloring the whole message red
// when colored is requested. It accepts any error, not only a
// *SyntaxError; cmd/tsrepl prints all of its errors through it. It
// mirrors the signature shape of parser.FormatError.
func FormatError(err error, colored bool) string {
	if err == nil {
		return ""
	}
	if !colored {
		return err.Error()
	}
	return color.New(color.FgHiRed).Sprint(err.Error())
}
