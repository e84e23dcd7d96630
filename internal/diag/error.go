// Package diag defines the error taxonomy shared by the scanner, the
// conditional filter, the parser and the code base.
//
// Every failure is a *Error carrying a Code and the Location where it was
// detected. The first error met while processing a file aborts that file;
// there is no error recovery inside a file.
package diag

import (
	"errors"
	"fmt"

	"dgrok/internal/source"
)

// Error is a located failure with a stable code.
type Error struct {
	Code Code
	Loc  source.Location
	Msg  string
	// Err is the underlying cause, e.g. an *fs.PathError for IOLoadFile.
	Err error
}

// New builds an *Error with a formatted message.
func New(code Code, loc source.Location, format string, args ...any) *Error {
	return &Error{Code: code, Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error around cause; the message is the cause's text.
func Wrap(code Code, loc source.Location, cause error) *Error {
	return &Error{Code: code, Loc: loc, Msg: cause.Error(), Err: cause}
}

func (e *Error) Error() string {
	if !e.Loc.IsValid() {
		return e.Msg
	}
	return e.Loc.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the code of the first *Error in err's chain, or UnknownCode.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// LocationOf returns the location of the first *Error in err's chain.
func LocationOf(err error) (source.Location, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Loc, de.Loc.IsValid()
	}
	return source.Location{}, false
}

// Category groups codes the way callers usually branch on them.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryLex
	CategoryParse
	CategoryDirective
	CategoryIO
	CategoryDuplicate
)

func (c Category) String() string {
	switch c {
	case CategoryLex:
		return "lex"
	case CategoryParse:
		return "parse"
	case CategoryDirective:
		return "directive"
	case CategoryIO:
		return "io"
	case CategoryDuplicate:
		return "duplicate"
	}
	return "unknown"
}

// Category returns the group a code belongs to.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CategoryLex
	case ic >= 2000 && ic < 3000:
		return CategoryParse
	case ic >= 3000 && ic < 4000:
		return CategoryDirective
	case ic >= 4000 && ic < 5000:
		return CategoryIO
	case ic >= 5000 && ic < 6000:
		return CategoryDuplicate
	}
	return CategoryUnknown
}
