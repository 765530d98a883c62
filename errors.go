package dotenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two parse failure classes. Match with errors.Is.
var (
	// ErrMalformed indicates a non-blank, non-comment line that is not a
	// variable declaration of the form [export ]KEY=VALUE.
	ErrMalformed = errors.New("malformed variable declaration")

	// ErrUnterminatedQuote indicates a quoted value missing its closing quote.
	ErrUnterminatedQuote = errors.New("missing quote to end the value")
)

// ParseError reports a syntax error at a specific line of an env file.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

func malformedError(line int, reason string) *ParseError {
	return &ParseError{Line: line, Reason: reason, Err: ErrMalformed}
}

func unterminatedError(line int) *ParseError {
	return &ParseError{Line: line, Reason: "missing quote to end the value", Err: ErrUnterminatedQuote}
}

// LoadError wraps a parse or I/O failure with the path of the file that caused it.
// A file that does not exist is never a LoadError; missing overlay files are skipped.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ApplyError reports a platform failure setting an environment variable.
// Variables applied before the failure remain set.
type ApplyError struct {
	Key string
	Err error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("setting %s: %v", e.Key, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }
