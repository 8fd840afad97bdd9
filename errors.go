package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind tells whether an error aborted a computation or only dropped part of it.
type ErrorKind int

const (
	// Skipped errors are recoverable: the symbol is dropped and the computation continues.
	Skipped ErrorKind = iota
	// Fatal errors abort the computation.
	Fatal
)

func (k ErrorKind) String() string {
	if k == Fatal {
		return "fatal"
	}
	return "skipped"
}

// Error is the error type returned by the calculator.
type Error struct {
	Kind   ErrorKind
	Symbol string // empty when the error is not about a single symbol
	Op     string // the operation that failed, e.g. "history"
	Err    error
}

func (e *Error) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Symbol, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Skip returns a recoverable error for symbol.
func Skip(op, symbol string, err error) *Error {
	return &Error{Kind: Skipped, Symbol: symbol, Op: op, Err: err}
}

// Fatalf returns a fatal error for symbol, formatting its cause.
func Fatalf(op, symbol string, format string, args ...any) *Error {
	return &Error{Kind: Fatal, Symbol: symbol, Op: op, Err: fmt.Errorf(format, args...)}
}

// IsFatal reports whether err must abort a computation.
//
// Any error that is not a *Error is fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == Fatal
	}
	return true
}

// MarshalJSON reports an error as its kind, symbol, operation and message.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string `json:"kind"`
		Symbol string `json:"symbol,omitempty"`
		Op     string `json:"op"`
		Error  string `json:"error"`
	}{e.Kind.String(), e.Symbol, e.Op, e.Err.Error()})
}
