// Package errors provides structured error handling for the surreal toolkit.
//
// Contract violations inside the view tree (duplicate state keys, wrong
// downcasts, out-of-range style values) are programmer errors. They are
// returned as *SurrealError from the checked APIs and raised through Fatal by
// the Must* convenience wrappers. Speculative structural edits (deleting an id
// that may not exist) return ErrNotFound and are never fatal.
package errors

import (
	"fmt"
	"time"
)

import stderrors "errors"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindState indicates a shared state store failure.
	KindState
	// KindLookup indicates a failed widget lookup or downcast.
	KindLookup
	// KindTree indicates a structural view tree error.
	KindTree
	// KindStyle indicates an invalid style or theme value.
	KindStyle
	// KindInit indicates a widget or resource initialization error.
	KindInit
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindLookup:
		return "lookup"
	case KindTree:
		return "tree"
	case KindStyle:
		return "style"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by SurrealError. Match them with errors.Is.
var (
	ErrDuplicateKey = stderrors.New("state key already exists")
	ErrMissingKey   = stderrors.New("no such state key")
	ErrTypeMismatch = stderrors.New("type mismatch")
	ErrBorrowed     = stderrors.New("state is already borrowed")
	ErrNotFound     = stderrors.New("not found")
	ErrDuplicateID  = stderrors.New("duplicate widget id")
	ErrOutOfRange   = stderrors.New("value out of range")
)

// SurrealError represents a structured error in the surreal toolkit.
type SurrealError struct {
	// Op is the operation that failed (e.g., "state.Get").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// ID is the state key or widget id involved, if any.
	ID string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SurrealError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s] id=%s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SurrealError) Unwrap() error {
	return e.Err
}

// New builds a SurrealError. It is a shorthand for the struct literal used at
// most call sites.
func New(op string, kind ErrorKind, id string, err error) *SurrealError {
	return &SurrealError{Op: op, Kind: kind, ID: id, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// TypeError describes a failed downcast of a state value or widget.
type TypeError struct {
	// ID is the state key or widget id.
	ID string
	// Want is the requested type name.
	Want string
	// Got is the stored type name.
	Got string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s holds %s, not %s", e.ID, e.Got, e.Want)
}

// Is reports ErrTypeMismatch so callers need not know about TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *SurrealError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is and As forward to the standard library so callers can import a single
// errors package.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As forwards to the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }
