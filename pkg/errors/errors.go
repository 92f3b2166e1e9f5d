// Package errors provides structured error handling for driftstore.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoStore is the configuration error raised when a binding hook runs
// outside any store provider.
var ErrNoStore = errors.New("no store in scope")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a programmer error in how the library is wired,
	// such as a hook used outside a provider.
	KindConfig
	// KindTransition indicates a reducer fault during dispatch.
	KindTransition
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindScript indicates an invalid action script.
	KindScript
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransition:
		return "transition"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// StoreError represents a structured error raised by a store or its bindings.
type StoreError struct {
	// Op is the operation that failed (e.g., "store.Dispatch").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Store is the store name, if applicable.
	Store string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StoreError) Error() string {
	if e.Store != "" {
		return fmt.Sprintf("%s [%s] store=%s: %v", e.Op, e.Kind, e.Store, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "store.Dispatch").
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

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

// Unwrap returns Err, or the recovered value when the build panicked with
// an error, so errors.Is can see a configuration error raised mid-build.
func (e *BuildError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// ErrorHandler receives errors reported by driftstore.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
