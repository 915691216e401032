package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by who has to act on them.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by the input text itself.
	// Examples: unrecognized characters, unterminated literals.
	// The user fixes these by editing the query.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategoryContract represents API misuse by a caller, such as reading
	// past the end of a token stream. A parser usually reports these as
	// "unexpected end of input".
	ErrCategoryContract

	// ErrCategorySystem represents environment failures.
	// Examples: missing files, permission issues, closed pipes.
	ErrCategorySystem
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategoryContract:
		return "contract"
	case ErrCategorySystem:
		return "system"
	default:
		return fmt.Sprintf("ErrorCategory(%d)", int(c))
	}
}

// DBError represents a structured error with rich context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "STREAM_EXHAUSTED", "READ_FAILED").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: "queries/report.sql:3:14".
	Detail string

	// Hint suggests how the caller might fix or work around this error.
	Hint string

	// Operation identifies the operation that was being performed when the error occurred.
	// Examples: "Peek", "Consume", "ReadFile".
	Operation string

	// Component identifies the component where the error originated.
	// Examples: "TokenStream", "Loader".
	Component string

	// Cause is the underlying error that triggered this error.
	Cause error

	// Stack contains the call stack where this error was created.
	// Used for debugging and is automatically captured in New() and Wrap().
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with operation and component context.
// If the error is already a DBError, it enriches the existing error
// (only fields not already set) instead of nesting it.
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// HasCode reports whether any DBError in err's chain carries code.
func HasCode(err error, code string) bool {
	var dbErr *DBError
	for errors.As(err, &dbErr) {
		if dbErr.Code == code {
			return true
		}
		err = dbErr.Cause
	}
	return false
}

// captureStack skips runtime.Callers, captureStack and New/Wrap so the first
// frame is the error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the error interface.
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)

	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}

	if e.Operation != "" {
		fmt.Fprintf(&b, " (operation: %s", e.Operation)
		if e.Component != "" {
			fmt.Fprintf(&b, ", component: %s", e.Component)
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, " caused by: %v", e.Cause)
	}

	return b.String()
}

// Unwrap returns the underlying cause, so errors.Is and errors.As see through
// a DBError.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "  %s\n    %s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}

	return b.String()
}
