package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PlatformError is the interface implemented by every structured error in this module.
// Use As to extract it from a wrapped chain:
//
//	var perr errors.PlatformError
//	if errors.As(err, &perr) {
//	    switch perr.Code() { ... }
//	}
type PlatformError interface {
	error

	// Code returns the error code classifying this failure.
	Code() ErrorCode

	// Message returns the human-readable message without the wrapped cause.
	Message() string

	// Context returns a copy of the key/value pairs attached to the error.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

type platformError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

var _ PlatformError = (*platformError)(nil)

// Error implements the error interface.
// The format is "CODE: message [k=v ...]: cause".
func (e *platformError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.code))
	b.WriteString(": ")
	b.WriteString(e.message)

	if len(e.context) > 0 {
		b.WriteString(" [")
		for i, k := range slices.Sorted(maps.Keys(e.context)) {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.context[k])
		}
		b.WriteString("]")
	}

	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

func (e *platformError) Code() ErrorCode { return e.code }

func (e *platformError) Message() string { return e.message }

func (e *platformError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

func (e *platformError) Unwrap() error { return e.cause }

// Is reports whether target is a PlatformError carrying the same code and message.
// This lets package-level sentinel errors match freshly built errors of the same kind.
func (e *platformError) Is(target error) bool {
	t, ok := target.(*platformError)
	if !ok {
		return false
	}
	return t.code == e.code && t.message == e.message
}

// New creates a PlatformError with the given code and message.
func New(code ErrorCode, message string) PlatformError {
	return &platformError{code: code, message: message}
}

// Newf creates a PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return &platformError{code: code, message: fmt.Sprintf(format, args...)}
}

// NewWithContext creates a PlatformError carrying additional context.
func NewWithContext(code ErrorCode, message string, context map[string]interface{}) PlatformError {
	return &platformError{code: code, message: message, context: maps.Clone(context)}
}

// Wrap wraps err with a code and message. It returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &platformError{code: code, message: message, cause: err}
}

// Wrapf wraps err with a code and a formatted message. It returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &platformError{code: code, message: fmt.Sprintf(format, args...), cause: err}
}

// WrapWithContext wraps err with a code, message and context. It returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &platformError{
		code:    code,
		message: message,
		context: maps.Clone(context),
		cause:   err,
	}
}

// GetCode returns the code of the outermost PlatformError in err's chain.
// It returns CodeUnknown for a non-nil error without one and "" for nil.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var perr PlatformError
	if As(err, &perr) {
		return perr.Code()
	}
	return CodeUnknown
}

// HasCode reports whether any PlatformError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if perr, ok := err.(PlatformError); ok && perr.Code() == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Is reports whether any error in err's chain matches target. See errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target. See errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
