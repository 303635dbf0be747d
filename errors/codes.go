// Package errors provides the error handling system for the Open Space Toolkit physics library.
// It extends Go's standard error handling with structured error codes and context
// preservation, so callers can branch on what went wrong without matching messages.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Value errors.

	// CodeInvalidArgument indicates a constructor or factory received a value outside
	// its valid range, such as a month of 13 or February 30th.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeParseFailed indicates a string did not match any of the attempted formats.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// CodeUndefined indicates an operation that needs a concrete value was called on
	// an undefined instance.
	CodeUndefined ErrorCode = "UNDEFINED"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Configuration loading errors.

	// CodeCUELoadFailed indicates a CUE file could not be read or compiled.
	CodeCUELoadFailed ErrorCode = "CUE_LOAD_FAILED"

	// CodeCUEDecodeFailed indicates a CUE value could not be validated or decoded.
	CodeCUEDecodeFailed ErrorCode = "CUE_DECODE_FAILED"

	// System errors.

	// CodeTimeout indicates an operation was cancelled or exceeded its deadline.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeNotImplemented indicates the requested functionality is not implemented.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	return string(c)
}
