package errors

import "fmt"

// FormatError reports a problem with an expression's text, at parse time
// (unknown tokens) or at evaluation time (a missing mandatory right-hand
// side, an out-of-bounds dice count/size, an invalid counting-operator
// suffix). Position is a byte offset into the expression; -1 means the
// position is not meaningful for this occurrence.
func FormatError(expression string, position int, message string) *Error {
	return InvalidArgument(message).
		WithMeta("expression", expression).
		WithMeta("position", position)
}

// FormatErrorf formats FormatError's message.
func FormatErrorf(expression string, position int, format string, args ...interface{}) *Error {
	return FormatError(expression, position, fmt.Sprintf(format, args...))
}

// IsFormatError reports whether err is a FormatError.
func IsFormatError(err error) bool {
	return IsInvalidArgument(err)
}

// RollerExhausted reports that a PreRolled roller's queue ran dry before
// satisfying a request.
func RollerExhausted(message string) *Error {
	return ResourceExhausted(message)
}

// RollerExhaustedf formats RollerExhausted's message.
func RollerExhaustedf(format string, args ...interface{}) *Error {
	return RollerExhausted(fmt.Sprintf(format, args...))
}

// RollerOutOfRange reports that a roller produced or was handed a value
// outside the interval or value set the request asked for.
func RollerOutOfRange(message string) *Error {
	return OutOfRange(message)
}

// RollerOutOfRangef formats RollerOutOfRange's message.
func RollerOutOfRangef(format string, args ...interface{}) *Error {
	return RollerOutOfRange(fmt.Sprintf(format, args...))
}

// IsRollerExhausted reports whether err is a RollerError of the Exhausted kind.
func IsRollerExhausted(err error) bool {
	return IsResourceExhausted(err)
}

// IsRollerOutOfRange reports whether err is a RollerError of the OutOfRange kind.
func IsRollerOutOfRange(err error) bool {
	return IsOutOfRange(err)
}
