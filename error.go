package fig

import "fmt"

// ErrorKind discriminates parse failures. It is the only field of
// ParseError that programs should branch on.
type ErrorKind int

const (
	// FailedToMatch means the expected pattern was absent. This is
	// the recoverable failure that drives Alternative's retry.
	FailedToMatch ErrorKind = iota

	// IndexOutOfBounds is a defensive bound violation. It is
	// unreachable if the primitives are implemented correctly.
	IndexOutOfBounds

	// AllocationFailure means a collecting combinator exhausted its
	// Budget while growing its output. It terminates the enclosing
	// parse attempt.
	AllocationFailure

	// Wrapped carries a consumer-supplied error raised by the
	// fallible transform given to Except.
	Wrapped
)

func (k ErrorKind) String() string {
	switch k {
	case FailedToMatch:
		return "failed to match"
	case IndexOutOfBounds:
		return "index out of bounds"
	case AllocationFailure:
		return "allocation failure"
	case Wrapped:
		return "wrapped"
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

// ParseError describes a failed parse attempt. Kind is for
// programmatic branching; Msg is diagnostic only. Index is set for
// IndexOutOfBounds, Cause for AllocationFailure and Wrapped.
type ParseError struct {
	Kind  ErrorKind
	Msg   string
	Index int
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func noMatch(format string, args ...any) *ParseError {
	return &ParseError{Kind: FailedToMatch, Msg: fmt.Sprintf(format, args...)}
}

func allocFailure(cause error, format string, args ...any) *ParseError {
	return &ParseError{Kind: AllocationFailure, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

func wrapped(cause error, format string, args ...any) *ParseError {
	return &ParseError{Kind: Wrapped, Msg: fmt.Sprintf(format, args...), Cause: cause}
}
