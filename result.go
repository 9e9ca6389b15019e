package fig

// Result pairs the cursor after a parse attempt with either the
// produced value or a ParseError. On failure, Remaining is the cursor
// at the point the failure was detected; it is NOT guaranteed to be
// the cursor the attempt started from. Restoring the start-of-attempt
// cursor is the job of Alternative, never of the result itself.
type Result[T any] struct {
	Remaining Input
	Value     T
	Err       *ParseError
}

// Ok constructs a successful result.
func Ok[T any](remaining Input, value T) Result[T] {
	return Result[T]{Remaining: remaining, Value: value}
}

// Fail constructs a failed result.
func Fail[T any](remaining Input, err *ParseError) Result[T] {
	return Result[T]{Remaining: remaining, Err: err}
}

// failAs forwards a failure under a different value type, keeping the
// error and detection cursor intact.
func failAs[T, U any](r Result[T]) Result[U] {
	return Result[U]{Remaining: r.Remaining, Err: r.Err}
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

func (r Result[T]) IsErr() bool {
	return r.Err != nil
}
