package fig

// Pair holds the two values produced by KeepBoth.
type Pair[T, U any] struct {
	Left  T
	Right U
}

// Map applies a total transform to p's value on success, keeping the
// same remaining cursor. Failures pass through unchanged, at the
// position where they actually occurred.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if r.IsErr() {
			return failAs[T, U](r)
		}
		return Ok(r.Remaining, f(r.Value))
	}
}

// Except applies a fallible transform to p's value on success. An
// error from f becomes a Wrapped failure carrying it as the cause,
// positioned at p's success cursor: the bytes f operated on were
// already consumed. Failures of p itself pass through unchanged.
func Except[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if r.IsErr() {
			return failAs[T, U](r)
		}
		v, err := f(r.Value)
		if err != nil {
			return Fail[U](r.Remaining, wrapped(err, "transform failed at offset %d", r.Remaining.pos))
		}
		return Ok(r.Remaining, v)
	}
}

// TakeLeft runs a then b, keeping a's value and b's remaining cursor.
// The first failure propagates as-is, at its own position; input
// consumed by an earlier successful step is never rewound.
func TakeLeft[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return func(in Input) Result[T] {
		ra := a(in)
		if ra.IsErr() {
			return ra
		}
		rb := b(ra.Remaining)
		if rb.IsErr() {
			return failAs[U, T](rb)
		}
		return Ok(rb.Remaining, ra.Value)
	}
}

// TakeRight runs a then b, keeping b's value.
func TakeRight[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	return func(in Input) Result[U] {
		ra := a(in)
		if ra.IsErr() {
			return failAs[T, U](ra)
		}
		return b(ra.Remaining)
	}
}

// KeepBoth runs a then b in order and yields both values, with b's
// remaining cursor. It short-circuits on the first failure,
// propagating it unchanged.
func KeepBoth[T, U any](a Parser[T], b Parser[U]) Parser[Pair[T, U]] {
	return func(in Input) Result[Pair[T, U]] {
		ra := a(in)
		if ra.IsErr() {
			return failAs[T, Pair[T, U]](ra)
		}
		rb := b(ra.Remaining)
		if rb.IsErr() {
			return failAs[U, Pair[T, U]](rb)
		}
		return Ok(rb.Remaining, Pair[T, U]{Left: ra.Value, Right: rb.Value})
	}
}

// Alternative is ordered choice: run a on the original cursor and, if
// it succeeds, return its result untouched without attempting b.
// If a fails, its result is discarded entirely, however far it
// consumed, and b runs against the same original cursor. First match
// wins, not longest match; order alternatives most-specific-first.
// There is no cut operator.
func Alternative[T any](a, b Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		r := a(in)
		if r.IsOk() {
			return r
		}
		return b(in)
	}
}

// Many runs p zero or more times, collecting the values in order. It
// stops at p's first failure, discards that attempt, and succeeds
// with everything collected so far, the cursor left at the position
// before the failing attempt. Zero matches is a success with a nil
// slice and an unchanged cursor.
//
// p must either fail or consume at least one byte; a parser that can
// succeed on zero bytes loops forever under Many.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ManyIn(Budget{}, p)
}

// ManyIn is Many with a Budget: collecting more than budget.MaxItems
// values fails the whole attempt with AllocationFailure, dropping the
// partial collection, positioned where the overflow was detected.
func ManyIn[T any](budget Budget, p Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		var out []T
		cur := in
		for {
			r := p(cur)
			if r.IsErr() {
				return Ok(cur, out)
			}
			out = append(out, r.Value)
			if budget.itemsExceeded(len(out)) {
				// the partial collection is dropped, not returned
				return Fail[[]T](r.Remaining,
					allocFailure(ErrBudgetExceeded, "collected more than %d items at offset %d", budget.MaxItems, r.Remaining.pos))
			}
			cur = r.Remaining
		}
	}
}

// Lazy defers the construction of a parser to first use, breaking the
// definition cycles of recursive grammars. f must return the same
// parser every time for the composed Parser to stay deterministic.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		return f()(in)
	}
}
