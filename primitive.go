package fig

// Empty always succeeds, consumes nothing, and yields the empty
// string.
func Empty() Parser[string] {
	return func(in Input) Result[string] {
		return Ok(in, "")
	}
}

// Rest always succeeds, consumes the entire remaining buffer, and
// yields it.
func Rest() Parser[string] {
	return func(in Input) Result[string] {
		return Ok(in.advance(len(in.text)), in.text)
	}
}

// Literal matches lit byte-for-byte at the front of the input,
// consuming len(lit) bytes and yielding lit. On a mismatch it fails
// with FailedToMatch at the original position, cursor unchanged.
func Literal(lit string) Parser[string] {
	return func(in Input) Result[string] {
		if len(in.text) < len(lit) {
			return Fail[string](in, noMatch("expected %q, input exhausted at offset %d", lit, in.pos))
		}
		if in.text[:len(lit)] != lit {
			return Fail[string](in, noMatch("expected %q at offset %d", lit, in.pos))
		}
		return Ok(in.advance(len(lit)), lit)
	}
}

// Byte matches a single byte equal to c, consuming it.
func Byte(c byte) Parser[byte] {
	return func(in Input) Result[byte] {
		if len(in.text) == 0 {
			return Fail[byte](in, noMatch("expected %q, input exhausted at offset %d", c, in.pos))
		}
		if in.text[0] != c {
			return Fail[byte](in, noMatch("expected %q at offset %d", c, in.pos))
		}
		return Ok(in.advance(1), c)
	}
}

// SkipWhile consumes the maximal prefix whose bytes satisfy pred. It
// always succeeds, yields no value, and may consume zero bytes, which
// makes it unsuitable as a direct argument to Many.
func SkipWhile(pred func(byte) bool) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		n := scanWhile(in.text, pred)
		return Ok(in.advance(n), struct{}{})
	}
}

// CaptureWhile consumes the maximal prefix whose bytes satisfy pred
// and yields it. The capture may be empty; a successful zero-byte
// capture makes it unsuitable as a direct argument to Many.
func CaptureWhile(pred func(byte) bool) Parser[string] {
	return CaptureWhileIn(Budget{}, pred)
}

// CaptureWhileIn is CaptureWhile with a Budget: if the matched prefix
// is longer than budget.MaxBytes, the attempt fails with
// AllocationFailure, positioned where the overflow was detected.
func CaptureWhileIn(budget Budget, pred func(byte) bool) Parser[string] {
	return func(in Input) Result[string] {
		n := scanWhile(in.text, pred)
		if budget.bytesExceeded(n) {
			return Fail[string](in.advance(n),
				allocFailure(ErrBudgetExceeded, "capture of %d bytes at offset %d exceeds %d", n, in.pos, budget.MaxBytes))
		}
		return Ok(in.advance(n), in.text[:n])
	}
}

func scanWhile(text string, pred func(byte) bool) int {
	n := 0
	for n < len(text) && pred(text[n]) {
		n++
	}
	return n
}
