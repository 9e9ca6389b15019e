package fig

import "errors"

// ErrBudgetExceeded is the cause carried by AllocationFailure results
// reported by the budgeted collecting combinators.
var ErrBudgetExceeded = errors.New("collection budget exceeded")

// Budget caps how much output the collecting combinators (ManyIn,
// CaptureWhileIn) may accumulate in a single attempt, so that
// resource exhaustion surfaces as an ordinary AllocationFailure
// result instead of an abort. The zero Budget is unlimited.
//
// A Budget is shared freely between Parsers: accounting happens per
// invocation, inside the call, so budgeted Parsers stay stateless and
// reentrant.
type Budget struct {
	// MaxItems bounds the element count collected by ManyIn.
	// Zero means unlimited.
	MaxItems int

	// MaxBytes bounds the capture length of CaptureWhileIn.
	// Zero means unlimited.
	MaxBytes int
}

func (b Budget) itemsExceeded(n int) bool {
	return b.MaxItems > 0 && n > b.MaxItems
}

func (b Budget) bytesExceeded(n int) bool {
	return b.MaxBytes > 0 && n > b.MaxBytes
}
