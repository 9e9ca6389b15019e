// Package calc evaluates infix arithmetic over int64, as a second,
// smaller consumer of the fig combinators. Precedence comes from
// grammar layering: expr handles + and -, term handles * and /, and
// factor recurses through parentheses.
package calc

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/hgranthorner/fig"
)

// Eval parses and evaluates an expression like "1 + 2 * (3 - 4)".
// The whole input must be consumed.
func Eval(input string) (int64, error) {
	r := fig.Run(fig.TakeLeft(expr, ws), input)
	if r.Err != nil {
		return 0, r.Err
	}
	if !r.Remaining.Empty() {
		return 0, errors.Errorf("trailing data at offset %d", r.Remaining.Pos())
	}
	return r.Value, nil
}

var (
	ws   = fig.SkipWhile(func(c byte) bool { return c == ' ' || c == '\t' })
	expr fig.Parser[int64]
)

func exprRef() fig.Parser[int64] {
	return expr
}

func init() {
	expr = layer(term(), '+', '-')
}

// layer parses p (op p)* and folds it left-associatively. Division
// by zero fails the fold, surfacing as a Wrapped parse failure.
func layer(p fig.Parser[int64], a, b byte) fig.Parser[int64] {
	op := fig.TakeRight(ws, fig.Alternative(fig.Byte(a), fig.Byte(b)))
	tail := fig.Many(fig.KeepBoth(op, p))
	return fig.Except(fig.KeepBoth(p, tail), func(pair fig.Pair[int64, []fig.Pair[byte, int64]]) (int64, error) {
		acc := pair.Left
		for _, step := range pair.Right {
			var err error
			acc, err = apply(acc, step.Left, step.Right)
			if err != nil {
				return 0, err
			}
		}
		return acc, nil
	})
}

func apply(lhs int64, op byte, rhs int64) (int64, error) {
	switch op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	}
	if rhs == 0 {
		return 0, errors.New("division by zero")
	}
	return lhs / rhs, nil
}

func term() fig.Parser[int64] {
	return layer(factor(), '*', '/')
}

func factor() fig.Parser[int64] {
	number := fig.Except(
		fig.TakeRight(ws, fig.CaptureWhile(func(c byte) bool { return c >= '0' && c <= '9' })),
		func(s string) (int64, error) {
			if s == "" {
				return 0, errors.New("expected a number")
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, errors.Wrapf(err, "number %q out of range", s)
			}
			return n, nil
		},
	)
	open := fig.TakeRight(ws, fig.Byte('('))
	closing := fig.TakeRight(ws, fig.Byte(')'))
	paren := fig.TakeRight(open, fig.TakeLeft(fig.Lazy(exprRef), closing))
	return fig.Alternative(paren, number)
}
