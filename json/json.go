// Package json is a JSON value grammar assembled from the fig
// combinators. It exists as the engine's flagship consumer: every
// production below is built only from the public primitives, with
// alternatives ordered most-specific-first.
package json

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hgranthorner/fig"
)

// Kind discriminates the JSON value variants.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "invalid"
}

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Only the field selected by Kind is
// meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  float64
	Str     string
	Items   []Value
	Members []Member
}

// Interface converts the value to the shapes encoding/json produces:
// nil, bool, float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.Kind {
	case Null:
		return nil
	case Bool:
		return v.Bool
	case Number:
		return v.Number
	case String:
		return v.Str
	case Array:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			out[m.Key] = m.Value.Interface()
		}
		return out
	}
	return nil
}

// Parse parses a complete JSON document: a single value with optional
// surrounding whitespace. Anything left over is an error.
func Parse(text string) (Value, error) {
	r := fig.Run(document, text)
	if r.Err != nil {
		return Value{}, r.Err
	}
	if !r.Remaining.Empty() {
		return Value{}, errors.Errorf("trailing data at offset %d", r.Remaining.Pos())
	}
	return r.Value, nil
}

var (
	value    fig.Parser[Value]
	document fig.Parser[Value]
)

// valueRef defers resolution of the value parser so the array and
// object productions can recurse into it.
func valueRef() fig.Parser[Value] {
	return value
}

func init() {
	value = buildValue()
	ws := fig.SkipWhile(isWS)
	document = fig.TakeLeft(fig.TakeRight(ws, value), ws)
}

func buildValue() fig.Parser[Value] {
	p := arrayParser()
	p = fig.Alternative(p, objectParser())
	p = fig.Alternative(p, fig.Map(quotedString(), func(s string) Value {
		return Value{Kind: String, Str: s}
	}))
	p = fig.Alternative(p, numberParser())
	p = fig.Alternative(p, fig.Map(fig.Literal("true"), func(string) Value {
		return Value{Kind: Bool, Bool: true}
	}))
	p = fig.Alternative(p, fig.Map(fig.Literal("false"), func(string) Value {
		return Value{Kind: Bool, Bool: false}
	}))
	p = fig.Alternative(p, fig.Map(fig.Literal("null"), func(string) Value {
		return Value{Kind: Null}
	}))
	return p
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// arrayParser parses '[' values ']' with comma separators and
// arbitrary whitespace between tokens.
func arrayParser() fig.Parser[Value] {
	ws := fig.SkipWhile(isWS)
	elem := fig.TakeRight(ws, fig.Lazy(valueRef))
	comma := fig.TakeRight(ws, fig.Byte(','))

	items := fig.Alternative(
		fig.Map(fig.KeepBoth(elem, fig.Many(fig.TakeRight(comma, elem))),
			func(p fig.Pair[Value, []Value]) []Value {
				return append([]Value{p.Left}, p.Right...)
			}),
		fig.Map(fig.Empty(), func(string) []Value { return nil }),
	)

	closing := fig.TakeRight(ws, fig.Byte(']'))
	return fig.Map(
		fig.TakeRight(fig.Byte('['), fig.TakeLeft(items, closing)),
		func(items []Value) Value { return Value{Kind: Array, Items: items} },
	)
}

// objectParser parses '{' string ':' value pairs '}'.
func objectParser() fig.Parser[Value] {
	ws := fig.SkipWhile(isWS)
	key := fig.TakeRight(ws, quotedString())
	colon := fig.TakeRight(ws, fig.Byte(':'))
	member := fig.Map(
		fig.KeepBoth(fig.TakeLeft(key, colon), fig.TakeRight(ws, fig.Lazy(valueRef))),
		func(p fig.Pair[string, Value]) Member {
			return Member{Key: p.Left, Value: p.Right}
		},
	)
	comma := fig.TakeRight(ws, fig.Byte(','))

	members := fig.Alternative(
		fig.Map(fig.KeepBoth(member, fig.Many(fig.TakeRight(comma, member))),
			func(p fig.Pair[Member, []Member]) []Member {
				return append([]Member{p.Left}, p.Right...)
			}),
		fig.Map(fig.Empty(), func(string) []Member { return nil }),
	)

	closing := fig.TakeRight(ws, fig.Byte('}'))
	return fig.Map(
		fig.TakeRight(fig.Byte('{'), fig.TakeLeft(members, closing)),
		func(ms []Member) Value { return Value{Kind: Object, Members: ms} },
	)
}

// numberParser captures the maximal number-shaped prefix and
// validates it with strconv. A malformed literal surfaces as a
// Wrapped failure, which ordered choice discards whenever a later
// alternative applies.
func numberParser() fig.Parser[Value] {
	numberByte := func(c byte) bool {
		return isDigit(c) || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
	}
	return fig.Except(fig.CaptureWhile(numberByte), func(s string) (Value, error) {
		if err := checkNumberShape(s); err != nil {
			return Value{}, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, errors.Wrapf(err, "malformed number %q", s)
		}
		return Value{Kind: Number, Number: f}, nil
	})
}

// checkNumberShape enforces the grammar rules ParseFloat is laxer
// about: no leading '+', no bare '.', no leading zeros.
func checkNumberShape(s string) error {
	digits := strings.TrimPrefix(s, "-")
	switch {
	case digits == "":
		return errors.Errorf("expected a number, got %q", s)
	case digits[0] == '+' || digits[0] == '.':
		return errors.Errorf("number %q may not start with %q", s, digits[0])
	case digits[0] == '0' && len(digits) > 1 && isDigit(digits[1]):
		return errors.Errorf("number %q has a leading zero", s)
	}
	return nil
}

// quotedString parses a double-quoted JSON string and decodes its
// escape sequences.
func quotedString() fig.Parser[string] {
	body := fig.Map(fig.Many(stringChunk()), func(parts []string) string {
		return strings.Join(parts, "")
	})
	return fig.TakeRight(fig.Byte('"'), fig.TakeLeft(body, fig.Byte('"')))
}

// stringChunk matches one escape sequence or a maximal run of plain
// characters. Both branches consume at least one byte on success, as
// Many requires.
func stringChunk() fig.Parser[string] {
	plain := func(c byte) bool {
		return c != '"' && c != '\\' && c >= 0x20
	}
	run := fig.Except(fig.CaptureWhile(plain), func(s string) (string, error) {
		if s == "" {
			return "", errors.New("end of string body")
		}
		return s, nil
	})
	return fig.Alternative(fig.TakeRight(fig.Byte('\\'), escapeSeq()), run)
}

func escapeSeq() fig.Parser[string] {
	esc := func(c byte, out string) fig.Parser[string] {
		return fig.Map(fig.Byte(c), func(byte) string { return out })
	}
	p := esc('"', `"`)
	p = fig.Alternative(p, esc('\\', `\`))
	p = fig.Alternative(p, esc('/', "/"))
	p = fig.Alternative(p, esc('b', "\b"))
	p = fig.Alternative(p, esc('f', "\f"))
	p = fig.Alternative(p, esc('n', "\n"))
	p = fig.Alternative(p, esc('r', "\r"))
	p = fig.Alternative(p, esc('t', "\t"))
	return fig.Alternative(p, fig.TakeRight(fig.Byte('u'), unicodeEscape()))
}

// unicodeEscape parses exactly four hex digits and decodes the code
// point. Surrogate halves decode to the replacement character.
func unicodeEscape() fig.Parser[string] {
	hex := hexDigit()
	pair := fig.Map(fig.KeepBoth(hex, hex), func(p fig.Pair[byte, byte]) string {
		return string([]byte{p.Left, p.Right})
	})
	four := fig.Map(fig.KeepBoth(pair, pair), func(p fig.Pair[string, string]) string {
		return p.Left + p.Right
	})
	return fig.Except(four, func(s string) (string, error) {
		n, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return "", errors.Wrapf(err, "invalid \\u escape %q", s)
		}
		return string(rune(n)), nil
	})
}

// hexDigit is the ordered choice over all 22 hex digit bytes, built
// by folding Alternative over Byte.
func hexDigit() fig.Parser[byte] {
	const digits = "0123456789abcdefABCDEF"
	p := fig.Byte(digits[0])
	for i := 1; i < len(digits); i++ {
		p = fig.Alternative(p, fig.Byte(digits[i]))
	}
	return p
}
