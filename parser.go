// Package fig is a parser-combinator engine: a small algebra of
// composable functions that build recursive-descent parsers over an
// in-memory buffer, without a grammar compiler.
//
// Leaf parsers are built with the primitive constructors (Literal,
// Byte, CaptureWhile, ...), combined with the combinator functions
// (Map, TakeLeft, Alternative, Many, ...), and the resulting Parser is
// invoked against an Input cursor. Composition never executes
// anything; execution happens only when the composed Parser is run,
// and may happen any number of times.
package fig

// A Parser consumes a prefix of the input and produces a value of
// type T. Parsers are pure functions: they carry no mutable state and
// close only over data fixed at construction, so a composed Parser
// may be invoked repeatedly, and concurrently, over the same
// read-only buffer.
type Parser[T any] func(Input) Result[T]

// Run invokes p on a fresh cursor over text. It does not require the
// parser to consume the whole buffer; callers that need that should
// inspect Result.Remaining.
func Run[T any](p Parser[T], text string) Result[T] {
	return p(NewInput(text))
}
