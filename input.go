package fig

// Input is a cursor over an in-memory buffer: the bytes not yet
// consumed, plus the absolute offset of those bytes from the start of
// the original buffer. Inputs are values and are never mutated; every
// successful parse step produces a new cursor further along.
//
// Invariant: Pos() + len(Text()) equals the length of the original
// buffer, and Text() is the suffix of that buffer starting at Pos().
type Input struct {
	text string
	pos  int
}

// NewInput returns a cursor at offset 0 over text.
func NewInput(text string) Input {
	return Input{text: text}
}

// Text returns the remaining unconsumed bytes.
func (in Input) Text() string {
	return in.text
}

// Pos returns the absolute offset already consumed.
func (in Input) Pos() int {
	return in.pos
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.text)
}

// Empty reports whether the cursor has reached the end of the buffer.
func (in Input) Empty() bool {
	return len(in.text) == 0
}

// advance returns a cursor n bytes further along. Callers must have
// bounds-checked n against len(in.text) already.
func (in Input) advance(n int) Input {
	return Input{text: in.text[n:], pos: in.pos + n}
}
