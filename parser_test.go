package fig

import (
	"errors"
	"sync"
	"testing"
)

// word := digits | letters, with surrounding space skipped
func wordParser() Parser[string] {
	letters := CaptureWhile(func(c byte) bool { return c >= 'a' && c <= 'z' })
	digits := CaptureWhile(isDigit)
	return TakeRight(SkipWhile(isSpace), Alternative(
		Except(digits, nonEmpty),
		Except(letters, nonEmpty),
	))
}

func nonEmpty(s string) (string, error) {
	if s == "" {
		return "", errEmptyCapture
	}
	return s, nil
}

var errEmptyCapture = errors.New("empty capture")

func TestDeterminism(t *testing.T) {
	p := wordParser()
	in := NewInput("  1234 rest")

	a := p(in)
	b := p(in)

	if a.IsErr() || b.IsErr() {
		t.Fatalf("unexpected errors: %v, %v", a.Err, b.Err)
	}
	if a.Value != b.Value || a.Remaining != b.Remaining {
		t.Errorf("two runs over the same cursor disagree: %+v vs %+v", a, b)
	}
}

func TestLiteralPrefixLaw(t *testing.T) {
	// literal(S) on S ++ X always yields S with X remaining
	cases := []struct{ s, x string }{
		{"", ""},
		{"a", ""},
		{"", "tail"},
		{"hello", " world"},
		{"\x00\xff", "binary"},
	}
	for _, c := range cases {
		r := Run(Literal(c.s), c.s+c.x)
		if r.IsErr() || r.Value != c.s || r.Remaining.Text() != c.x {
			t.Errorf("literal(%q) on %q: got %+v", c.s, c.s+c.x, r)
		}
	}
}

func TestConcurrentInvocation(t *testing.T) {
	// one composed parser, many goroutines, one shared buffer
	p := Many(wordParser())
	const text = " one 2 three 44 five "

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r := Run(p, text)
				if r.IsErr() {
					t.Errorf("unexpected error: %v", r.Err)
					return
				}
				if len(r.Value) != 5 || r.Value[1] != "2" || r.Value[4] != "five" {
					t.Errorf("got %v", r.Value)
					return
				}
			}
		}()
	}
	wg.Wait()
}
