package fig

import "testing"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func TestEmpty(t *testing.T) {
	for _, input := range []string{"", "abc"} {
		r := Run(Empty(), input)
		if r.IsErr() {
			t.Errorf("Empty on %q: unexpected error %v", input, r.Err)
		}
		if r.Value != "" {
			t.Errorf("Empty on %q: value %q, want \"\"", input, r.Value)
		}
		if r.Remaining.Text() != input || r.Remaining.Pos() != 0 {
			t.Errorf("Empty on %q consumed input: remaining %q at %d", input, r.Remaining.Text(), r.Remaining.Pos())
		}
	}
}

func TestRest(t *testing.T) {
	r := Run(Rest(), "hello world")
	if r.IsErr() {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Value != "hello world" {
		t.Errorf("value %q, want the whole buffer", r.Value)
	}
	if !r.Remaining.Empty() || r.Remaining.Pos() != len("hello world") {
		t.Errorf("remaining %q at %d, want empty at %d", r.Remaining.Text(), r.Remaining.Pos(), len("hello world"))
	}
}

func TestLiteral(t *testing.T) {
	r := Run(Literal("hello"), "hello world")
	if r.IsErr() {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Value != "hello" {
		t.Errorf("value %q, want %q", r.Value, "hello")
	}
	if r.Remaining.Text() != " world" || r.Remaining.Pos() != 5 {
		t.Errorf("remaining %q at %d, want %q at 5", r.Remaining.Text(), r.Remaining.Pos(), " world")
	}

	// mismatch leaves the cursor where the attempt started
	r = Run(Literal("hello"), "help")
	if r.IsOk() {
		t.Fatal("expected failure")
	}
	if r.Err.Kind != FailedToMatch {
		t.Errorf("kind %v, want FailedToMatch", r.Err.Kind)
	}
	if r.Remaining.Pos() != 0 || r.Remaining.Text() != "help" {
		t.Errorf("failure moved the cursor: %q at %d", r.Remaining.Text(), r.Remaining.Pos())
	}
	t.Logf("mismatch error: %v", r.Err)

	// the length check must run before the byte compare
	r = Run(Literal("hello"), "he")
	if r.IsOk() || r.Err.Kind != FailedToMatch {
		t.Errorf("short input: got %+v", r)
	}
}

func TestByte(t *testing.T) {
	r := Run(Byte('a'), "abc")
	if r.IsErr() || r.Value != 'a' || r.Remaining.Text() != "bc" {
		t.Errorf("got %+v", r)
	}

	r = Run(Byte('a'), "xbc")
	if r.IsOk() || r.Err.Kind != FailedToMatch {
		t.Errorf("wrong byte: got %+v", r)
	}

	// empty input must fail, not index past the end
	r = Run(Byte('a'), "")
	if r.IsOk() || r.Err.Kind != FailedToMatch {
		t.Errorf("empty input: got %+v", r)
	}
}

func TestSkipWhile(t *testing.T) {
	p := SkipWhile(isSpace)

	r := Run(p, "   abc")
	if r.IsErr() || r.Remaining.Text() != "abc" || r.Remaining.Pos() != 3 {
		t.Errorf("got remaining %q at %d, err %v", r.Remaining.Text(), r.Remaining.Pos(), r.Err)
	}

	// zero-byte match is still a success
	r = Run(p, "abc")
	if r.IsErr() || r.Remaining.Text() != "abc" || r.Remaining.Pos() != 0 {
		t.Errorf("got remaining %q at %d, err %v", r.Remaining.Text(), r.Remaining.Pos(), r.Err)
	}
}

func TestCaptureWhile(t *testing.T) {
	r := Run(CaptureWhile(isDigit), "1234 5678")
	if r.IsErr() {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Value != "1234" {
		t.Errorf("value %q, want %q", r.Value, "1234")
	}
	if r.Remaining.Text() != " 5678" {
		t.Errorf("remaining %q, want %q", r.Remaining.Text(), " 5678")
	}

	r = Run(CaptureWhile(isDigit), "abc")
	if r.IsErr() || r.Value != "" || r.Remaining.Pos() != 0 {
		t.Errorf("empty capture: got %+v", r)
	}
}

func TestCaptureWhileBudget(t *testing.T) {
	p := CaptureWhileIn(Budget{MaxBytes: 4}, isDigit)

	r := Run(p, "1234 ")
	if r.IsErr() || r.Value != "1234" {
		t.Errorf("within budget: got %+v", r)
	}

	r = Run(p, "12345")
	if r.IsOk() {
		t.Fatal("expected allocation failure")
	}
	if r.Err.Kind != AllocationFailure {
		t.Errorf("kind %v, want AllocationFailure", r.Err.Kind)
	}
	t.Logf("budget error: %v", r.Err)
}
