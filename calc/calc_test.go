package calc

import "testing"

func TestEval(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 2 - 3", 5},
		{"100 / 5 / 2", 10},
		{"((7))", 7},
		{" 1+2*3 ", 7},
	}
	for _, c := range cases {
		got, err := Eval(c.input)
		if err != nil {
			t.Errorf("Eval(%q): %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Eval(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	bad := []string{
		"",
		"1 +",
		"(1",
		"1)",
		"a + b",
		"1 / 0",
		"9223372036854775808",
	}
	for _, input := range bad {
		if got, err := Eval(input); err == nil {
			t.Errorf("Eval(%q) succeeded with %d", input, got)
		} else {
			t.Logf("Eval(%q): %v", input, err)
		}
	}
}
