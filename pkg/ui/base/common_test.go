package base

import "testing"

func TestPadString(t *testing.T) {
	if got := PadString("ab", 4); got != "ab  " {
		t.Errorf("PadString = %q", got)
	}
	if got := PadString("abcdef", 4); got != "abcdef" {
		t.Errorf("PadString should not cut, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"'a long literal'", 8, "'a lo..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRightAlign(t *testing.T) {
	if got := RightAlign("42", 5); got != "   42" {
		t.Errorf("RightAlign = %q", got)
	}
}

func TestCaret(t *testing.T) {
	if got := Caret(4); got != "   ^" {
		t.Errorf("Caret(4) = %q", got)
	}
	if got := Caret(0); got != "^" {
		t.Errorf("Caret(0) = %q", got)
	}
}
