package util

import (
	"testing"
)

func TestTruncateAt(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"regular string truncation", "aaaaabbbbbcccccddddd", 15, "aaaaabbbbbcc..."},
		{"no truncation needed", "aaaaabbbbbcccccddddd", 40, "aaaaabbbbbcccccddddd"},
		{"just barely no truncation needed", "aaaaabbbbbcccccddddd", 20, "aaaaabbbbbcccccddddd"},
		{"just barely truncation needed", "aaaaabbbbbcccccddddd", 19, "aaaaabbbbbcccccd..."},
	} {
		if result := TruncateAt(testcase.input, testcase.width); result != testcase.expected {
			t.Errorf("truncation test case '%s' failed:\n  expected: '%s'\n  got: '%s'",
				testcase.name, testcase.expected, result)
		}
	}
}

func TestPadding(t *testing.T) {
	if result := PadCenter("ab", 6); result != "  ab  " {
		t.Errorf("PadCenter gave '%s'", result)
	}
	if result := PadCenter("ab", 5); result != " ab  " {
		t.Errorf("PadCenter with odd padding gave '%s'", result)
	}
	if result := PadLeft("42", 5); result != "   42" {
		t.Errorf("PadLeft gave '%s'", result)
	}
	if result := PadRight("42", 5); result != "42   " {
		t.Errorf("PadRight gave '%s'", result)
	}
	if result := PadLeft("too wide already", 5); result != "too wide already" {
		t.Errorf("PadLeft of over-wide string gave '%s'", result)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3)
	for _, inside := range [][2]int{{2, 2}, {5, 4}, {3, 3}} {
		if !r.Contains(inside[0], inside[1]) {
			t.Errorf("(%d,%d) should be contained", inside[0], inside[1])
		}
	}
	for _, outside := range [][2]int{{1, 2}, {6, 2}, {2, 5}} {
		if r.Contains(outside[0], outside[1]) {
			t.Errorf("(%d,%d) should not be contained", outside[0], outside[1])
		}
	}
}
