package model_test

import (
	"testing"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
)

func TestParseDuration(t *testing.T) {
	for _, testcase := range []struct {
		input    string
		expected model.Duration
	}{
		{"90", 90},
		{"0", 0},
		{"360", 360},
		{":38", 38},
		{":5", 5},
		{":125", 125},
		{"1:04", 64},
		{"1:4", 64},
		{"2:75", 195}, // seconds carry over into minutes
		{"0:30", 30},
		{"1:04.5", 64.5},
		{"0:00.1", 0.1},
		{"06:00.0", 360},
	} {
		result, err := model.ParseDuration(testcase.input)
		if err != nil {
			t.Errorf("parsing '%s' unexpectedly errored: %s", testcase.input, err.Error())
		}
		if result.Tenths() != testcase.expected.Tenths() {
			t.Errorf("parsing '%s' gave %v, expected %v", testcase.input, result, testcase.expected)
		}
	}

	for _, invalid := range []string{
		"", ":", "abc", "1:2:3", "-30", "1:30.55", ":1234", "1.5", "30s", "1: 30",
	} {
		if result, err := model.ParseDuration(invalid); err == nil {
			t.Errorf("parsing '%s' should error but gave %v", invalid, result)
		}
	}
}

func TestDurationString(t *testing.T) {
	for _, testcase := range []struct {
		input    model.Duration
		expected string
	}{
		{0, "00:00.0"},
		{38, "00:38.0"},
		{64.5, "01:04.5"},
		{195, "03:15.0"},
		{359.9, "05:59.9"},
		{360, "06:00.0"},
	} {
		if result := testcase.input.String(); result != testcase.expected {
			t.Errorf("formatting %v gave '%s', expected '%s'", float64(testcase.input), result, testcase.expected)
		}
	}
}

// Formatting and re-parsing any tenth-precise duration in the test's range
// must yield the identical duration.
func TestDurationRoundTrip(t *testing.T) {
	for tenths := 0; tenths <= 3600; tenths++ {
		original := model.Duration(tenths) / 10
		reparsed, err := model.ParseDuration(original.String())
		if err != nil {
			t.Fatalf("could not re-parse '%s': %s", original.String(), err.Error())
		}
		if reparsed.Tenths() != original.Tenths() {
			t.Fatalf("round trip of %v via '%s' gave %v", original, original.String(), reparsed)
		}
	}
}
