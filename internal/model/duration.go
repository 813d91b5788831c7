package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration is a span of time within a walk test, in seconds.
// It is never negative, and all display and comparison contracts are at
// tenth-of-a-second granularity.
type Duration float64

const (
	// LapLength is the length of one full out-and-back circuit in track
	// units (25 out, 25 back).
	LapLength = 50.0

	// HalfLap is the length of a single leg of the circuit.
	HalfLap = LapLength / 2

	// TestDuration is the fixed length of the walk test.
	TestDuration Duration = 360.0

	// CheckpointCount is the number of per-minute checkpoints in a test.
	CheckpointCount = 6
)

// Tenths returns the duration as a whole number of tenths of a second,
// rounded.
func (d Duration) Tenths() int {
	return int(float64(d)*10 + 0.5)
}

// Seconds returns the duration as a float of seconds.
func (d Duration) Seconds() float64 { return float64(d) }

// String returns the canonical 'mm:ss.t' display form.
func (d Duration) String() string {
	tenths := d.Tenths()
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths%600)/10, tenths%10)
}

var (
	wholeSecondsRE  = regexp.MustCompile(`^\d+$`)
	colonSecondsRE  = regexp.MustCompile(`^:(\d{1,3})$`)
	minutesSecondsRE = regexp.MustCompile(`^(\d+):(\d+)(?:\.(\d))?$`)
)

// ParseDuration parses the flexible shorthand grammar for a lap time:
//
//	"90"     -> 90 seconds
//	":38"    -> 38 seconds (implied zero minutes)
//	"1:04"   -> 64 seconds
//	"2:75"   -> 195 seconds (seconds >= 60 carry over into minutes)
//	"1:04.5" -> 64.5 seconds (trailing tenths)
//
// Anything else is rejected.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)

	switch {
	case wholeSecondsRE.MatchString(s):
		seconds, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("could not read '%s' as whole seconds (%w)", s, err)
		}
		return Duration(seconds), nil

	case colonSecondsRE.MatchString(s):
		seconds, err := strconv.Atoi(colonSecondsRE.FindStringSubmatch(s)[1])
		if err != nil {
			return 0, fmt.Errorf("could not read '%s' as seconds (%w)", s, err)
		}
		return Duration(seconds), nil

	case minutesSecondsRE.MatchString(s):
		groups := minutesSecondsRE.FindStringSubmatch(s)
		minutes, errM := strconv.Atoi(groups[1])
		seconds, errS := strconv.Atoi(groups[2])
		if errM != nil || errS != nil {
			return 0, fmt.Errorf("could not read '%s' as minutes and seconds", s)
		}
		result := Duration(minutes*60 + seconds)
		if groups[3] != "" {
			tenths, err := strconv.Atoi(groups[3])
			if err != nil {
				return 0, fmt.Errorf("could not read tenths of '%s'", s)
			}
			result += Duration(tenths) / 10
		}
		return result, nil

	default:
		return 0, fmt.Errorf("'%s' fits no known time format (try e.g. '90', ':38' or '1:30.5')", s)
	}
}
