package model

import (
	"fmt"
	"strings"
)

// LapLedger is the authoritative ordered sequence of cumulative lap-crossing
// times of a walk-test session, counted from elapsed-time zero.
// Its entries are strictly increasing; both producers (live lap recording and
// manual table entry) enforce this before any entry lands in the ledger.
type LapLedger struct {
	times []Duration
}

// NewLapLedger returns an empty ledger.
func NewLapLedger() *LapLedger {
	return &LapLedger{times: make([]Duration, 0)}
}

// Record appends the crossing time t to the ledger.
// A time not strictly greater than the last recorded one is rejected and the
// ledger is left unchanged; the returned error is advisory (e.g. a double-tap
// of the lap control), not a corrupt-state condition.
func (l *LapLedger) Record(t Duration) error {
	if last, ok := l.Last(); ok && t <= last {
		return fmt.Errorf("lap time %s must be greater than previous lap time %s", t.String(), last.String())
	}
	l.times = append(l.times, t)
	return nil
}

// Replace substitutes the ledger's entire contents.
// The caller guarantees strict increase (ParseLapTable does).
func (l *LapLedger) Replace(times []Duration) {
	l.times = append(l.times[:0:0], times...)
}

// Times returns a copy of the recorded crossing times in recording order.
func (l *LapLedger) Times() []Duration {
	return append([]Duration(nil), l.times...)
}

// Len returns the number of recorded laps.
func (l *LapLedger) Len() int { return len(l.times) }

// Last returns the most recent crossing time, if any.
func (l *LapLedger) Last() (Duration, bool) {
	if len(l.times) == 0 {
		return 0, false
	}
	return l.times[len(l.times)-1], true
}

// Clear empties the ledger.
func (l *LapLedger) Clear() { l.times = l.times[:0] }

// A CellError is a validation error for manual table entry that names the
// offending cell (1-based, top to bottom) so the user can locate and fix it.
type CellError struct {
	Cell   int
	Reason string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d: %s", e.Cell, e.Reason)
}

// ParseLapTable parses an ordered list of manual table cells into cumulative
// lap times.
//
// Blank cells are permitted only as a trailing run; a filled cell below a
// blank one is a gap and rejects the whole table. Each filled cell must parse
// per ParseDuration and be strictly greater than the one above it. Validation
// is a single atomic pass with first-failure-wins semantics: on any error the
// ledger the caller holds is to be left untouched.
func ParseLapTable(cells []string) ([]Duration, error) {
	times := make([]Duration, 0, len(cells))
	blankSeen := false

	for i, cell := range cells {
		if strings.TrimSpace(cell) == "" {
			blankSeen = true
			continue
		}
		if blankSeen {
			return nil, &CellError{Cell: i + 1, Reason: "filled cell follows a blank cell (blanks may only trail)"}
		}
		t, err := ParseDuration(cell)
		if err != nil {
			return nil, &CellError{Cell: i + 1, Reason: err.Error()}
		}
		if len(times) > 0 && t <= times[len(times)-1] {
			return nil, &CellError{
				Cell:   i + 1,
				Reason: fmt.Sprintf("%s is not greater than the previous lap time %s", t.String(), times[len(times)-1].String()),
			}
		}
		times = append(times, t)
	}

	return times, nil
}
