// Package session holds the state of one walk-test session: the timer state
// machine, the lap ledger and the entry mode feeding it.
package session

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mxinitup/six-minute-walk-calculator/internal/clock"
	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
)

// State is the timer's state.
type State int

const (
	// Idle is the initial state: elapsed zero, not running.
	Idle State = iota
	// Running means the timer is counting from a reference instant.
	Running
	// Stopped means the timer is paused with elapsed time retained.
	Stopped
	// Finished means the six-minute ceiling was reached; terminal until
	// Reset.
	Finished
)

// String returns the state's display name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Finished:
		return "finished"
	}
	return "[unknown state]"
}

// A Session is one logical timing session. All operations are driven by
// discrete, non-overlapping external triggers; the session does no locking
// of its own.
//
// Elapsed time is always recomputed from the single stored reference
// instant, never accumulated from per-tick deltas, so redundant sampling
// cannot introduce rounding drift.
type Session struct {
	clock clock.Clock

	state       State
	accumulated model.Duration // elapsed time gathered over previous run intervals
	startRef    time.Time      // reference instant of the current run interval

	ledger *model.LapLedger
	manual bool
}

// New returns an idle session timed by the given clock.
func New(c clock.Clock) *Session {
	return &Session{
		clock:  c,
		state:  Idle,
		ledger: model.NewLapLedger(),
	}
}

// State returns the timer's current state.
func (s *Session) State() State { return s.state }

// Running returns whether the timer is counting.
func (s *Session) Running() bool { return s.state == Running }

// Finished returns whether the six-minute ceiling has been reached.
func (s *Session) Finished() bool { return s.state == Finished }

// ManualMode returns whether the manual table is the authoritative lap
// source.
func (s *Session) ManualMode() bool { return s.manual }

// Start begins or resumes the timer.
// It is a silent no-op while running or finished, and in manual mode.
func (s *Session) Start() {
	if s.state == Running || s.state == Finished || s.manual {
		return
	}
	s.startRef = s.clock.Now()
	s.state = Running
	log.Debug().Str("at", s.accumulated.String()).Msg("timer started")
}

// Stop pauses the timer, retaining elapsed time.
// It is a silent no-op unless running.
func (s *Session) Stop() {
	if s.state != Running {
		return
	}
	s.accumulated = s.Elapsed()
	s.startRef = time.Time{}
	if s.accumulated >= model.TestDuration {
		s.accumulated = model.TestDuration
		s.state = Finished
	} else {
		s.state = Stopped
	}
	log.Debug().Str("at", s.accumulated.String()).Msg("timer stopped")
}

// Elapsed samples the current elapsed time without changing state.
// While running this is the accumulated time plus the span since the
// reference instant; the result never exceeds the six-minute ceiling.
func (s *Session) Elapsed() model.Duration {
	elapsed := s.accumulated
	if s.state == Running {
		elapsed += model.Duration(s.clock.Since(s.startRef).Seconds())
	}
	if elapsed > model.TestDuration {
		return model.TestDuration
	}
	return elapsed
}

// DisplayString returns the current elapsed time formatted for display.
func (s *Session) DisplayString() string { return s.Elapsed().String() }

// Poll transitions a running timer to Finished once the ceiling is reached.
// It is safe to invoke redundantly, e.g. from a periodic display refresh,
// and does nothing unless running.
func (s *Session) Poll() {
	if s.state != Running {
		return
	}
	if s.Elapsed() >= model.TestDuration {
		s.accumulated = model.TestDuration
		s.startRef = time.Time{}
		s.state = Finished
		log.Info().Msg("test duration reached, timer finished")
	}
}

// RecordLap appends the current elapsed time to the lap ledger.
// It is a silent no-op unless the timer is running. A sample not strictly
// greater than the last recorded lap is rejected with an advisory error and
// leaves the ledger unchanged.
func (s *Session) RecordLap() error {
	if s.state != Running {
		return nil
	}
	t := s.Elapsed()
	if err := s.ledger.Record(t); err != nil {
		log.Warn().Err(err).Msg("lap rejected")
		return err
	}
	log.Info().Int("lap", s.ledger.Len()).Str("at", t.String()).Msg("lap recorded")
	return nil
}

// Laps returns the recorded cumulative lap times.
func (s *Session) Laps() []model.Duration { return s.ledger.Times() }

// LapCount returns the number of recorded laps.
func (s *Session) LapCount() int { return s.ledger.Len() }

// Reset stops the timer, zeroes elapsed time and clears the lap ledger,
// returning to Idle from any state.
func (s *Session) Reset() {
	s.state = Idle
	s.accumulated = 0
	s.startRef = time.Time{}
	s.ledger.Clear()
	log.Debug().Msg("session reset")
}

// SetManualMode switches the authoritative lap source between the live timer
// and the manual table. Entering manual mode stops a running timer.
func (s *Session) SetManualMode(enabled bool) {
	if enabled && s.state == Running {
		s.Stop()
	}
	s.manual = enabled
	log.Debug().Bool("manual", enabled).Msg("entry mode switched")
}

// SubmitManualTable parses and validates the manual table cells and, on
// success, atomically replaces the ledger's contents. On any error the
// ledger is left untouched.
func (s *Session) SubmitManualTable(cells []string) error {
	times, err := model.ParseLapTable(cells)
	if err != nil {
		return err
	}
	s.ledger.Replace(times)
	log.Info().Int("laps", len(times)).Msg("manual lap table accepted")
	return nil
}

// Calculate reconstructs the distance table from the current ledger and the
// given checkpoints. In manual mode, callers re-derive the ledger via
// SubmitManualTable beforehand.
func (s *Session) Calculate(checkpoints [model.CheckpointCount]model.Checkpoint) (*model.WalkResult, error) {
	return model.ReconstructDistance(s.ledger.Times(), checkpoints)
}

// ClearAll resets the session fully: timer, ledger and entry mode.
// (Checkpoint inputs live with the caller and are cleared there.)
func (s *Session) ClearAll() {
	s.Reset()
	s.manual = false
}
