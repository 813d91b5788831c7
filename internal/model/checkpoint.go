package model

import (
	"fmt"
)

// Direction identifies the leg of the out-and-back circuit a remembered
// position refers to.
type Direction int

const (
	_ Direction = iota
	// DirectionOut is the leg away from the start line.
	DirectionOut
	// DirectionBack is the leg returning towards the start line.
	DirectionBack
)

// ParseDirection converts a direction string ("out" or "back") to a
// Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "out":
		return DirectionOut, nil
	case "back":
		return DirectionBack, nil
	default:
		return 0, fmt.Errorf("direction must be 'out' or 'back', not '%s'", s)
	}
}

// String returns the direction's config/display identifier.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "out"
	case DirectionBack:
		return "back"
	}
	return "[unknown direction]"
}

// A Checkpoint is the externally supplied observation for one of the six
// one-minute marks: where on the track the walker was remembered to be, and
// on which leg.
type Checkpoint struct {
	// Minute is the checkpoint's minute mark, 1 to 6.
	Minute int
	// Position is the remembered distance along the current leg, measured
	// from the leg's start, 0 to 25.
	Position float64
	// Direction is the leg the position refers to.
	Direction Direction
}

// Validate checks the checkpoint's input contract.
func (c Checkpoint) Validate() error {
	if c.Minute < 1 || c.Minute > CheckpointCount {
		return fmt.Errorf("minute %d outside the test's range of 1 to %d", c.Minute, CheckpointCount)
	}
	if c.Position < 0 || c.Position > HalfLap {
		return fmt.Errorf("minute %d: position %v outside the track's range of 0 to %v", c.Minute, c.Position, HalfLap)
	}
	if c.Direction != DirectionOut && c.Direction != DirectionBack {
		return fmt.Errorf("minute %d: unknown direction", c.Minute)
	}
	return nil
}

// Offset returns the distance along the current lap, measured from the
// shared start/end line.
//
// Position 0 always maps to offset 0: it denotes the single start/end line
// of the circuit, and treating it as a point on the "back" leg would wrongly
// add a full half-lap.
func (c Checkpoint) Offset() float64 {
	if c.Position == 0 {
		return 0
	}
	switch c.Direction {
	case DirectionOut:
		return c.Position
	case DirectionBack:
		return HalfLap - c.Position
	}
	return 0
}
