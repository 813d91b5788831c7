package model

import (
	"fmt"
	"sort"
)

// A MinuteRow is the reconstructed distance information for one minute of
// the test.
type MinuteRow struct {
	// Minute is the minute mark, 1 to 6.
	Minute int
	// LapsCompleted is the count of full laps crossed at or before the
	// minute mark.
	LapsCompleted int
	// Total is the cumulative distance at the minute mark.
	// Non-decreasing across rows.
	Total float64
	// ThisMinute is the distance covered within this minute.
	ThisMinute float64
	// LapsThisMinute is ThisMinute expressed in laps.
	LapsThisMinute float64
}

// A WalkResult is the full reconstructed distance table for a test.
type WalkResult struct {
	Rows [CheckpointCount]MinuteRow

	// TotalDistance is the cumulative distance at the final minute mark.
	TotalDistance float64
	// TotalLaps is TotalDistance expressed in laps.
	TotalLaps float64
}

// ReconstructDistance computes per-minute and cumulative distance from
// cumulative lap-crossing times and the six per-minute checkpoints.
//
// Crossing times are sorted internally, so callers need not guarantee order.
// Cumulative distance is clamped to be non-decreasing: a checkpoint whose
// raw position would imply walking backwards (a plausible entry mistake)
// freezes the total rather than lowering it.
func ReconstructDistance(times []Duration, checkpoints [CheckpointCount]Checkpoint) (*WalkResult, error) {
	for i, c := range checkpoints {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.Minute != i+1 {
			return nil, fmt.Errorf("checkpoint %d carries minute %d", i+1, c.Minute)
		}
	}

	sorted := append([]Duration(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	result := &WalkResult{}
	lapsCompleted := 0
	previousTotal := 0.0

	for i, c := range checkpoints {
		checkpointTime := Duration((i + 1) * 60)
		for lapsCompleted < len(sorted) && sorted[lapsCompleted] <= checkpointTime {
			lapsCompleted++
		}

		raw := float64(lapsCompleted)*LapLength + c.Offset()
		total := raw
		if total < previousTotal {
			total = previousTotal
		}

		result.Rows[i] = MinuteRow{
			Minute:         i + 1,
			LapsCompleted:  lapsCompleted,
			Total:          total,
			ThisMinute:     total - previousTotal,
			LapsThisMinute: (total - previousTotal) / LapLength,
		}
		previousTotal = total
	}

	result.TotalDistance = previousTotal
	result.TotalLaps = previousTotal / LapLength

	return result, nil
}
