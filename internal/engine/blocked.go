package engine

import (
	"fmt"
	"time"

	"weekwise/internal/models"
	"weekwise/internal/timeutil"
)

// commuteBufferMin is the travel buffer derived on each side of a treatment.
const commuteBufferMin = 60

// extractBlockedTimes turns weekly commitments into per-day occupied
// intervals: the treatment itself plus a commute buffer before and after.
// The leading buffer is clamped at midnight; the trailing one may run past
// the working day. Overlapping buffers from adjacent commitments are kept
// as-is: blocked time is only ever consulted as an overlap predicate, so
// duplicates are harmless.
func extractBlockedTimes(commitments []models.Commitment) (map[time.Weekday][]models.FixedBlock, error) {
	blocked := make(map[time.Weekday][]models.FixedBlock)

	for _, c := range commitments {
		start, end, err := commitmentWindow(c)
		if err != nil {
			return nil, err
		}

		commuteStart := start - commuteBufferMin
		if commuteStart < 0 {
			commuteStart = 0
		}

		blocked[c.Day] = append(blocked[c.Day],
			models.FixedBlock{Day: c.Day, StartMin: commuteStart, EndMin: start, Kind: models.BlockCommute},
			models.FixedBlock{Day: c.Day, StartMin: start, EndMin: end, Kind: models.BlockTreatment, Location: c.Name},
			models.FixedBlock{Day: c.Day, StartMin: end, EndMin: end + commuteBufferMin, Kind: models.BlockCommute},
		)
	}

	return blocked, nil
}

func commitmentWindow(c models.Commitment) (start, end int, err error) {
	start, err = parseCommitmentClock(c, c.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = parseCommitmentClock(c, c.End)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, fmt.Errorf("commitment %q on %s: end %s is not after start %s", c.Name, c.Day, c.End, c.Start)
	}
	return start, end, nil
}

func parseCommitmentClock(c models.Commitment, clock string) (int, error) {
	min, err := timeutil.ParseClock(clock)
	if err != nil {
		return 0, fmt.Errorf("commitment %q on %s: %w", c.Name, c.Day, err)
	}
	return min, nil
}
