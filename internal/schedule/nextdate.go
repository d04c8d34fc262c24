package schedule

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// NextAvailableDate scans forward from start, day by day, and returns the
// first date whose weekday is in the field's operating set. The scan is
// bounded by horizonDays; when no operating date exists within the horizon
// the second return is false — a first-class outcome the caller must
// surface, not an error.
//
// A field operating all seven days returns start immediately.
func NextAvailableDate(start time.Time, days domain.DaySet, horizonDays int) (time.Time, bool) {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	if days.IsEmpty() {
		return time.Time{}, false
	}
	if days.IsFull() {
		return start, true
	}

	for offset := 0; offset <= horizonDays; offset++ {
		candidate := start.AddDate(0, 0, offset)
		if IsOperatingDay(candidate, days) {
			return candidate, true
		}
	}
	return time.Time{}, false
}
