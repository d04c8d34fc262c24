package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// dayNames maps recognized day-name tokens to weekdays. Full names and
// three-letter abbreviations are accepted, case-insensitively.
var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ResolveOperatingDays normalizes a field's raw operating-day configuration
// into a canonical weekday set. Each element may be a keyword (everyday,
// weekday(s), weekend(s)) or a day name; list elements expand independently
// and union. An empty configuration resolves to all seven days — the
// permissive default inherited from the field catalog; schedule writes
// reject it (see service/schedule validation).
func ResolveOperatingDays(raw []string) (domain.DaySet, error) {
	if len(raw) == 0 {
		return domain.AllDays, nil
	}

	var set domain.DaySet
	for _, token := range raw {
		expanded, err := expandDayToken(token)
		if err != nil {
			return 0, err
		}
		set = set.Union(expanded)
	}
	return set, nil
}

// expandDayToken resolves one raw token into a day set.
func expandDayToken(token string) (domain.DaySet, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	switch normalized {
	case "":
		return 0, fmt.Errorf("%w: empty operating-day token", ErrInvalidScheduleConfig)
	case "everyday", "every day", "all", "daily":
		return domain.AllDays, nil
	case "weekend", "weekends":
		return domain.Weekends, nil
	case "weekday", "weekdays":
		return domain.Weekdays, nil
	}

	day, ok := dayNames[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: unknown operating-day token %q", ErrInvalidScheduleConfig, token)
	}
	return domain.DaySet(0).Add(day), nil
}

// IsOperatingDay reports whether the field operates on the given calendar
// date. The date is taken as the field's local calendar date as supplied by
// the caller; no timezone conversion is performed.
func IsOperatingDay(date time.Time, days domain.DaySet) bool {
	return days.Has(date.Weekday())
}
