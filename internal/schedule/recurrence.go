package schedule

import (
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// RecurrenceOptions derives which recurrence patterns a field can actually
// satisfy every cycle, from its resolved operating-day set. The order is
// fixed: None, Daily, Weekly, Monthly. Daily requires all seven days so that
// no cycle ever lands on a closed day; Weekly requires at least one
// operating day; Monthly is always offered (a monthly occurrence landing on
// a closed day is skipped at expansion time).
func RecurrenceOptions(days domain.DaySet) []domain.RecurrenceOption {
	options := []domain.RecurrenceOption{domain.RecurrenceNone}
	if days.IsFull() {
		options = append(options, domain.RecurrenceDaily)
	}
	if days.Len() >= 1 {
		options = append(options, domain.RecurrenceWeekly)
	}
	options = append(options, domain.RecurrenceMonthly)
	return options
}

// ExpandRecurrence expands a booking's start date plus a recurrence option
// into the concrete occurrence dates within horizonDays, skipping dates the
// field does not operate. The start date itself is always the first
// occurrence; callers validate it separately.
func ExpandRecurrence(start time.Time, option domain.RecurrenceOption, days domain.DaySet, horizonDays int) []time.Time {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	end := start.AddDate(0, 0, horizonDays)

	occurrences := []time.Time{start}

	switch option {
	case domain.RecurrenceDaily:
		for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
			if IsOperatingDay(d, days) {
				occurrences = append(occurrences, d)
			}
		}
	case domain.RecurrenceWeekly:
		for d := start.AddDate(0, 0, 7); !d.After(end); d = d.AddDate(0, 0, 7) {
			if IsOperatingDay(d, days) {
				occurrences = append(occurrences, d)
			}
		}
	case domain.RecurrenceMonthly:
		for i := 1; ; i++ {
			d := start.AddDate(0, i, 0)
			if d.After(end) {
				break
			}
			if IsOperatingDay(d, days) {
				occurrences = append(occurrences, d)
			}
		}
	}

	return occurrences
}
