package domain

// RecurrenceOption is a pattern by which one booking request expands into
// multiple future bookings.
type RecurrenceOption string

const (
	RecurrenceNone    RecurrenceOption = "none"
	RecurrenceDaily   RecurrenceOption = "daily"
	RecurrenceWeekly  RecurrenceOption = "weekly"
	RecurrenceMonthly RecurrenceOption = "monthly"
)

// IsValid reports whether the option is one of the four known patterns.
func (r RecurrenceOption) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}
