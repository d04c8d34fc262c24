package domain

import (
	"strings"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// DaySet is a set of weekdays on which a field operates.
// Bit i corresponds to time.Weekday(i), Sunday = 0.
type DaySet uint8

// AllDays is the full seven-day set.
const AllDays DaySet = 0x7F

// Weekdays covers Monday through Friday.
const Weekdays DaySet = 1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday

// Weekends covers Saturday and Sunday.
const Weekends DaySet = 1<<time.Saturday | 1<<time.Sunday

// Has reports whether the set contains day.
func (s DaySet) Has(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

// Add returns the set with day included.
func (s DaySet) Add(day time.Weekday) DaySet {
	return s | (1 << uint(day))
}

// Union returns the union of both sets.
func (s DaySet) Union(other DaySet) DaySet {
	return s | other
}

// Len returns the number of days in the set.
func (s DaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// IsFull reports whether the set covers all seven days.
func (s DaySet) IsFull() bool {
	return s == AllDays
}

// IsEmpty reports whether the set contains no days.
func (s DaySet) IsEmpty() bool {
	return s == 0
}

// Days returns the contained weekdays in Monday-first order.
func (s DaySet) Days() []time.Weekday {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	days := make([]time.Weekday, 0, 7)
	for _, d := range order {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Names returns the contained weekday names in Monday-first order.
func (s DaySet) Names() []string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return names
}

// String renders the set as a comma-separated list of day names.
func (s DaySet) String() string {
	return strings.Join(s.Names(), ",")
}

// SlotDuration is the granularity of bookable windows.
type SlotDuration int

const (
	SlotThirtyMinutes SlotDuration = 30
	SlotOneHour       SlotDuration = 60
)

// Minutes returns the duration in minutes.
func (d SlotDuration) Minutes() int {
	return int(d)
}

// IsValid reports whether the duration is one of the supported granularities.
func (d SlotDuration) IsValid() bool {
	return d == SlotThirtyMinutes || d == SlotOneHour
}

// FieldSchedule is the operating configuration of a field, consumed by the
// scheduling engine as an immutable snapshot per call.
type FieldSchedule struct {
	ID      int64
	FieldID int64

	OperatingDays  DaySet
	OpeningTime    types.TimeString
	ClosingTime    types.TimeString
	SlotDuration   SlotDuration
	BufferMinutes  int
	MaxDogsPerSlot int

	CreatedAt time.Time
	UpdatedAt time.Time
}
