package next_available_date

import "time"

// Request asks for the next date a field operates on.
type Request struct {
	FieldID int64
	From    time.Time // optional; zero value means "from today"
}

// Response carries the search outcome. NextDate is nil when no operating
// date falls within the horizon - that is a normal outcome, not an error.
type Response struct {
	FieldID     int64
	From        time.Time
	NextDate    *time.Time
	HorizonDays int
}
