package fieldservice

// Field is the field profile exposed by the FieldService catalogue.
// Schedule-related attributes come back in the owner's raw form: operating
// days as day names, times as strings that may be either 24-hour or
// AM/PM-tagged. Normalization happens in the schedule service, not here.
type Field struct {
	ID       int64  `json:"id"`
	OwnerID  int64  `json:"owner_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`

	OperatingDays       []string `json:"operating_days"`
	OpeningTime         string   `json:"opening_time"`
	ClosingTime         string   `json:"closing_time"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	BufferMinutes       int      `json:"buffer_minutes"`
	MaxDogsPerSlot      int      `json:"max_dogs_per_slot"`
}

// ErrorResponse is the error envelope returned by FieldService.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
