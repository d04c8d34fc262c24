package get_availability

import (
	"context"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// ScheduleResolver resolves the effective schedule of a field.
type ScheduleResolver interface {
	ResolveForField(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error)
}

// BookingRepository is the slice of the bookings repository this usecase needs.
type BookingRepository interface {
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger consumed by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
