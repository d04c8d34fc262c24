package create_booking

import (
	"context"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// BookingRepository is the slice of the bookings repository this usecase needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleResolver resolves the effective schedule of a field.
type ScheduleResolver interface {
	ResolveForField(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
