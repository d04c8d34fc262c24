package bookings

import (
	"context"
	"time"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// BookingRepository is the persistence surface the service consumes.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Reschedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error
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

// FieldServiceClient resolves field profiles from the catalogue. Only
// active fields are served; delisted fields read as not found.
type FieldServiceClient interface {
	GetActiveField(ctx context.Context, fieldID int64) (*fieldservice.Field, error)
}

// TimeProvider supplies the current moment. Injected so the cancellation
// window can be tested against a fixed clock.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
