package recurrence_options

import (
	"context"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
)

// ScheduleResolver resolves the effective schedule of a field.
type ScheduleResolver interface {
	ResolveForField(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error)
}

// Logger consumed by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
