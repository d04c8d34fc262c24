package schedule

import (
	"context"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
)

// ScheduleRepository is the persistence surface the service consumes.
type ScheduleRepository interface {
	GetByFieldID(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error)
	Upsert(ctx context.Context, fs *domain.FieldSchedule) (*domain.FieldSchedule, error)
	Delete(ctx context.Context, fieldID int64) error
}

// FieldServiceClient resolves field profiles from the catalogue. Only
// active fields are served; delisted fields read as not found.
type FieldServiceClient interface {
	GetActiveField(ctx context.Context, fieldID int64) (*fieldservice.Field, error)
}

// Logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
