package recurrence_options

import (
	"context"

	recurrenceOptions "github.com/vinender/fieldsy-scheduling-service/internal/usecase/recurrence_options"
)

type RecurrenceOptionsUseCase interface {
	Execute(ctx context.Context, req *recurrenceOptions.Request) (*recurrenceOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
