package next_available_date

import (
	"context"

	nextAvailableDate "github.com/vinender/fieldsy-scheduling-service/internal/usecase/next_available_date"
)

type NextAvailableDateUseCase interface {
	Execute(ctx context.Context, req *nextAvailableDate.Request) (*nextAvailableDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
