package cancellation_eligibility

import (
	"context"

	cancellationEligibility "github.com/vinender/fieldsy-scheduling-service/internal/usecase/cancellation_eligibility"
)

type CancellationEligibilityUseCase interface {
	Execute(ctx context.Context, req *cancellationEligibility.Request) (*cancellationEligibility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
