package get_my_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/usecase/classify_appointments"
)

type ClassifyUseCase interface {
	Execute(ctx context.Context, req *classify_appointments.Request) (*classify_appointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
