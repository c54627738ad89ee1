package book_appointment

import (
	"context"

	bookUC "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
)

type BookUseCase interface {
	Execute(ctx context.Context, req *bookUC.Request) (*bookUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
