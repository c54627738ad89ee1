package contact_manager

import (
	"context"

	contactUC "github.com/m04kA/SMC-SalonService/internal/usecase/contact_manager"
)

type ContactManagerUseCase interface {
	Execute(ctx context.Context, req *contactUC.Request) (*contactUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
