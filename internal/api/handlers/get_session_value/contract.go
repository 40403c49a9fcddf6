package get_session_value

import (
	"context"

	resolveSessionValue "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/resolve_session_value"
)

type ResolveSessionValueUseCase interface {
	Execute(ctx context.Context, req *resolveSessionValue.Request) (*resolveSessionValue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
