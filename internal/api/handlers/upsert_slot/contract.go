package upsert_slot

import (
	"context"

	upsertSlot "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/upsert_slot"
)

type UpsertSlotUseCase interface {
	Execute(ctx context.Context, req *upsertSlot.Request) (*upsertSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
