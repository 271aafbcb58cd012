package get_schedule_range

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

type ScheduleService interface {
	ResolveRange(ctx context.Context, courtID int64, from, to types.DateString) (map[types.DateString][]domain.ResolvedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
