package get_venue_schedule

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

type ScheduleService interface {
	ResolveAggregate(ctx context.Context, filter domain.CourtFilter, from, to types.DateString) (map[types.DateString][]domain.ResolvedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
