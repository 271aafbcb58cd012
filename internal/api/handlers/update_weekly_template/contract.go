package update_weekly_template

import (
	"context"

	updateWeeklyTemplate "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/update_weekly_template"
)

type UpdateWeeklyTemplateUseCase interface {
	Execute(ctx context.Context, req *updateWeeklyTemplate.Request) (*updateWeeklyTemplate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
