package replace_global_rules

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
)

type GlobalRulesService interface {
	ReplaceAll(ctx context.Context, req *models.ReplaceConditionsRequest) ([]models.ConditionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
