package get_global_rules

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
)

type GlobalRulesService interface {
	List(ctx context.Context) ([]models.ConditionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
