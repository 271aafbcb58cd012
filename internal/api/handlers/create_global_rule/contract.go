package create_global_rule

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
)

type GlobalRulesService interface {
	Create(ctx context.Context, req *models.CreateConditionRequest) (*models.ConditionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
