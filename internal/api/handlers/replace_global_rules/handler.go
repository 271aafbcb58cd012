package replace_global_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	globalRulesService "github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules"
	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCondition   = "некорректные параметры условия"
)

type Handler struct {
	service GlobalRulesService
	logger  Logger
}

func NewHandler(service GlobalRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ConditionsResponse итоговый набор условий после замены
type ConditionsResponse struct {
	Conditions []models.ConditionResponse `json:"conditions"`
}

// Handle PUT /api/v1/global-conditions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceConditionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /global-conditions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	conditions, err := h.service.ReplaceAll(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, globalRulesService.ErrInvalidCondition):
			h.logger.Warn("PUT /global-conditions - Invalid condition: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCondition)

		default:
			h.logger.Error("PUT /global-conditions - Failed to replace conditions: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if conditions == nil {
		conditions = []models.ConditionResponse{}
	}

	h.logger.Info("PUT /global-conditions - Conditions replaced: count=%d", len(conditions))
	handlers.RespondJSON(w, http.StatusOK, ConditionsResponse{Conditions: conditions})
}
