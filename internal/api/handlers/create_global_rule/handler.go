package create_global_rule

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

// Handle POST /api/v1/global-conditions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConditionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /global-conditions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	condition, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, globalRulesService.ErrInvalidCondition):
			h.logger.Warn("POST /global-conditions - Invalid condition: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCondition)

		default:
			h.logger.Error("POST /global-conditions - Failed to create condition: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /global-conditions - Condition created: id=%s, scope=%s", condition.ID, condition.Scope)
	handlers.RespondJSON(w, http.StatusCreated, condition)
}
