package delete_global_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	globalRulesService "github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules"
)

const (
	msgMissingConditionID = "ID условия обязателен"
	msgConditionNotFound  = "глобальное условие не найдено"
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

// Handle DELETE /api/v1/global-conditions/{conditionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conditionID := vars["conditionId"]
	if conditionID == "" {
		h.logger.Warn("DELETE /global-conditions/{id} - Missing condition ID")
		handlers.RespondBadRequest(w, msgMissingConditionID)
		return
	}

	if err := h.service.Delete(r.Context(), conditionID); err != nil {
		switch {
		case errors.Is(err, globalRulesService.ErrConditionNotFound):
			h.logger.Warn("DELETE /global-conditions/{id} - Condition not found: id=%s", conditionID)
			handlers.RespondNotFound(w, msgConditionNotFound)

		default:
			h.logger.Error("DELETE /global-conditions/{id} - Failed to delete condition: id=%s, error=%v",
				conditionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /global-conditions/{id} - Condition deleted: id=%s", conditionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
