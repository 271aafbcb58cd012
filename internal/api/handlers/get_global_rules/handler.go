package get_global_rules

import (
	"net/http"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
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

// ConditionsResponse список глобальных условий
type ConditionsResponse struct {
	Conditions []models.ConditionResponse `json:"conditions"`
}

// Handle GET /api/v1/global-conditions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conditions, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /global-conditions - Failed to list conditions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if conditions == nil {
		conditions = []models.ConditionResponse{}
	}

	h.logger.Info("GET /global-conditions - Conditions listed: count=%d", len(conditions))
	handlers.RespondJSON(w, http.StatusOK, ConditionsResponse{Conditions: conditions})
}
