package get_schedule_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-CourtScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgMissingRange   = "параметры from и to обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange   = "некорректный диапазон дат"
	msgRangeTooWide   = "диапазон дат превышает допустимый лимит"
	msgCourtNotFound  = "корт не найден"
	msgBranchNotFound = "филиал корта не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/schedule/range
// Query params: from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule/range - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем from и to из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /courts/{id}/schedule/range - Missing range: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from := types.DateString(fromStr)
	to := types.DateString(toStr)
	if from.Validate() != nil || to.Validate() != nil {
		h.logger.Warn("GET /courts/{id}/schedule/range - Invalid date format: court_id=%d, from=%s, to=%s",
			courtID, fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	days, err := h.service.ResolveRange(r.Context(), courtID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/schedule/range - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, scheduleService.ErrBranchNotFound):
			h.logger.Warn("GET /courts/{id}/schedule/range - Branch not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, scheduleService.ErrInvalidRange):
			h.logger.Warn("GET /courts/{id}/schedule/range - Invalid range: court_id=%d, from=%s, to=%s",
				courtID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, scheduleService.ErrRangeTooWide):
			h.logger.Warn("GET /courts/{id}/schedule/range - Range too wide: court_id=%d, from=%s, to=%s",
				courtID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		default:
			h.logger.Error("GET /courts/{id}/schedule/range - Failed to resolve range: court_id=%d, from=%s, to=%s, error=%v",
				courtID, fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/schedule/range - Range resolved: court_id=%d, from=%s, to=%s, days_count=%d",
		courtID, fromStr, toStr, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromResolvedRange(courtID, fromStr, toStr, days))
}
