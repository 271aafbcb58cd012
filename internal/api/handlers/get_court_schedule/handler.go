package get_court_schedule

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
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/courts/{courtId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем courtId из URL
	courtIDStr := vars["courtId"]
	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/schedule - Missing date: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date := types.DateString(dateStr)
	if err := date.Validate(); err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid date format: court_id=%d, date=%s", courtID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	slots, err := h.service.ResolveDay(r.Context(), courtID, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/schedule - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, scheduleService.ErrBranchNotFound):
			h.logger.Warn("GET /courts/{id}/schedule - Branch not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, scheduleService.ErrInvalidDate):
			h.logger.Warn("GET /courts/{id}/schedule - Invalid date: court_id=%d, date=%s", courtID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/schedule - Failed to resolve schedule: court_id=%d, date=%s, error=%v",
				courtID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/schedule - Schedule resolved: court_id=%d, date=%s, slots_count=%d",
		courtID, dateStr, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromResolvedSlots(courtID, dateStr, slots))
}
