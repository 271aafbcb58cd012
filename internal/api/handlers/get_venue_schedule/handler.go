package get_venue_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	scheduleService "github.com/m04kA/SMC-CourtScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

const (
	msgMissingRange  = "параметры from и to обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "некорректный диапазон дат"
	msgRangeTooWide  = "диапазон дат превышает допустимый лимит"
	msgMissingFilter = "необходимо указать cityId или branchId"
	msgInvalidCityID = "некорректный cityId"
	msgInvalidBranch = "некорректный branchId"
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

// Handle GET /api/v1/venues/schedule
// Query params: from, to (required, YYYY-MM-DD), cityId или branchId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем from и to из query параметров
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /venues/schedule - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from := types.DateString(fromStr)
	to := types.DateString(toStr)
	if from.Validate() != nil || to.Validate() != nil {
		h.logger.Warn("GET /venues/schedule - Invalid date format: from=%s, to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Извлекаем фильтр кортов
	var filter domain.CourtFilter
	if cityIDStr := query.Get("cityId"); cityIDStr != "" {
		cityID, err := strconv.ParseInt(cityIDStr, 10, 64)
		if err != nil || cityID <= 0 {
			h.logger.Warn("GET /venues/schedule - Invalid city ID: %s", cityIDStr)
			handlers.RespondBadRequest(w, msgInvalidCityID)
			return
		}
		filter.CityID = &cityID
	}
	if branchIDStr := query.Get("branchId"); branchIDStr != "" {
		branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
		if err != nil || branchID <= 0 {
			h.logger.Warn("GET /venues/schedule - Invalid branch ID: %s", branchIDStr)
			handlers.RespondBadRequest(w, msgInvalidBranch)
			return
		}
		filter.BranchID = &branchID
	}
	if filter.CityID == nil && filter.BranchID == nil {
		h.logger.Warn("GET /venues/schedule - Missing filter")
		handlers.RespondBadRequest(w, msgMissingFilter)
		return
	}

	// Вызываем сервис
	days, err := h.service.ResolveAggregate(r.Context(), filter, from, to)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidRange):
			h.logger.Warn("GET /venues/schedule - Invalid range: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, scheduleService.ErrRangeTooWide):
			h.logger.Warn("GET /venues/schedule - Range too wide: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		default:
			h.logger.Error("GET /venues/schedule - Failed to resolve aggregate: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/schedule - Aggregate resolved: from=%s, to=%s, days_count=%d",
		fromStr, toStr, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromResolvedAggregate(fromStr, toStr, days))
}
