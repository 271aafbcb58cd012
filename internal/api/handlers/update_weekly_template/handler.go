package update_weekly_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduleService/internal/api/middleware"
	updateWeeklyTemplate "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/update_weekly_template"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCourtID     = "некорректный ID корта"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgInvalidInput       = "некорректные параметры шаблона"
	msgCourtNotFound      = "корт не найден"
	msgNothingToRemove    = "ни одно правило не подошло под указанные дни и слот"
	msgVersionConflict    = "корт был изменен параллельно, повторите запрос"
)

type Handler struct {
	useCase UpdateWeeklyTemplateUseCase
	logger  Logger
}

func NewHandler(useCase UpdateWeeklyTemplateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/courts/{courtId}/weekly-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /courts/{id}/weekly-template - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /courts/{id}/weekly-template - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req UpdateWeeklyTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/{id}/weekly-template - Invalid request body: court_id=%d, error=%v", courtID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, courtID))
	if err != nil {
		switch {
		case errors.Is(err, updateWeeklyTemplate.ErrInvalidInput):
			h.logger.Warn("PUT /courts/{id}/weekly-template - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateWeeklyTemplate.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/{id}/weekly-template - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateWeeklyTemplate.ErrNothingToRemove):
			h.logger.Warn("PUT /courts/{id}/weekly-template - Nothing to remove: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgNothingToRemove)

		case errors.Is(err, updateWeeklyTemplate.ErrVersionConflict):
			h.logger.Warn("PUT /courts/{id}/weekly-template - Version conflict: court_id=%d", courtID)
			handlers.RespondConflict(w, msgVersionConflict)

		default:
			h.logger.Error("PUT /courts/{id}/weekly-template - Failed to update template: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id}/weekly-template - Template updated: court_id=%d, action=%s, version=%d",
		courtID, req.Action, result.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
