package upsert_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduleService/internal/api/middleware"
	upsertSlot "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/upsert_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgInvalidInput       = "некорректные параметры правки"
	msgCourtNotFound      = "корт не найден"
	msgNoCourtsMatched    = "фильтр не нашел ни одного активного корта"
	msgVersionConflict    = "корт был изменен параллельно, повторите запрос"
	msgAllTargetsFailed   = "правка не применилась ни к одному корту"
)

type Handler struct {
	useCase UpsertSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpsertSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule/slots - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpsertSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, upsertSlot.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/slots - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, upsertSlot.ErrCourtNotFound):
			h.logger.Warn("PUT /schedule/slots - Court not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, upsertSlot.ErrNoCourtsMatched):
			h.logger.Warn("PUT /schedule/slots - No courts matched: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoCourtsMatched)

		case errors.Is(err, upsertSlot.ErrVersionConflict):
			h.logger.Warn("PUT /schedule/slots - Version conflict: user_id=%d", userID)
			handlers.RespondConflict(w, msgVersionConflict)

		case errors.Is(err, upsertSlot.ErrAllTargetsFailed):
			h.logger.Error("PUT /schedule/slots - All targets failed: user_id=%d", userID)
			handlers.RespondError(w, http.StatusBadGateway, msgAllTargetsFailed)

		default:
			h.logger.Error("PUT /schedule/slots - Failed to upsert slot: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/slots - Slot upserted: user_id=%d, date=%s, applied=%d, failed=%d",
		userID, req.Date, result.Applied, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
