package update_weekly_template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
)

// UseCase use case правки недельного шаблона цен корта
//
// Шаблон выражается recurring правилами в записи корта. Add сливает дни
// в существующее правило с теми же границами и ценой или добавляет новое,
// remove сужает или удаляет правила. Date-specific правила не трогаются
type UseCase struct {
	catalog CatalogClient
	cache   ScheduleCache // nil, если кэш выключен
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogClient, cache ScheduleCache, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// Execute выполняет правку недельного шаблона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateWeeklyTemplate: user=%d, court=%d, action=%s, days=%v, slot=%s-%s",
		req.UserID, req.CourtID, req.Action, req.Days, req.SlotFrom, req.SlotTo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateWeeklyTemplate: validation failed: %v", err)
		return nil, err
	}

	days := domain.WeekdaysFromNames(req.Days)

	// 2. Свежее чтение записи корта
	court, err := uc.catalog.GetCourt(ctx, req.CourtID)
	if err != nil {
		uc.logger.Error("UpdateWeeklyTemplate: court=%d fetch failed: %v", req.CourtID, err)
		return nil, uc.mapCourtError(err)
	}

	edited := court.Clone()

	// 3. Правка массива recurring правил
	switch req.Action {
	case ActionAdd:
		edited.PriceConditions = domain.MergeRecurringDays(
			edited.PriceConditions, days, req.SlotFrom, req.SlotTo, req.Price, uuid.NewString())
	case ActionRemove:
		var changed bool
		edited.PriceConditions, changed = domain.RemoveRecurringDays(
			edited.PriceConditions, days, req.SlotFrom, req.SlotTo)
		if !changed {
			uc.logger.Warn("UpdateWeeklyTemplate: court=%d, nothing matched for remove", req.CourtID)
			return nil, ErrNothingToRemove
		}
	}

	// 4. Полная запись и перечитывание серверной правды
	if _, err := uc.catalog.UpdateCourt(ctx, &edited); err != nil {
		uc.logger.Error("UpdateWeeklyTemplate: court=%d update failed: %v", req.CourtID, err)
		return nil, uc.mapCourtError(err)
	}

	verified, err := uc.catalog.GetCourt(ctx, req.CourtID)
	if err != nil {
		uc.logger.Error("UpdateWeeklyTemplate: court=%d verification read failed: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: update persisted but verification read failed: %v", ErrInternal, err)
	}

	// Recurring правило влияет на все будущие даты, сбрасываем кэш
	// корта целиком
	if uc.cache != nil {
		uc.cache.DeleteCourt(ctx, req.CourtID)
	}

	uc.logger.Info("UpdateWeeklyTemplate: court=%d updated, version=%d", req.CourtID, verified.Version)
	return &Response{CourtID: req.CourtID, Version: verified.Version}, nil
}

// mapCourtError мапит ошибки клиента каталога в sentinel ошибки use case
func (uc *UseCase) mapCourtError(err error) error {
	switch {
	case errors.Is(err, catalogClient.ErrCourtNotFound):
		return ErrCourtNotFound
	case errors.Is(err, catalogClient.ErrVersionConflict):
		return ErrVersionConflict
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
