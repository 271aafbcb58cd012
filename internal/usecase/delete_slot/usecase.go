package delete_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// UseCase use case скрытия слота на конкретную дату
//
// Удаление двухфазное: сначала вырезается date-specific переопределение
// цены для этого слота. Слот остается видимым только когда его после этого
// покрывает recurring правило корта или площадки - тогда он возвращается к
// цене правила. Во всех остальных случаях (базовый слот, recurring слот,
// снятое переопределение без recurring покрытия) добавляется маска
// недоступности на одну дату, чтобы слот пропал из выдачи
type UseCase struct {
	catalog     CatalogClient
	globalRules GlobalRuleRepository
	cache       ScheduleCache // nil, если кэш выключен
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogClient, globalRules GlobalRuleRepository, cache ScheduleCache, logger Logger) *UseCase {
	return &UseCase{
		catalog:     catalog,
		globalRules: globalRules,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет скрытие слота для одного корта или по фильтру
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteSlot: user=%d, date=%s, slot=%s-%s",
		req.UserID, req.Date, req.SlotFrom, req.SlotTo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Глобальные recurring правила читаются один раз на запрос:
	// они решают, нужна ли маска после снятия переопределения
	globals, err := uc.globalRules.List(ctx)
	if err != nil {
		uc.logger.Error("DeleteSlot: failed to list global conditions: %v", err)
		return nil, fmt.Errorf("%w: failed to list global conditions: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:     req.Date,
		SlotFrom: req.SlotFrom,
		SlotTo:   req.SlotTo,
	}

	// 3. Одиночный режим: ошибка пробрасывается вызывающему как есть
	if req.CourtID != nil {
		version, err := uc.applyToCourt(ctx, *req.CourtID, req, globals)
		if err != nil {
			uc.logger.Error("DeleteSlot: court=%d failed: %v", *req.CourtID, err)
			return nil, uc.mapCourtError(err)
		}

		resp.Applied = 1
		resp.Results = []CourtResult{{CourtID: *req.CourtID, Updated: true, Version: version}}
		return resp, nil
	}

	// 4. Массовый режим: целевые корты по фильтру, только активные
	targets, err := uc.resolveTargets(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	// 5. Каждый корт обрабатывается независимо, без отката уже
	// записанных правок
	for _, courtID := range targets {
		version, err := uc.applyToCourt(ctx, courtID, req, globals)
		if err != nil {
			uc.logger.Error("DeleteSlot: court=%d failed: %v", courtID, err)
			resp.Failed++
			resp.Results = append(resp.Results, CourtResult{CourtID: courtID, Error: err.Error()})
			continue
		}

		resp.Applied++
		resp.Results = append(resp.Results, CourtResult{CourtID: courtID, Updated: true, Version: version})
	}

	if resp.Applied == 0 {
		uc.logger.Error("DeleteSlot: all %d target courts failed", resp.Failed)
		return nil, ErrAllTargetsFailed
	}

	uc.logger.Info("DeleteSlot: applied to %d courts, failed for %d", resp.Applied, resp.Failed)
	return resp, nil
}

// applyToCourt выполняет цикл чтение-правка-запись-перечитывание для одного корта
func (uc *UseCase) applyToCourt(ctx context.Context, courtID int64, req *Request, globals []domain.PriceCondition) (int64, error) {
	// Свежее чтение обязательно: устаревшее клиентское состояние
	// не должно попасть обратно в каталог
	court, err := uc.catalog.GetCourt(ctx, courtID)
	if err != nil {
		return 0, err
	}

	edited := court.Clone()

	// Фаза 1: вырезаем date-specific переопределение цены этого слота
	var stripped bool
	edited.PriceConditions, stripped = domain.StripDateCoverage(edited.PriceConditions, req.Date, req.SlotFrom, req.SlotTo)

	// Фаза 2: слот скрывается маской недоступности на одну дату.
	// Маска не нужна только когда снятое переопределение возвращает
	// слот действующему recurring правилу - иначе удаленный слот
	// всплыл бы обратно по базовой цене
	covered := domain.HasRecurringCoverage(edited.PriceConditions, req.Date, req.SlotFrom) ||
		domain.HasRecurringCoverage(globals, req.Date, req.SlotFrom)
	if !stripped || !covered {
		edited.UnavailabilitySlots = append(edited.UnavailabilitySlots, domain.UnavailabilityException{
			Scope: domain.ScopeDateSpecific,
			Dates: []types.DateString{req.Date},
			Times: []types.TimeString{req.SlotFrom},
		})
	}

	if _, err := uc.catalog.UpdateCourt(ctx, &edited); err != nil {
		return 0, err
	}

	// Перечитываем запись: локальное состояние заменяется серверной правдой
	verified, err := uc.catalog.GetCourt(ctx, courtID)
	if err != nil {
		return 0, fmt.Errorf("update persisted but verification read failed: %w", err)
	}

	if uc.cache != nil {
		uc.cache.DeleteDay(ctx, courtID, req.Date)
	}

	return verified.Version, nil
}

// resolveTargets возвращает список ID активных кортов по фильтру
func (uc *UseCase) resolveTargets(ctx context.Context, filter *domain.CourtFilter) ([]int64, error) {
	courts, err := uc.catalog.ListCourts(ctx, *filter)
	if err != nil {
		uc.logger.Error("DeleteSlot: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	targets := make([]int64, 0, len(courts))
	for i := range courts {
		if courts[i].IsActive {
			targets = append(targets, courts[i].ID)
		}
	}

	if len(targets) == 0 {
		uc.logger.Warn("DeleteSlot: no active courts matched the filter")
		return nil, ErrNoCourtsMatched
	}

	return targets, nil
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
