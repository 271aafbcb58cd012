package upsert_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// UseCase use case установки цены слота на конкретную дату
//
// Правка никогда не изменяет существующую запись правила по месту:
// старое покрытие вырезается из массива, новое date-specific условие
// добавляется в конец. Recurring правила при этом не трогаются - правка
// одной даты не должна затрагивать другие даты
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

// Execute выполняет установку цены слота для одного корта или по фильтру
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpsertSlot: user=%d, date=%s, slot=%s-%s, price=%.2f",
		req.UserID, req.Date, req.SlotFrom, req.SlotTo, req.Price)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpsertSlot: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:     req.Date,
		SlotFrom: req.SlotFrom,
		SlotTo:   req.SlotTo,
		Price:    req.Price,
	}

	// 2. Одиночный режим: ошибка пробрасывается вызывающему как есть
	if req.CourtID != nil {
		version, err := uc.applyToCourt(ctx, *req.CourtID, req)
		if err != nil {
			uc.logger.Error("UpsertSlot: court=%d failed: %v", *req.CourtID, err)
			return nil, uc.mapCourtError(err)
		}

		resp.Applied = 1
		resp.Results = []CourtResult{{CourtID: *req.CourtID, Updated: true, Version: version}}
		return resp, nil
	}

	// 3. Массовый режим: целевые корты по фильтру, только активные
	targets, err := uc.resolveTargets(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	// 4. Каждый корт обрабатывается независимо, без отката уже
	// записанных правок
	for _, courtID := range targets {
		version, err := uc.applyToCourt(ctx, courtID, req)
		if err != nil {
			uc.logger.Error("UpsertSlot: court=%d failed: %v", courtID, err)
			resp.Failed++
			resp.Results = append(resp.Results, CourtResult{CourtID: courtID, Error: err.Error()})
			continue
		}

		resp.Applied++
		resp.Results = append(resp.Results, CourtResult{CourtID: courtID, Updated: true, Version: version})
	}

	if resp.Applied == 0 {
		uc.logger.Error("UpsertSlot: all %d target courts failed", resp.Failed)
		return nil, ErrAllTargetsFailed
	}

	uc.logger.Info("UpsertSlot: applied to %d courts, failed for %d", resp.Applied, resp.Failed)
	return resp, nil
}

// applyToCourt выполняет цикл чтение-правка-запись-перечитывание для одного корта
func (uc *UseCase) applyToCourt(ctx context.Context, courtID int64, req *Request) (int64, error) {
	// Свежее чтение обязательно: устаревшее клиентское состояние
	// не должно попасть обратно в каталог
	court, err := uc.catalog.GetCourt(ctx, courtID)
	if err != nil {
		return 0, err
	}

	edited := court.Clone()

	// Существующее date-specific покрытие этого слота вырезается целиком
	edited.PriceConditions, _ = domain.StripDateCoverage(edited.PriceConditions, req.Date, req.SlotFrom, req.SlotTo)

	// Новое условие ровно на одну дату
	edited.PriceConditions = append(edited.PriceConditions, domain.PriceCondition{
		ID:       uuid.NewString(),
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{req.Date},
		SlotFrom: req.SlotFrom,
		SlotTo:   req.SlotTo,
		Price:    req.Price,
	})

	// Явная установка цены снимает ранее поставленную маску недоступности
	edited.UnavailabilitySlots, _ = domain.StripExceptionMask(edited.UnavailabilitySlots, req.Date, req.SlotFrom)

	// Полная запись: каталог не поддерживает частичные обновления,
	// остальные поля корта уходят без изменений
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
		uc.logger.Error("UpsertSlot: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	targets := make([]int64, 0, len(courts))
	for i := range courts {
		if courts[i].IsActive {
			targets = append(targets, courts[i].ID)
		}
	}

	if len(targets) == 0 {
		uc.logger.Warn("UpsertSlot: no active courts matched the filter")
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
