package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Service сервис разрешения расписания: превращает конфигурацию
// (рабочие часы + условия + маски) в список доступных слотов с ценами.
// Вычисление чистое и выполняется на каждый запрос; результат по дням
// кэшируется, если кэш включен
type Service struct {
	catalog     CatalogClient
	globalRules GlobalRuleRepository
	cache       ScheduleCache
	granularity int
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
// cache может быть nil - тогда каждое разрешение вычисляется заново
func NewService(
	catalog CatalogClient,
	globalRules GlobalRuleRepository,
	cache ScheduleCache,
	granularityMinutes int,
	logger Logger,
) *Service {
	if granularityMinutes < domain.MinSlotGranularityMinutes || granularityMinutes > domain.MaxSlotGranularityMinutes {
		granularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	return &Service{
		catalog:     catalog,
		globalRules: globalRules,
		cache:       cache,
		granularity: granularityMinutes,
		logger:      logger,
	}
}

// ResolveDay вычисляет слоты корта на одну дату
// Неактивный корт или филиал разрешается в пустой список (как закрытый день)
func (s *Service) ResolveDay(ctx context.Context, courtID int64, date types.DateString) ([]domain.ResolvedSlot, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if s.cache != nil {
		if slots, err := s.cache.GetDay(ctx, courtID, date); err == nil {
			return slots, nil
		}
	}

	court, branch, err := s.fetchCourtWithBranch(ctx, courtID)
	if err != nil {
		return nil, err
	}

	globals, err := s.globalRules.List(ctx)
	if err != nil {
		s.logger.Error("ResolveDay: failed to list global conditions: %v", err)
		return nil, fmt.Errorf("%w: failed to list global conditions: %v", ErrInternal, err)
	}

	slots := s.resolveCourtDay(court, branch, globals, date, false)

	if s.cache != nil {
		if err := s.cache.SetDay(ctx, courtID, date, slots); err != nil {
			s.logger.Warn("ResolveDay: failed to cache slots for court=%d date=%s: %v", courtID, date, err)
		}
	}

	return slots, nil
}

// ResolveRange вычисляет слоты корта на диапазон дат [from, to]
func (s *Service) ResolveRange(ctx context.Context, courtID int64, from, to types.DateString) (map[types.DateString][]domain.ResolvedSlot, error) {
	dates, err := expandRange(from, to)
	if err != nil {
		return nil, err
	}

	court, branch, err := s.fetchCourtWithBranch(ctx, courtID)
	if err != nil {
		return nil, err
	}

	globals, err := s.globalRules.List(ctx)
	if err != nil {
		s.logger.Error("ResolveRange: failed to list global conditions: %v", err)
		return nil, fmt.Errorf("%w: failed to list global conditions: %v", ErrInternal, err)
	}

	result := make(map[types.DateString][]domain.ResolvedSlot, len(dates))
	for _, date := range dates {
		result[date] = s.resolveCourtDay(court, branch, globals, date, false)
	}

	return result, nil
}

// ResolveAggregate вычисляет bulk-представление по всем кортам фильтра:
// на каждую дату учитываются только date-specific условия, строки с
// одинаковыми [slotFrom, slotTo, price] схлопываются в одну с объединением
// кортов. Это "шаблон исключений", а не полное расписание
func (s *Service) ResolveAggregate(ctx context.Context, filter domain.CourtFilter, from, to types.DateString) (map[types.DateString][]domain.ResolvedSlot, error) {
	dates, err := expandRange(from, to)
	if err != nil {
		return nil, err
	}

	courts, err := s.catalog.ListCourts(ctx, filter)
	if err != nil {
		s.logger.Error("ResolveAggregate: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	globals, err := s.globalRules.List(ctx)
	if err != nil {
		s.logger.Error("ResolveAggregate: failed to list global conditions: %v", err)
		return nil, fmt.Errorf("%w: failed to list global conditions: %v", ErrInternal, err)
	}

	result := make(map[types.DateString][]domain.ResolvedSlot, len(dates))
	for _, date := range dates {
		result[date] = s.aggregateDate(courts, globals, date)
	}

	return result, nil
}

// resolveCourtDay разрешает один день одного корта
func (s *Service) resolveCourtDay(court *domain.Court, branch *domain.Branch, globals []domain.PriceCondition, date types.DateString, dateSpecificOnly bool) []domain.ResolvedSlot {
	if !court.IsActive || !branch.IsActive {
		return []domain.ResolvedSlot{}
	}

	weekday, err := date.Weekday()
	if err != nil {
		return []domain.ResolvedSlot{}
	}

	slots := resolveDaySlots(resolveOptions{
		date:             date,
		hours:            branch.OpeningHours.ForWeekday(weekday),
		defaultPrice:     court.DefaultPrice,
		granularity:      s.granularity,
		globalConditions: globals,
		courtConditions:  court.PriceConditions,
		exceptions:       court.UnavailabilitySlots,
		dateSpecificOnly: dateSpecificOnly,
		log:              s.logger,
	})
	if slots == nil {
		slots = []domain.ResolvedSlot{}
	}

	return slots
}

// aggregateKey ключ группировки bulk-представления
type aggregateKey struct {
	from  types.TimeString
	to    types.TimeString
	price float64
}

// aggregateDate собирает bulk-представление одной даты
func (s *Service) aggregateDate(courts []domain.Court, globals []domain.PriceCondition, date types.DateString) []domain.ResolvedSlot {
	grouped := make(map[aggregateKey]*domain.ResolvedSlot)

	for i := range courts {
		court := &courts[i]
		if !court.IsActive {
			continue
		}

		slots := resolveDaySlots(resolveOptions{
			date:             date,
			defaultPrice:     court.DefaultPrice,
			granularity:      s.granularity,
			globalConditions: globals,
			courtConditions:  court.PriceConditions,
			exceptions:       court.UnavailabilitySlots,
			dateSpecificOnly: true,
			log:              s.logger,
		})

		for _, slot := range slots {
			key := aggregateKey{from: slot.SlotFrom, to: slot.SlotTo, price: slot.Price}
			row, ok := grouped[key]
			if !ok {
				row = &domain.ResolvedSlot{
					SlotFrom: slot.SlotFrom,
					SlotTo:   slot.SlotTo,
					Price:    slot.Price,
					Origin:   slot.Origin,
				}
				grouped[key] = row
			}
			row.CourtIDs = append(row.CourtIDs, court.ID)
		}
	}

	rows := make([]domain.ResolvedSlot, 0, len(grouped))
	for _, row := range grouped {
		sort.Slice(row.CourtIDs, func(i, j int) bool { return row.CourtIDs[i] < row.CourtIDs[j] })
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SlotFrom != rows[j].SlotFrom {
			return rows[i].SlotFrom.IsBefore(rows[j].SlotFrom)
		}
		return rows[i].Price < rows[j].Price
	})

	return rows
}

// fetchCourtWithBranch получает корт и его филиал из каталога
func (s *Service) fetchCourtWithBranch(ctx context.Context, courtID int64) (*domain.Court, *domain.Branch, error) {
	court, err := s.catalog.GetCourt(ctx, courtID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCourtNotFound) {
			return nil, nil, ErrCourtNotFound
		}
		s.logger.Error("fetchCourtWithBranch: failed to get court id=%d: %v", courtID, err)
		return nil, nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	branch, err := s.catalog.GetBranch(ctx, court.BranchID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBranchNotFound) {
			return nil, nil, ErrBranchNotFound
		}
		s.logger.Error("fetchCourtWithBranch: failed to get branch id=%d: %v", court.BranchID, err)
		return nil, nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	return court, branch, nil
}

// expandRange валидирует диапазон и раскрывает его в список дат
func expandRange(from, to types.DateString) ([]types.DateString, error) {
	if err := from.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if err := to.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if from.IsAfter(to) {
		return nil, ErrInvalidRange
	}

	var dates []types.DateString
	current := from
	for !current.IsAfter(to) {
		dates = append(dates, current)
		if len(dates) > domain.MaxRangeDays {
			return nil, fmt.Errorf("%w: at most %d days per request", ErrRangeTooWide, domain.MaxRangeDays)
		}
		next, err := current.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		current = next
	}

	return dates, nil
}
