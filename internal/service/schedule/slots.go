package schedule

import (
	"errors"
	"sort"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// workingSlot слот в процессе сборки вместе с приоритетом источника
type workingSlot struct {
	slot domain.ResolvedSlot
	tier domain.PrecedenceTier
}

// resolveOptions вход одного разрешения для одной даты одного корта
type resolveOptions struct {
	date             types.DateString
	hours            domain.DaySchedule
	defaultPrice     float64
	granularity      int
	globalConditions []domain.PriceCondition
	courtConditions  []domain.PriceCondition
	exceptions       []domain.UnavailabilityException

	// dateSpecificOnly - режим bulk-представления: учитываются только
	// date-specific условия, базовые слоты не генерируются
	dateSpecificOnly bool

	log Logger
}

// resolveDaySlots вычисляет итоговый список слотов на дату
//
// Слияние идет по явным приоритетам (tier): date-specific условие корта >
// recurring условие корта > date-specific глобальное > recurring глобальное >
// базовый слот. При равном приоритете побеждает более поздняя запись массива.
// Маски недоступности применяются последними и скрывают слот безусловно:
// скрытый слот не откатывается к дефолтной цене
func resolveDaySlots(opts resolveOptions) []domain.ResolvedSlot {
	working := make(map[types.TimeString]workingSlot)

	// Шаг 1: базовые слоты из рабочих часов филиала по дефолтной цене
	if !opts.dateSpecificOnly {
		generateBaseSlots(working, opts.hours, opts.defaultPrice, opts.granularity)
	}

	// Шаг 2: накатываем ценовые условия по приоритетам
	applyConditions(working, opts.globalConditions, true, opts)
	applyConditions(working, opts.courtConditions, false, opts)

	// Шаг 3: маски недоступности - всегда последними и безусловно
	applyExceptions(working, opts)

	// Шаг 4: сортировка по времени начала
	slots := make([]domain.ResolvedSlot, 0, len(working))
	for _, ws := range working {
		slots = append(slots, ws.slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotFrom.IsBefore(slots[j].SlotFrom)
	})

	return slots
}

// generateBaseSlots раскрывает рабочие часы дня в слоты по defaultPrice
// Если день закрыт или часы не заданы - слотов нет.
// Границы усекаются вниз до granularity: дробные часы открытия не поддерживаются
func generateBaseSlots(working map[types.TimeString]workingSlot, hours domain.DaySchedule, defaultPrice float64, granularity int) {
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return
	}

	openTime, err := types.NewTimeStringFromString(*hours.OpenTime)
	if err != nil {
		return
	}
	closeTime, err := types.NewTimeStringFromString(*hours.CloseTime)
	if err != nil {
		return
	}

	for _, sub := range splitIntoSubRanges(openTime, closeTime, granularity) {
		working[sub.from] = workingSlot{
			slot: domain.ResolvedSlot{
				SlotFrom: sub.from,
				SlotTo:   sub.to,
				Price:    defaultPrice,
				Origin:   domain.OriginDefault,
			},
			tier: domain.TierDefault,
		}
	}
}

// applyConditions накатывает слой условий на рабочую карту слотов
// Некорректное условие пропускается: одно битое правило не должно
// обнулить весь календарь
func applyConditions(working map[types.TimeString]workingSlot, conditions []domain.PriceCondition, isGlobal bool, opts resolveOptions) {
	for i := range conditions {
		cond := &conditions[i]

		if err := cond.Validate(); err != nil {
			if opts.log != nil && errors.Is(err, domain.ErrMalformedCondition) {
				opts.log.Warn("resolveDaySlots: skipping malformed condition id=%s", cond.ID)
			}
			continue
		}

		if opts.dateSpecificOnly && cond.Scope != domain.ScopeDateSpecific {
			continue
		}

		if !cond.AppliesOn(opts.date) {
			continue
		}

		tier := cond.Tier(isGlobal)
		origin := domain.OriginRecurringOverride
		if cond.Scope == domain.ScopeDateSpecific {
			origin = domain.OriginDateSpecificOverride
		}

		// Условие может покрывать часы вне окна работы филиала:
		// слот все равно появляется, ценовые правила авторитетнее рабочих часов
		for _, sub := range splitIntoSubRanges(cond.SlotFrom, cond.SlotTo, opts.granularity) {
			existing, ok := working[sub.from]
			if ok && existing.tier > tier {
				continue
			}
			working[sub.from] = workingSlot{
				slot: domain.ResolvedSlot{
					SlotFrom: sub.from,
					SlotTo:   sub.to,
					Price:    cond.Price,
					Origin:   origin,
				},
				tier: tier,
			}
		}
	}
}

// applyExceptions убирает слоты, начало которых попадает под маску недоступности
func applyExceptions(working map[types.TimeString]workingSlot, opts resolveOptions) {
	for i := range opts.exceptions {
		exc := &opts.exceptions[i]

		if err := exc.Validate(); err != nil {
			if opts.log != nil {
				opts.log.Warn("resolveDaySlots: skipping malformed unavailability exception")
			}
			continue
		}

		if !exc.AppliesOn(opts.date) {
			continue
		}

		for _, t := range exc.Times {
			start, err := t.Truncate(opts.granularity)
			if err != nil {
				continue
			}
			delete(working, start)
		}
	}
}

// subRange интервал [from, to) длиной granularity минут
type subRange struct {
	from types.TimeString
	to   types.TimeString
}

// splitIntoSubRanges разбивает [from, to) на интервалы по granularity минут
// Начало усекается вниз до границы granularity; хвост короче granularity
// отбрасывается. Инвертированный интервал (from >= to) дает пустой результат
func splitIntoSubRanges(from, to types.TimeString, granularity int) []subRange {
	if granularity <= 0 {
		return nil
	}

	start, err := from.Truncate(granularity)
	if err != nil {
		return nil
	}

	var ranges []subRange
	for {
		end, err := start.AddMinutes(granularity)
		if err != nil {
			// Вышли за границу суток
			break
		}
		if end.IsAfter(to) {
			break
		}
		ranges = append(ranges, subRange{from: start, to: end})
		start = end
	}

	return ranges
}
