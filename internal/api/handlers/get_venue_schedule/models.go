package get_venue_schedule

import (
	"sort"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// AggregateSlotResponse слот агрегированного расписания: одинаковые
// по границам и цене переопределения разных кортов слиты в одну запись
type AggregateSlotResponse struct {
	SlotFrom string  `json:"slotFrom"`
	SlotTo   string  `json:"slotTo"`
	Price    float64 `json:"price"`
	CourtIDs []int64 `json:"courtIds"`
}

// AggregateDayResponse агрегированные переопределения на одну дату
type AggregateDayResponse struct {
	Date  string                  `json:"date"`
	Slots []AggregateSlotResponse `json:"slots"`
}

// AggregateResponse агрегированное расписание кортов города/филиала
type AggregateResponse struct {
	From string                 `json:"from"`
	To   string                 `json:"to"`
	Days []AggregateDayResponse `json:"days"`
}

// FromResolvedAggregate конвертирует результат сервиса в HTTP ответ,
// дни упорядочены по дате
func FromResolvedAggregate(from, to string, days map[types.DateString][]domain.ResolvedSlot) *AggregateResponse {
	dates := make([]types.DateString, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	out := make([]AggregateDayResponse, 0, len(dates))
	for _, d := range dates {
		slots := make([]AggregateSlotResponse, 0, len(days[d]))
		for _, s := range days[d] {
			slots = append(slots, AggregateSlotResponse{
				SlotFrom: s.SlotFrom.String(),
				SlotTo:   s.SlotTo.String(),
				Price:    s.Price,
				CourtIDs: s.CourtIDs,
			})
		}
		out = append(out, AggregateDayResponse{Date: d.String(), Slots: slots})
	}

	return &AggregateResponse{
		From: from,
		To:   to,
		Days: out,
	}
}
