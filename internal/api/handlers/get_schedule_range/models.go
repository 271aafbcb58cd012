package get_schedule_range

import (
	"sort"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// SlotResponse один слот расписания в HTTP ответе
type SlotResponse struct {
	SlotFrom string  `json:"slotFrom"`
	SlotTo   string  `json:"slotTo"`
	Price    float64 `json:"price"`
	Origin   string  `json:"origin"`
}

// DayResponse расписание корта на одну дату диапазона
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// RangeResponse расписание корта на диапазон дат
type RangeResponse struct {
	CourtID int64         `json:"courtId"`
	From    string        `json:"from"`
	To      string        `json:"to"`
	Days    []DayResponse `json:"days"`
}

// FromResolvedRange конвертирует результат сервиса в HTTP ответ,
// дни упорядочены по дате
func FromResolvedRange(courtID int64, from, to string, days map[types.DateString][]domain.ResolvedSlot) *RangeResponse {
	dates := make([]types.DateString, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	out := make([]DayResponse, 0, len(dates))
	for _, d := range dates {
		slots := make([]SlotResponse, 0, len(days[d]))
		for _, s := range days[d] {
			slots = append(slots, SlotResponse{
				SlotFrom: s.SlotFrom.String(),
				SlotTo:   s.SlotTo.String(),
				Price:    s.Price,
				Origin:   string(s.Origin),
			})
		}
		out = append(out, DayResponse{Date: d.String(), Slots: slots})
	}

	return &RangeResponse{
		CourtID: courtID,
		From:    from,
		To:      to,
		Days:    out,
	}
}
