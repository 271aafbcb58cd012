package get_court_schedule

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// SlotResponse один слот расписания в HTTP ответе
type SlotResponse struct {
	SlotFrom string  `json:"slotFrom"`
	SlotTo   string  `json:"slotTo"`
	Price    float64 `json:"price"`
	Origin   string  `json:"origin"`
}

// ScheduleResponse расписание корта на одну дату
type ScheduleResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// FromResolvedSlots конвертирует результат сервиса в HTTP ответ
func FromResolvedSlots(courtID int64, date string, slots []domain.ResolvedSlot) *ScheduleResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			SlotFrom: s.SlotFrom.String(),
			SlotTo:   s.SlotTo.String(),
			Price:    s.Price,
			Origin:   string(s.Origin),
		})
	}

	return &ScheduleResponse{
		CourtID: courtID,
		Date:    date,
		Slots:   out,
	}
}
