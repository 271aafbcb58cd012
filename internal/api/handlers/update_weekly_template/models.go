package update_weekly_template

import (
	updateWeeklyTemplate "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/update_weekly_template"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// UpdateWeeklyTemplateRequest HTTP request model
type UpdateWeeklyTemplateRequest struct {
	Action   string   `json:"action"`   // "add" | "remove"
	Days     []string `json:"days"`     // ["monday", "friday"]
	SlotFrom string   `json:"slotFrom"` // "10:00"
	SlotTo   string   `json:"slotTo"`   // "11:00"
	Price    float64  `json:"price,omitempty"`
}

// UpdateWeeklyTemplateResponse HTTP response model
type UpdateWeeklyTemplateResponse struct {
	CourtID int64 `json:"courtId"`
	Version int64 `json:"version"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateWeeklyTemplateRequest) ToUseCaseRequest(userID, courtID int64) *updateWeeklyTemplate.Request {
	return &updateWeeklyTemplate.Request{
		UserID:   userID,
		CourtID:  courtID,
		Action:   updateWeeklyTemplate.Action(r.Action),
		Days:     r.Days,
		SlotFrom: types.TimeString(r.SlotFrom),
		SlotTo:   types.TimeString(r.SlotTo),
		Price:    r.Price,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateWeeklyTemplate.Response) *UpdateWeeklyTemplateResponse {
	return &UpdateWeeklyTemplateResponse{
		CourtID: resp.CourtID,
		Version: resp.Version,
	}
}
