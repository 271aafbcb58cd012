package delete_slot

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	deleteSlot "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/delete_slot"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// CourtFilterRequest фильтр кортов для bulk-правки
type CourtFilterRequest struct {
	CityID   *int64 `json:"cityId,omitempty"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// DeleteSlotRequest HTTP request model
type DeleteSlotRequest struct {
	Date     string              `json:"date"`     // "2026-09-15"
	SlotFrom string              `json:"slotFrom"` // "10:00"
	SlotTo   string              `json:"slotTo"`   // "11:00"
	CourtID  *int64              `json:"courtId,omitempty"`
	Filter   *CourtFilterRequest `json:"filter,omitempty"`
}

// CourtResultResponse результат правки одного корта
type CourtResultResponse struct {
	CourtID int64  `json:"courtId"`
	Updated bool   `json:"updated"`
	Version int64  `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// DeleteSlotResponse HTTP response model
type DeleteSlotResponse struct {
	Date     string                `json:"date"`
	SlotFrom string                `json:"slotFrom"`
	SlotTo   string                `json:"slotTo"`
	Applied  int                   `json:"applied"`
	Failed   int                   `json:"failed"`
	Results  []CourtResultResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DeleteSlotRequest) ToUseCaseRequest(userID int64) *deleteSlot.Request {
	req := &deleteSlot.Request{
		UserID:   userID,
		Date:     types.DateString(r.Date),
		SlotFrom: types.TimeString(r.SlotFrom),
		SlotTo:   types.TimeString(r.SlotTo),
		CourtID:  r.CourtID,
	}
	if r.Filter != nil {
		req.Filter = &domain.CourtFilter{
			CityID:   r.Filter.CityID,
			BranchID: r.Filter.BranchID,
		}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteSlot.Response) *DeleteSlotResponse {
	results := make([]CourtResultResponse, 0, len(resp.Results))
	for _, res := range resp.Results {
		results = append(results, CourtResultResponse{
			CourtID: res.CourtID,
			Updated: res.Updated,
			Version: res.Version,
			Error:   res.Error,
		})
	}

	return &DeleteSlotResponse{
		Date:     resp.Date.String(),
		SlotFrom: resp.SlotFrom.String(),
		SlotTo:   resp.SlotTo.String(),
		Applied:  resp.Applied,
		Failed:   resp.Failed,
		Results:  results,
	}
}
