package upsert_slot

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	upsertSlot "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/upsert_slot"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// CourtFilterRequest фильтр кортов для bulk-правки
type CourtFilterRequest struct {
	CityID   *int64 `json:"cityId,omitempty"`
	BranchID *int64 `json:"branchId,omitempty"`
}

// UpsertSlotRequest HTTP request model
type UpsertSlotRequest struct {
	Date     string              `json:"date"`     // "2026-09-15"
	SlotFrom string              `json:"slotFrom"` // "10:00"
	SlotTo   string              `json:"slotTo"`   // "11:00"
	Price    float64             `json:"price"`
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

// UpsertSlotResponse HTTP response model
type UpsertSlotResponse struct {
	Date     string                `json:"date"`
	SlotFrom string                `json:"slotFrom"`
	SlotTo   string                `json:"slotTo"`
	Price    float64               `json:"price"`
	Applied  int                   `json:"applied"`
	Failed   int                   `json:"failed"`
	Results  []CourtResultResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpsertSlotRequest) ToUseCaseRequest(userID int64) *upsertSlot.Request {
	req := &upsertSlot.Request{
		UserID:   userID,
		Date:     types.DateString(r.Date),
		SlotFrom: types.TimeString(r.SlotFrom),
		SlotTo:   types.TimeString(r.SlotTo),
		Price:    r.Price,
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
func FromUseCaseResponse(resp *upsertSlot.Response) *UpsertSlotResponse {
	results := make([]CourtResultResponse, 0, len(resp.Results))
	for _, res := range resp.Results {
		results = append(results, CourtResultResponse{
			CourtID: res.CourtID,
			Updated: res.Updated,
			Version: res.Version,
			Error:   res.Error,
		})
	}

	return &UpsertSlotResponse{
		Date:     resp.Date.String(),
		SlotFrom: resp.SlotFrom.String(),
		SlotTo:   resp.SlotTo.String(),
		Price:    resp.Price,
		Applied:  resp.Applied,
		Failed:   resp.Failed,
		Results:  results,
	}
}
