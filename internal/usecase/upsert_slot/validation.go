package upsert_slot

import (
	"fmt"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.SlotFrom.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.SlotTo.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.SlotFrom.IsBefore(req.SlotTo) {
		return fmt.Errorf("%w: slotFrom must be before slotTo", ErrInvalidInput)
	}
	if req.Price < domain.MinPrice {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return validateTarget(req.CourtID, req.Filter)
}

// validateTarget проверяет, что задана ровно одна цель правки
func validateTarget(courtID *int64, filter *domain.CourtFilter) error {
	if courtID != nil && filter != nil {
		return fmt.Errorf("%w: courtId and filter are mutually exclusive", ErrInvalidInput)
	}
	if courtID == nil && filter == nil {
		return fmt.Errorf("%w: either courtId or filter is required", ErrInvalidInput)
	}
	if courtID != nil && *courtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if filter != nil && filter.CityID == nil && filter.BranchID == nil {
		return fmt.Errorf("%w: filter must set cityId or branchId", ErrInvalidInput)
	}
	return nil
}
