package update_weekly_template

import (
	"fmt"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if req.Action != ActionAdd && req.Action != ActionRemove {
		return fmt.Errorf("%w: action must be add or remove", ErrInvalidInput)
	}
	if len(req.Days) == 0 {
		return fmt.Errorf("%w: days must not be empty", ErrInvalidInput)
	}
	for _, name := range req.Days {
		if _, ok := domain.WeekdayFromName(name); !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, name)
		}
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
	if req.Action == ActionAdd && req.Price < domain.MinPrice {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
