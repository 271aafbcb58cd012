package domain

import "github.com/m04kA/SMC-CourtScheduleService/pkg/types"

// SlotOrigin identifies which layer produced a resolved slot's price
type SlotOrigin string

const (
	// OriginDefault base slot at the court's default price
	OriginDefault SlotOrigin = "default"
	// OriginRecurringOverride price set by a weekday rule
	OriginRecurringOverride SlotOrigin = "recurring_override"
	// OriginDateSpecificOverride price set by a date rule
	OriginDateSpecificOverride SlotOrigin = "date_specific_override"
)

// ResolvedSlot a bookable slot computed for a single date.
// Never persisted; recomputed on every view.
// CourtIDs is populated only in the aggregate (bulk) view.
type ResolvedSlot struct {
	SlotFrom types.TimeString
	SlotTo   types.TimeString
	Price    float64
	Origin   SlotOrigin
	CourtIDs []int64
}

// IsOverride returns true if the slot price came from a condition rather
// than the court's default price
func (s *ResolvedSlot) IsOverride() bool {
	return s.Origin != OriginDefault
}
