package domain

import "time"

// DaySchedule working hours of a branch for a single weekday
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *string // "HH:MM", nil when the branch is closed that day
	CloseTime *string // "HH:MM", nil when the branch is closed that day
}

// OpeningHours per-weekday working hours of a branch.
// Read-only input to the resolution engine.
type OpeningHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday returns the schedule for the given weekday
func (h OpeningHours) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Branch a venue location owning opening hours for its courts
type Branch struct {
	ID           int64
	CityID       int64
	Name         string
	OpeningHours OpeningHours
	IsActive     bool
}

// Court a bookable court with its rule arrays.
// PriceConditions and UnavailabilitySlots are the only two collections the
// engine mutates; every other field is carried through updates unchanged
// because the catalog API replaces the full record.
type Court struct {
	ID                  int64
	BranchID            int64
	Name                string
	Description         *string
	Surface             *string
	Amenities           []string
	MediaURLs           []string
	Terms               *string
	DefaultPrice        float64
	PriceConditions     []PriceCondition
	UnavailabilitySlots []UnavailabilityException
	IsActive            bool
	Version             int64 // conditional-write token, echoed back on update
}

// Clone returns a deep copy of the court.
// Mutation flows edit a copy and persist it, never the fetched record.
func (c *Court) Clone() Court {
	clone := *c
	clone.Amenities = append([]string(nil), c.Amenities...)
	clone.MediaURLs = append([]string(nil), c.MediaURLs...)
	clone.PriceConditions = make([]PriceCondition, 0, len(c.PriceConditions))
	for i := range c.PriceConditions {
		clone.PriceConditions = append(clone.PriceConditions, c.PriceConditions[i].Clone())
	}
	clone.UnavailabilitySlots = make([]UnavailabilityException, 0, len(c.UnavailabilitySlots))
	for i := range c.UnavailabilitySlots {
		clone.UnavailabilitySlots = append(clone.UnavailabilitySlots, c.UnavailabilitySlots[i].Clone())
	}
	return clone
}

// CourtFilter selects courts for bulk operations and aggregate views
type CourtFilter struct {
	CityID   *int64
	BranchID *int64
}
