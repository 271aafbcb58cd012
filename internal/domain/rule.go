package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// ConditionScope defines how a rule selects the dates it applies to
type ConditionScope string

const (
	// ScopeRecurring rule is keyed by weekday and applies every week
	ScopeRecurring ConditionScope = "recurring"
	// ScopeDateSpecific rule is keyed by explicit calendar dates
	ScopeDateSpecific ConditionScope = "date_specific"
)

// PrecedenceTier explicit rank of a condition in the resolution merge.
// A higher tier always wins over a lower one; within the same tier the
// later array entry wins.
type PrecedenceTier int

const (
	TierDefault            PrecedenceTier = iota // base slot at the court's default price
	TierGlobalRecurring                          // venue-wide weekday rule
	TierGlobalDateSpecific                       // venue-wide date rule
	TierCourtRecurring                           // court weekday rule
	TierCourtDateSpecific                        // court date rule
)

var (
	// ErrMalformedCondition возвращается для правила с некорректным набором
	// дней/дат или инвертированным интервалом времени
	ErrMalformedCondition = errors.New("malformed price condition")

	// ErrMalformedException возвращается для некорректной маски недоступности
	ErrMalformedException = errors.New("malformed unavailability exception")
)

// PriceCondition is a price rule for a contiguous time range.
// Exactly one of Days/Dates is non-empty, matching Scope.
type PriceCondition struct {
	ID       string
	Scope    ConditionScope
	Days     []time.Weekday
	Dates    []types.DateString
	SlotFrom types.TimeString
	SlotTo   types.TimeString
	Price    float64
}

// Validate checks the days/dates invariant and the time range.
// The resolver skips invalid conditions instead of failing the resolution.
func (c *PriceCondition) Validate() error {
	switch c.Scope {
	case ScopeRecurring:
		if len(c.Days) == 0 || len(c.Dates) != 0 {
			return ErrMalformedCondition
		}
	case ScopeDateSpecific:
		if len(c.Dates) == 0 || len(c.Days) != 0 {
			return ErrMalformedCondition
		}
	default:
		return ErrMalformedCondition
	}

	if err := c.SlotFrom.Validate(); err != nil {
		return ErrMalformedCondition
	}
	if err := c.SlotTo.Validate(); err != nil {
		return ErrMalformedCondition
	}
	for _, d := range c.Dates {
		if err := d.Validate(); err != nil {
			return ErrMalformedCondition
		}
	}
	return nil
}

// AppliesOn returns true if the condition covers the given date
func (c *PriceCondition) AppliesOn(date types.DateString) bool {
	switch c.Scope {
	case ScopeRecurring:
		weekday, err := date.Weekday()
		if err != nil {
			return false
		}
		for _, d := range c.Days {
			if d == weekday {
				return true
			}
		}
	case ScopeDateSpecific:
		for _, d := range c.Dates {
			if d == date {
				return true
			}
		}
	}
	return false
}

// CoversStart returns true if the condition applies on date and its time
// range contains a slot starting at start
func (c *PriceCondition) CoversStart(date types.DateString, start types.TimeString) bool {
	if !c.AppliesOn(date) {
		return false
	}
	return !start.IsBefore(c.SlotFrom) && start.IsBefore(c.SlotTo)
}

// Tier returns the explicit precedence tier of the condition.
// isGlobal distinguishes venue-wide conditions from court-level ones.
func (c *PriceCondition) Tier(isGlobal bool) PrecedenceTier {
	if isGlobal {
		if c.Scope == ScopeDateSpecific {
			return TierGlobalDateSpecific
		}
		return TierGlobalRecurring
	}
	if c.Scope == ScopeDateSpecific {
		return TierCourtDateSpecific
	}
	return TierCourtRecurring
}

// Clone returns a deep copy of the condition.
// Mutations never edit a condition in place; they replace it with a copy.
func (c *PriceCondition) Clone() PriceCondition {
	clone := *c
	clone.Days = append([]time.Weekday(nil), c.Days...)
	clone.Dates = append([]types.DateString(nil), c.Dates...)
	return clone
}

// UnavailabilityException is a removal mask: a resolved slot whose start
// time matches is hidden regardless of which layer produced it.
type UnavailabilityException struct {
	Scope ConditionScope
	Days  []time.Weekday
	Dates []types.DateString
	Times []types.TimeString
}

// Validate checks the days/dates invariant and the time set
func (e *UnavailabilityException) Validate() error {
	switch e.Scope {
	case ScopeRecurring:
		if len(e.Days) == 0 || len(e.Dates) != 0 {
			return ErrMalformedException
		}
	case ScopeDateSpecific:
		if len(e.Dates) == 0 || len(e.Days) != 0 {
			return ErrMalformedException
		}
	default:
		return ErrMalformedException
	}

	if len(e.Times) == 0 {
		return ErrMalformedException
	}
	for _, t := range e.Times {
		if err := t.Validate(); err != nil {
			return ErrMalformedException
		}
	}
	return nil
}

// AppliesOn returns true if the exception covers the given date
func (e *UnavailabilityException) AppliesOn(date types.DateString) bool {
	switch e.Scope {
	case ScopeRecurring:
		weekday, err := date.Weekday()
		if err != nil {
			return false
		}
		for _, d := range e.Days {
			if d == weekday {
				return true
			}
		}
	case ScopeDateSpecific:
		for _, d := range e.Dates {
			if d == date {
				return true
			}
		}
	}
	return false
}

// Masks returns true if the exception hides a slot starting at start on date
func (e *UnavailabilityException) Masks(date types.DateString, start types.TimeString) bool {
	if !e.AppliesOn(date) {
		return false
	}
	for _, t := range e.Times {
		if t == start {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the exception
func (e *UnavailabilityException) Clone() UnavailabilityException {
	clone := *e
	clone.Days = append([]time.Weekday(nil), e.Days...)
	clone.Dates = append([]types.DateString(nil), e.Dates...)
	clone.Times = append([]types.TimeString(nil), e.Times...)
	return clone
}
