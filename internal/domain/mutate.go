package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Rule-array edit primitives used by the mutation flows.
// Entries are immutable once created: an edit removes the old entry and,
// when needed, appends a narrowed or merged copy. Nothing is updated in place.

// StripDateCoverage removes coverage of [date, from, to] from the
// date-specific conditions in the array. A condition whose only date is the
// target is dropped whole; a multi-date condition is replaced by a copy
// without the target date, so other dates stay untouched.
// Returns the new array and whether anything was stripped.
func StripDateCoverage(conditions []PriceCondition, date types.DateString, from, to types.TimeString) ([]PriceCondition, bool) {
	result := make([]PriceCondition, 0, len(conditions))
	stripped := false

	for i := range conditions {
		cond := conditions[i]

		if cond.Scope != ScopeDateSpecific || cond.SlotFrom != from || cond.SlotTo != to || !cond.AppliesOn(date) {
			result = append(result, cond)
			continue
		}

		stripped = true
		if len(cond.Dates) == 1 {
			continue
		}

		narrowed := cond.Clone()
		narrowed.Dates = removeDate(narrowed.Dates, date)
		result = append(result, narrowed)
	}

	return result, stripped
}

// HasRecurringCoverage reports whether any recurring condition in the array
// covers a slot starting at start on date
func HasRecurringCoverage(conditions []PriceCondition, date types.DateString, start types.TimeString) bool {
	for i := range conditions {
		if conditions[i].Scope == ScopeRecurring && conditions[i].CoversStart(date, start) {
			return true
		}
	}
	return false
}

// StripExceptionMask removes any unavailability mask hiding the slot
// starting at from on date. Single-date, single-time entries are dropped
// whole. A wider entry is split: a copy keeps the other dates with the full
// time set, a copy for the target date loses only the target time, so the
// mask stays intact everywhere except [date, from].
// Returns the new array and whether anything was stripped.
func StripExceptionMask(exceptions []UnavailabilityException, date types.DateString, from types.TimeString) ([]UnavailabilityException, bool) {
	result := make([]UnavailabilityException, 0, len(exceptions))
	stripped := false

	for i := range exceptions {
		exc := exceptions[i]

		if exc.Scope != ScopeDateSpecific || !exc.Masks(date, from) {
			result = append(result, exc)
			continue
		}

		stripped = true

		if len(exc.Dates) > 1 {
			others := exc.Clone()
			others.Dates = removeDate(others.Dates, date)
			result = append(result, others)
		}

		if len(exc.Times) > 1 {
			narrowed := exc.Clone()
			narrowed.Dates = []types.DateString{date}
			narrowed.Times = removeTime(narrowed.Times, from)
			result = append(result, narrowed)
		}
	}

	return result, stripped
}

// MergeRecurringDays adds weekdays to a court's recurring rule set for the
// [from, to, price] key. An existing rule with the identical key is replaced
// by a copy with the merged day set; otherwise a new rule with newID is
// appended.
func MergeRecurringDays(conditions []PriceCondition, days []time.Weekday, from, to types.TimeString, price float64, newID string) []PriceCondition {
	result := make([]PriceCondition, 0, len(conditions)+1)
	merged := false

	for i := range conditions {
		cond := conditions[i]

		if merged || cond.Scope != ScopeRecurring || cond.SlotFrom != from || cond.SlotTo != to || cond.Price != price {
			result = append(result, cond)
			continue
		}

		merged = true
		widened := cond.Clone()
		widened.Days = mergeDays(widened.Days, days)
		result = append(result, widened)
	}

	if !merged {
		result = append(result, PriceCondition{
			ID:       newID,
			Scope:    ScopeRecurring,
			Days:     mergeDays(nil, days),
			SlotFrom: from,
			SlotTo:   to,
			Price:    price,
		})
	}

	return result
}

// RemoveRecurringDays removes weekdays from every recurring rule matching
// [from, to]. A rule whose day set empties is dropped whole.
// Returns the new array and whether anything changed.
func RemoveRecurringDays(conditions []PriceCondition, days []time.Weekday, from, to types.TimeString) ([]PriceCondition, bool) {
	result := make([]PriceCondition, 0, len(conditions))
	changed := false

	for i := range conditions {
		cond := conditions[i]

		if cond.Scope != ScopeRecurring || cond.SlotFrom != from || cond.SlotTo != to {
			result = append(result, cond)
			continue
		}

		remaining := subtractDays(cond.Days, days)
		if len(remaining) == len(cond.Days) {
			result = append(result, cond)
			continue
		}

		changed = true
		if len(remaining) == 0 {
			continue
		}

		narrowed := cond.Clone()
		narrowed.Days = remaining
		result = append(result, narrowed)
	}

	return result, changed
}

func removeDate(dates []types.DateString, date types.DateString) []types.DateString {
	out := make([]types.DateString, 0, len(dates))
	for _, d := range dates {
		if d != date {
			out = append(out, d)
		}
	}
	return out
}

func removeTime(times []types.TimeString, t types.TimeString) []types.TimeString {
	out := make([]types.TimeString, 0, len(times))
	for _, v := range times {
		if v != t {
			out = append(out, v)
		}
	}
	return out
}

func mergeDays(existing, added []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(existing)+len(added))
	out := make([]time.Weekday, 0, len(existing)+len(added))
	for _, d := range existing {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, d := range added {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func subtractDays(existing, removed []time.Weekday) []time.Weekday {
	drop := make(map[time.Weekday]bool, len(removed))
	for _, d := range removed {
		drop[d] = true
	}
	out := make([]time.Weekday, 0, len(existing))
	for _, d := range existing {
		if !drop[d] {
			out = append(out, d)
		}
	}
	return out
}
