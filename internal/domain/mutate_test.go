package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

const (
	testDate  = types.DateString("2026-09-07")
	otherDate = types.DateString("2026-09-08")
)

func dateCondition(id string, dates ...types.DateString) PriceCondition {
	return PriceCondition{
		ID:       id,
		Scope:    ScopeDateSpecific,
		Dates:    dates,
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    200,
	}
}

func TestStripDateCoverageDropsSingleDateCondition(t *testing.T) {
	conditions := []PriceCondition{dateCondition("c1", testDate)}

	result, stripped := StripDateCoverage(conditions, testDate, "10:00", "11:00")

	assert.True(t, stripped)
	assert.Empty(t, result)
}

func TestStripDateCoverageNarrowsMultiDateCondition(t *testing.T) {
	conditions := []PriceCondition{dateCondition("c1", testDate, otherDate)}

	result, stripped := StripDateCoverage(conditions, testDate, "10:00", "11:00")

	assert.True(t, stripped)
	require.Len(t, result, 1)
	assert.Equal(t, "c1", result[0].ID)
	assert.Equal(t, []types.DateString{otherDate}, result[0].Dates)
	// Исходный массив не изменен
	assert.Equal(t, []types.DateString{testDate, otherDate}, conditions[0].Dates)
}

func TestStripDateCoverageIgnoresOtherSlots(t *testing.T) {
	conditions := []PriceCondition{dateCondition("c1", testDate)}

	result, stripped := StripDateCoverage(conditions, testDate, "12:00", "13:00")

	assert.False(t, stripped)
	assert.Len(t, result, 1)
}

func TestStripDateCoverageIgnoresRecurring(t *testing.T) {
	conditions := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    150,
	}}

	result, stripped := StripDateCoverage(conditions, testDate, "10:00", "11:00")

	assert.False(t, stripped)
	assert.Len(t, result, 1)
}

func TestStripExceptionMaskDropsSingleEntry(t *testing.T) {
	exceptions := []UnavailabilityException{{
		Scope: ScopeDateSpecific,
		Dates: []types.DateString{testDate},
		Times: []types.TimeString{"10:00"},
	}}

	result, stripped := StripExceptionMask(exceptions, testDate, "10:00")

	assert.True(t, stripped)
	assert.Empty(t, result)
}

func TestStripExceptionMaskNarrowsTimes(t *testing.T) {
	exceptions := []UnavailabilityException{{
		Scope: ScopeDateSpecific,
		Dates: []types.DateString{testDate},
		Times: []types.TimeString{"10:00", "11:00"},
	}}

	result, stripped := StripExceptionMask(exceptions, testDate, "10:00")

	assert.True(t, stripped)
	require.Len(t, result, 1)
	assert.Equal(t, []types.TimeString{"11:00"}, result[0].Times)
}

func TestStripExceptionMaskNarrowsDates(t *testing.T) {
	exceptions := []UnavailabilityException{{
		Scope: ScopeDateSpecific,
		Dates: []types.DateString{testDate, otherDate},
		Times: []types.TimeString{"10:00"},
	}}

	result, stripped := StripExceptionMask(exceptions, testDate, "10:00")

	assert.True(t, stripped)
	require.Len(t, result, 1)
	assert.Equal(t, []types.DateString{otherDate}, result[0].Dates)
}

func TestStripExceptionMaskSplitsWideEntry(t *testing.T) {
	exceptions := []UnavailabilityException{{
		Scope: ScopeDateSpecific,
		Dates: []types.DateString{testDate, otherDate},
		Times: []types.TimeString{"10:00", "11:00"},
	}}

	result, stripped := StripExceptionMask(exceptions, testDate, "10:00")

	assert.True(t, stripped)
	require.Len(t, result, 2)
	// Остальные даты сохраняют полный набор времен
	assert.Equal(t, []types.DateString{otherDate}, result[0].Dates)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, result[0].Times)
	// Целевая дата теряет только целевое время
	assert.Equal(t, []types.DateString{testDate}, result[1].Dates)
	assert.Equal(t, []types.TimeString{"11:00"}, result[1].Times)
}

func TestStripExceptionMaskIgnoresRecurring(t *testing.T) {
	exceptions := []UnavailabilityException{{
		Scope: ScopeRecurring,
		Days:  []time.Weekday{time.Monday},
		Times: []types.TimeString{"10:00"},
	}}

	result, stripped := StripExceptionMask(exceptions, testDate, "10:00")

	// Recurring маски не трогаются точечным редактированием даты
	assert.False(t, stripped)
	assert.Len(t, result, 1)
}

func TestMergeRecurringDaysCreatesNewRule(t *testing.T) {
	result := MergeRecurringDays(nil, []time.Weekday{time.Monday, time.Friday}, "18:00", "21:00", 180, "new-id")

	require.Len(t, result, 1)
	assert.Equal(t, "new-id", result[0].ID)
	assert.Equal(t, ScopeRecurring, result[0].Scope)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, result[0].Days)
}

func TestMergeRecurringDaysMergesMatchingKey(t *testing.T) {
	existing := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}

	result := MergeRecurringDays(existing, []time.Weekday{time.Friday, time.Monday}, "18:00", "21:00", 180, "unused")

	require.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].ID)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, result[0].Days)
}

func TestMergeRecurringDaysDifferentPriceAppends(t *testing.T) {
	existing := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    150,
	}}

	result := MergeRecurringDays(existing, []time.Weekday{time.Monday}, "18:00", "21:00", 180, "new-id")

	require.Len(t, result, 2)
	assert.Equal(t, "new-id", result[1].ID)
}

func TestRemoveRecurringDaysNarrows(t *testing.T) {
	existing := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday, time.Friday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}

	result, changed := RemoveRecurringDays(existing, []time.Weekday{time.Friday}, "18:00", "21:00")

	assert.True(t, changed)
	require.Len(t, result, 1)
	assert.Equal(t, []time.Weekday{time.Monday}, result[0].Days)
}

func TestRemoveRecurringDaysDropsEmptiedRule(t *testing.T) {
	existing := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}

	result, changed := RemoveRecurringDays(existing, []time.Weekday{time.Monday}, "18:00", "21:00")

	assert.True(t, changed)
	assert.Empty(t, result)
}

func TestRemoveRecurringDaysNoMatch(t *testing.T) {
	existing := []PriceCondition{{
		ID:       "r1",
		Scope:    ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}

	result, changed := RemoveRecurringDays(existing, []time.Weekday{time.Friday}, "18:00", "21:00")

	assert.False(t, changed)
	assert.Len(t, result, 1)
}

func TestHasRecurringCoverage(t *testing.T) {
	conditions := []PriceCondition{
		{
			ID:       "override",
			Scope:    ScopeDateSpecific,
			Dates:    []types.DateString{testDate},
			SlotFrom: "10:00",
			SlotTo:   "11:00",
			Price:    250,
		},
		{
			ID:       "recurring",
			Scope:    ScopeRecurring,
			Days:     []time.Weekday{time.Monday},
			SlotFrom: "09:00",
			SlotTo:   "12:00",
			Price:    150,
		},
	}

	// testDate - понедельник
	assert.True(t, HasRecurringCoverage(conditions, testDate, "10:00"))
	assert.True(t, HasRecurringCoverage(conditions, testDate, "09:00"))
	// Конец интервала не покрывается
	assert.False(t, HasRecurringCoverage(conditions, testDate, "12:00"))
	// Вторник не входит в дни правила
	assert.False(t, HasRecurringCoverage(conditions, otherDate, "10:00"))
	// Date-specific условия не считаются recurring покрытием
	assert.False(t, HasRecurringCoverage(conditions[:1], testDate, "10:00"))
}
