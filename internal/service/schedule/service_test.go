package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

type fakeCatalog struct {
	courts   map[int64]*domain.Court
	branches map[int64]*domain.Branch
}

func (f *fakeCatalog) GetCourt(_ context.Context, courtID int64) (*domain.Court, error) {
	court, ok := f.courts[courtID]
	if !ok {
		return nil, catalogClient.ErrCourtNotFound
	}
	clone := court.Clone()
	return &clone, nil
}

func (f *fakeCatalog) GetBranch(_ context.Context, branchID int64) (*domain.Branch, error) {
	branch, ok := f.branches[branchID]
	if !ok {
		return nil, catalogClient.ErrBranchNotFound
	}
	return branch, nil
}

func (f *fakeCatalog) ListCourts(_ context.Context, filter domain.CourtFilter) ([]domain.Court, error) {
	var out []domain.Court
	for _, c := range f.courts {
		if filter.BranchID != nil && c.BranchID != *filter.BranchID {
			continue
		}
		out = append(out, c.Clone())
	}
	return out, nil
}

type fakeRuleRepo struct {
	conditions []domain.PriceCondition
}

func (f *fakeRuleRepo) List(_ context.Context) ([]domain.PriceCondition, error) {
	return f.conditions, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func weekOpen(from, to string) domain.OpeningHours {
	day := domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr(from), CloseTime: ptr.Ptr(to)}
	return domain.OpeningHours{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func newFixture() (*fakeCatalog, *fakeRuleRepo) {
	catalog := &fakeCatalog{
		courts: map[int64]*domain.Court{
			1: {ID: 1, BranchID: 10, Name: "Корт 1", DefaultPrice: 100, IsActive: true},
			2: {ID: 2, BranchID: 10, Name: "Корт 2", DefaultPrice: 120, IsActive: true},
		},
		branches: map[int64]*domain.Branch{
			10: {ID: 10, CityID: 77, Name: "Филиал", OpeningHours: weekOpen("10:00", "14:00"), IsActive: true},
		},
	}
	return catalog, &fakeRuleRepo{}
}

func TestResolveDayBaseSchedule(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	slots, err := svc.ResolveDay(context.Background(), 1, monday)

	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, types.TimeString("10:00"), slots[0].SlotFrom)
	assert.Equal(t, float64(100), slots[0].Price)
}

func TestResolveDayGlobalConditionApplies(t *testing.T) {
	catalog, rules := newFixture()
	rules.conditions = []domain.PriceCondition{{
		ID:       "g1",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: types.TimeString("10:00"),
		SlotTo:   types.TimeString("11:00"),
		Price:    90,
	}}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	slots, err := svc.ResolveDay(context.Background(), 1, monday)

	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, float64(90), slots[0].Price)
	assert.Equal(t, domain.OriginRecurringOverride, slots[0].Origin)
}

func TestResolveDayCourtConditionBeatsGlobal(t *testing.T) {
	catalog, rules := newFixture()
	rules.conditions = []domain.PriceCondition{{
		ID:       "g1",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{monday},
		SlotFrom: types.TimeString("10:00"),
		SlotTo:   types.TimeString("11:00"),
		Price:    90,
	}}
	catalog.courts[1].PriceConditions = []domain.PriceCondition{{
		ID:       "c1",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: types.TimeString("10:00"),
		SlotTo:   types.TimeString("11:00"),
		Price:    150,
	}}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	slots, err := svc.ResolveDay(context.Background(), 1, monday)

	require.NoError(t, err)
	assert.Equal(t, float64(150), slots[0].Price)
}

func TestResolveDayInactiveCourt(t *testing.T) {
	catalog, rules := newFixture()
	catalog.courts[1].IsActive = false
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	slots, err := svc.ResolveDay(context.Background(), 1, monday)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveDayInactiveBranch(t *testing.T) {
	catalog, rules := newFixture()
	catalog.branches[10].IsActive = false
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	slots, err := svc.ResolveDay(context.Background(), 1, monday)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveDayCourtNotFound(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	_, err := svc.ResolveDay(context.Background(), 404, monday)

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestResolveDayInvalidDate(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	_, err := svc.ResolveDay(context.Background(), 1, "07.09.2026")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestResolveRangeReturnsEveryDate(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	days, err := svc.ResolveRange(context.Background(), 1, monday, "2026-09-09")

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Len(t, days[monday], 4)
	assert.Len(t, days[tuesday], 4)
}

func TestResolveRangeInverted(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	_, err := svc.ResolveRange(context.Background(), 1, tuesday, monday)

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolveRangeTooWide(t *testing.T) {
	catalog, rules := newFixture()
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	_, err := svc.ResolveRange(context.Background(), 1, "2026-01-01", "2026-12-31")

	assert.ErrorIs(t, err, ErrRangeTooWide)
}

func TestResolveAggregateGroupsIdenticalOverrides(t *testing.T) {
	catalog, rules := newFixture()
	override := domain.PriceCondition{
		ID:       "c1",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{monday},
		SlotFrom: types.TimeString("10:00"),
		SlotTo:   types.TimeString("11:00"),
		Price:    200,
	}
	catalog.courts[1].PriceConditions = []domain.PriceCondition{override}
	catalog.courts[2].PriceConditions = []domain.PriceCondition{override.Clone()}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	branchID := int64(10)
	days, err := svc.ResolveAggregate(context.Background(), domain.CourtFilter{BranchID: &branchID}, monday, monday)

	require.NoError(t, err)
	rows := days[monday]
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{1, 2}, rows[0].CourtIDs)
	assert.Equal(t, float64(200), rows[0].Price)
}

func TestResolveAggregateSplitsDifferentPrices(t *testing.T) {
	catalog, rules := newFixture()
	catalog.courts[1].PriceConditions = []domain.PriceCondition{{
		ID: "c1", Scope: domain.ScopeDateSpecific, Dates: []types.DateString{monday},
		SlotFrom: "10:00", SlotTo: "11:00", Price: 200,
	}}
	catalog.courts[2].PriceConditions = []domain.PriceCondition{{
		ID: "c2", Scope: domain.ScopeDateSpecific, Dates: []types.DateString{monday},
		SlotFrom: "10:00", SlotTo: "11:00", Price: 250,
	}}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	branchID := int64(10)
	days, err := svc.ResolveAggregate(context.Background(), domain.CourtFilter{BranchID: &branchID}, monday, monday)

	require.NoError(t, err)
	rows := days[monday]
	require.Len(t, rows, 2)
	assert.Equal(t, float64(200), rows[0].Price)
	assert.Equal(t, []int64{1}, rows[0].CourtIDs)
	assert.Equal(t, float64(250), rows[1].Price)
	assert.Equal(t, []int64{2}, rows[1].CourtIDs)
}

func TestResolveAggregateExcludesRecurringAndBase(t *testing.T) {
	catalog, rules := newFixture()
	catalog.courts[1].PriceConditions = []domain.PriceCondition{{
		ID: "c1", Scope: domain.ScopeRecurring, Days: []time.Weekday{time.Monday},
		SlotFrom: "10:00", SlotTo: "11:00", Price: 150,
	}}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	branchID := int64(10)
	days, err := svc.ResolveAggregate(context.Background(), domain.CourtFilter{BranchID: &branchID}, monday, monday)

	require.NoError(t, err)
	assert.Empty(t, days[monday])
}

func TestResolveAggregateSkipsInactiveCourts(t *testing.T) {
	catalog, rules := newFixture()
	catalog.courts[2].IsActive = false
	catalog.courts[1].PriceConditions = []domain.PriceCondition{{
		ID: "c1", Scope: domain.ScopeDateSpecific, Dates: []types.DateString{monday},
		SlotFrom: "10:00", SlotTo: "11:00", Price: 200,
	}}
	catalog.courts[2].PriceConditions = []domain.PriceCondition{{
		ID: "c2", Scope: domain.ScopeDateSpecific, Dates: []types.DateString{monday},
		SlotFrom: "10:00", SlotTo: "11:00", Price: 200,
	}}
	svc := NewService(catalog, rules, nil, 60, noopLogger{})

	branchID := int64(10)
	days, err := svc.ResolveAggregate(context.Background(), domain.CourtFilter{BranchID: &branchID}, monday, monday)

	require.NoError(t, err)
	rows := days[monday]
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{1}, rows[0].CourtIDs)
}
