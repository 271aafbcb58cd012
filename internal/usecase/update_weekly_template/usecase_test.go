package update_weekly_template

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

type fakeCatalog struct {
	courts     map[int64]*domain.Court
	failUpdate map[int64]error
}

func newFakeCatalog(courts ...*domain.Court) *fakeCatalog {
	f := &fakeCatalog{
		courts:     make(map[int64]*domain.Court),
		failUpdate: make(map[int64]error),
	}
	for _, c := range courts {
		f.courts[c.ID] = c
	}
	return f
}

func (f *fakeCatalog) GetCourt(_ context.Context, courtID int64) (*domain.Court, error) {
	court, ok := f.courts[courtID]
	if !ok {
		return nil, catalogClient.ErrCourtNotFound
	}
	clone := court.Clone()
	return &clone, nil
}

func (f *fakeCatalog) UpdateCourt(_ context.Context, court *domain.Court) (*domain.Court, error) {
	if err, ok := f.failUpdate[court.ID]; ok {
		return nil, err
	}

	stored, ok := f.courts[court.ID]
	if !ok {
		return nil, catalogClient.ErrCourtNotFound
	}
	if court.Version != stored.Version {
		return nil, catalogClient.ErrVersionConflict
	}

	updated := court.Clone()
	updated.Version++
	f.courts[court.ID] = &updated
	clone := updated.Clone()
	return &clone, nil
}

type fakeCache struct {
	deletedCourts []int64
}

func (f *fakeCache) DeleteCourt(_ context.Context, courtID int64) {
	f.deletedCourts = append(f.deletedCourts, courtID)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           1,
		BranchID:     10,
		Name:         "Корт",
		DefaultPrice: 100,
		IsActive:     true,
		Version:      1,
	}
}

func addRequest(days ...string) *Request {
	return &Request{
		UserID:   7,
		CourtID:  1,
		Action:   ActionAdd,
		Days:     days,
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}
}

func TestExecuteAddCreatesRecurringRule(t *testing.T) {
	catalog := newFakeCatalog(testCourt())
	cache := &fakeCache{}
	uc := NewUseCase(catalog, cache, noopLogger{})

	resp, err := uc.Execute(context.Background(), addRequest("monday", "friday"))

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Version)

	stored := catalog.courts[1]
	require.Len(t, stored.PriceConditions, 1)
	cond := stored.PriceConditions[0]
	assert.Equal(t, domain.ScopeRecurring, cond.Scope)
	assert.ElementsMatch(t, []time.Weekday{time.Monday, time.Friday}, cond.Days)
	assert.Equal(t, types.TimeString("18:00"), cond.SlotFrom)
	assert.Equal(t, float64(180), cond.Price)

	assert.Equal(t, []int64{1}, cache.deletedCourts)
}

func TestExecuteAddMergesIntoMatchingRule(t *testing.T) {
	court := testCourt()
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "existing",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), addRequest("wednesday"))

	require.NoError(t, err)
	stored := catalog.courts[1]
	require.Len(t, stored.PriceConditions, 1)
	assert.Equal(t, "existing", stored.PriceConditions[0].ID)
	assert.ElementsMatch(t, []time.Weekday{time.Monday, time.Wednesday}, stored.PriceConditions[0].Days)
}

func TestExecuteAddDifferentPriceAppendsNewRule(t *testing.T) {
	court := testCourt()
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "existing",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    150,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), addRequest("monday"))

	require.NoError(t, err)
	assert.Len(t, catalog.courts[1].PriceConditions, 2)
}

func TestExecuteRemoveNarrowsRule(t *testing.T) {
	court := testCourt()
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "existing",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday, time.Friday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, nil, noopLogger{})

	req := addRequest("friday")
	req.Action = ActionRemove

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	stored := catalog.courts[1]
	require.Len(t, stored.PriceConditions, 1)
	assert.Equal(t, []time.Weekday{time.Monday}, stored.PriceConditions[0].Days)
}

func TestExecuteRemoveDropsEmptiedRule(t *testing.T) {
	court := testCourt()
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "existing",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, nil, noopLogger{})

	req := addRequest("monday")
	req.Action = ActionRemove

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, catalog.courts[1].PriceConditions)
}

func TestExecuteRemoveNothingMatched(t *testing.T) {
	catalog := newFakeCatalog(testCourt())
	uc := NewUseCase(catalog, nil, noopLogger{})

	req := addRequest("monday")
	req.Action = ActionRemove

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNothingToRemove)
}

func TestExecuteUnknownWeekday(t *testing.T) {
	catalog := newFakeCatalog(testCourt())
	uc := NewUseCase(catalog, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), addRequest("someday"))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteCourtNotFound(t *testing.T) {
	catalog := newFakeCatalog()
	uc := NewUseCase(catalog, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), addRequest("monday"))

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecuteVersionConflict(t *testing.T) {
	catalog := newFakeCatalog(testCourt())
	catalog.failUpdate[1] = catalogClient.ErrVersionConflict
	uc := NewUseCase(catalog, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), addRequest("monday"))

	assert.ErrorIs(t, err, ErrVersionConflict)
}
