package delete_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	catalogClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	scheduleService "github.com/m04kA/SMC-CourtScheduleService/internal/service/schedule"
	upsertSlotUC "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/upsert_slot"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

const testDate = types.DateString("2026-09-07")

type fakeCatalog struct {
	courts     map[int64]*domain.Court
	branches   map[int64]*domain.Branch
	failUpdate map[int64]error
}

func newFakeCatalog(courts ...*domain.Court) *fakeCatalog {
	f := &fakeCatalog{
		courts:     make(map[int64]*domain.Court),
		branches:   make(map[int64]*domain.Branch),
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

type fakeGlobalRules struct {
	conditions []domain.PriceCondition
}

func (f *fakeGlobalRules) List(_ context.Context) ([]domain.PriceCondition, error) {
	return f.conditions, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testCourt(id int64) *domain.Court {
	return &domain.Court{
		ID:           id,
		BranchID:     10,
		Name:         "Корт",
		DefaultPrice: 100,
		IsActive:     true,
		Version:      1,
	}
}

func singleRequest(courtID int64) *Request {
	return &Request{
		UserID:   7,
		Date:     testDate,
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		CourtID:  ptr.Ptr(courtID),
	}
}

func TestExecuteStripsOverrideAndMasksSlot(t *testing.T) {
	court := testCourt(1)
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "c1",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{testDate},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    250,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	resp, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Applied)

	stored := catalog.courts[1]
	assert.Empty(t, stored.PriceConditions)
	// Recurring покрытия нет: без маски слот всплыл бы обратно
	// по базовой цене
	require.Len(t, stored.UnavailabilitySlots, 1)
	exc := stored.UnavailabilitySlots[0]
	assert.Equal(t, []types.DateString{testDate}, exc.Dates)
	assert.Equal(t, []types.TimeString{"10:00"}, exc.Times)
}

func TestExecuteStripsOverrideKeepsSlotUnderRecurring(t *testing.T) {
	court := testCourt(1)
	court.PriceConditions = []domain.PriceCondition{
		{
			ID:       "recurring",
			Scope:    domain.ScopeRecurring,
			Days:     []time.Weekday{time.Monday},
			SlotFrom: "10:00",
			SlotTo:   "11:00",
			Price:    150,
		},
		{
			ID:       "override",
			Scope:    domain.ScopeDateSpecific,
			Dates:    []types.DateString{testDate},
			SlotFrom: "10:00",
			SlotTo:   "11:00",
			Price:    250,
		},
	}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	stored := catalog.courts[1]
	// Слот возвращается к recurring цене, маска не нужна
	require.Len(t, stored.PriceConditions, 1)
	assert.Equal(t, "recurring", stored.PriceConditions[0].ID)
	assert.Empty(t, stored.UnavailabilitySlots)
}

func TestExecuteStripsOverrideKeepsSlotUnderGlobalRecurring(t *testing.T) {
	court := testCourt(1)
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "override",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{testDate},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    250,
	}}
	catalog := newFakeCatalog(court)
	globals := &fakeGlobalRules{conditions: []domain.PriceCondition{{
		ID:       "g1",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "09:00",
		SlotTo:   "12:00",
		Price:    130,
	}}}
	uc := NewUseCase(catalog, globals, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	stored := catalog.courts[1]
	assert.Empty(t, stored.PriceConditions)
	assert.Empty(t, stored.UnavailabilitySlots)
}

func TestExecuteMasksBaseSlotWhenNoOverride(t *testing.T) {
	catalog := newFakeCatalog(testCourt(1))
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	stored := catalog.courts[1]
	require.Len(t, stored.UnavailabilitySlots, 1)
	exc := stored.UnavailabilitySlots[0]
	assert.Equal(t, domain.ScopeDateSpecific, exc.Scope)
	assert.Equal(t, []types.DateString{testDate}, exc.Dates)
	assert.Equal(t, []types.TimeString{"10:00"}, exc.Times)
}

func TestExecuteKeepsRecurringRuleIntact(t *testing.T) {
	court := testCourt(1)
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "recurring",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    150,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	stored := catalog.courts[1]
	// Recurring правило действует на другие даты и не трогается,
	// конкретная дата скрывается маской
	require.Len(t, stored.PriceConditions, 1)
	assert.Equal(t, "recurring", stored.PriceConditions[0].ID)
	require.Len(t, stored.UnavailabilitySlots, 1)
}

func TestExecuteNarrowsMultiDateCondition(t *testing.T) {
	otherDate := types.DateString("2026-09-08")
	court := testCourt(1)
	court.PriceConditions = []domain.PriceCondition{{
		ID:       "multi",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{testDate, otherDate},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    250,
	}}
	catalog := newFakeCatalog(court)
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	require.NoError(t, err)
	stored := catalog.courts[1]
	require.Len(t, stored.PriceConditions, 1)
	assert.Equal(t, []types.DateString{otherDate}, stored.PriceConditions[0].Dates)
	// Целевая дата без recurring покрытия скрывается маской
	require.Len(t, stored.UnavailabilitySlots, 1)
	assert.Equal(t, []types.DateString{testDate}, stored.UnavailabilitySlots[0].Dates)
}

func TestExecuteCourtNotFound(t *testing.T) {
	catalog := newFakeCatalog()
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(404))

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecuteVersionConflict(t *testing.T) {
	catalog := newFakeCatalog(testCourt(1))
	catalog.failUpdate[1] = catalogClient.ErrVersionConflict
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), singleRequest(1))

	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestExecuteBulkSaga(t *testing.T) {
	courtWithOverride := testCourt(1)
	courtWithOverride.PriceConditions = []domain.PriceCondition{{
		ID:       "c1",
		Scope:    domain.ScopeDateSpecific,
		Dates:    []types.DateString{testDate},
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    250,
	}}
	catalog := newFakeCatalog(courtWithOverride, testCourt(2))
	catalog.failUpdate[2] = catalogClient.ErrVersionConflict
	uc := NewUseCase(catalog, &fakeGlobalRules{}, nil, noopLogger{})

	branchID := int64(10)
	req := &Request{
		UserID:   7,
		Date:     testDate,
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Filter:   &domain.CourtFilter{BranchID: &branchID},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Applied)
	assert.Equal(t, 1, resp.Failed)
	assert.Empty(t, catalog.courts[1].PriceConditions)
}

func TestDeleteAfterUpsertHidesSlot(t *testing.T) {
	// Филиал открыт в понедельник 09:00-11:00, корт без правил
	court := testCourt(1)
	catalog := newFakeCatalog(court)
	catalog.branches[10] = &domain.Branch{
		ID:       10,
		CityID:   77,
		Name:     "Филиал",
		IsActive: true,
		OpeningHours: domain.OpeningHours{
			Monday: domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("11:00")},
		},
	}
	globals := &fakeGlobalRules{}

	upsert := upsertSlotUC.NewUseCase(catalog, nil, noopLogger{})
	_, err := upsert.Execute(context.Background(), &upsertSlotUC.Request{
		UserID:   7,
		Date:     testDate,
		SlotFrom: "10:00",
		SlotTo:   "11:00",
		Price:    700,
		CourtID:  ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	del := NewUseCase(catalog, globals, nil, noopLogger{})
	_, err = del.Execute(context.Background(), singleRequest(1))
	require.NoError(t, err)

	svc := scheduleService.NewService(catalog, globals, nil, 60, noopLogger{})
	slots, err := svc.ResolveDay(context.Background(), 1, testDate)
	require.NoError(t, err)

	// Удаленный после переопределения слот скрыт, а не возвращен
	// к базовой цене
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0].SlotFrom)
	assert.Equal(t, float64(100), slots[0].Price)
}
