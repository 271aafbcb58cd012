package globalrule

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO global_price_conditions")).
		WithArgs("g1", "recurring", sqlmock.AnyArg(), sqlmock.AnyArg(), "18:00", "21:00", 180.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cond := &domain.PriceCondition{
		ID:       "g1",
		Scope:    domain.ScopeRecurring,
		Days:     []time.Weekday{time.Monday, time.Friday},
		SlotFrom: "18:00",
		SlotTo:   "21:00",
		Price:    180,
	}

	created, err := repo.Create(context.Background(), cond)
	require.NoError(t, err)
	assert.Equal(t, "g1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "condition_type", "days", "dates", "slot_from", "slot_to", "price"}).
		AddRow("g1", "date_specific", "{}", "{2026-09-07}", "10:00", "11:00", 200.0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, condition_type, days, dates, slot_from, slot_to, price FROM global_price_conditions WHERE id = $1")).
		WithArgs("g1").
		WillReturnRows(rows)

	cond, err := repo.GetByID(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeDateSpecific, cond.Scope)
	assert.Equal(t, []types.DateString{"2026-09-07"}, cond.Dates)
	assert.Equal(t, float64(200), cond.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, condition_type, days, dates, slot_from, slot_to, price FROM global_price_conditions WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "condition_type", "days", "dates", "slot_from", "slot_to", "price"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrConditionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryList(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "condition_type", "days", "dates", "slot_from", "slot_to", "price"}).
		AddRow("g1", "recurring", "{monday,friday}", "{}", "18:00", "21:00", 180.0).
		AddRow("g2", "date_specific", "{}", "{2026-09-07}", "10:00", "11:00", 200.0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, condition_type, days, dates, slot_from, slot_to, price FROM global_price_conditions ORDER BY created_at, id")).
		WillReturnRows(rows)

	conditions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, conditions, 2)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, conditions[0].Days)
	assert.Equal(t, domain.ScopeDateSpecific, conditions[1].Scope)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM global_price_conditions WHERE id = $1")).
		WithArgs("g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "g1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM global_price_conditions WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrConditionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteAll(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM global_price_conditions")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
