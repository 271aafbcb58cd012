package globalrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Repository репозиторий глобальных (venue-wide) ценовых условий
// Это единственное хранилище, которым движок владеет сам: правила кортов
// живут в каталоге, глобальные правила - здесь
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория глобальных условий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ruleColumns порядок колонок, общий для всех SELECT
var ruleColumns = []string{
	"id",
	"condition_type",
	"days",
	"dates",
	"slot_from",
	"slot_to",
	"price",
}

// Create сохраняет новое глобальное условие
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, cond *domain.PriceCondition) (*domain.PriceCondition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("global_price_conditions").
		Columns(ruleColumns...).
		Values(
			cond.ID,
			string(cond.Scope),
			pq.Array(domain.WeekdayNames(cond.Days)),
			pq.Array(datesToStrings(cond.Dates)),
			cond.SlotFrom.String(),
			cond.SlotTo.String(),
			cond.Price,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return cond, nil
}

// GetByID получает глобальное условие по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PriceCondition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("global_price_conditions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cond, err := scanCondition(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConditionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan condition: %v", ErrScanRow, err)
	}

	return cond, nil
}

// List возвращает все глобальные условия в порядке создания
// Порядок стабилен: при равном приоритете побеждает более поздняя запись
func (r *Repository) List(ctx context.Context) ([]domain.PriceCondition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("global_price_conditions").
		OrderBy("created_at", "id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var conditions []domain.PriceCondition
	for rows.Next() {
		cond, err := scanCondition(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan condition: %v", ErrScanRow, err)
		}
		conditions = append(conditions, *cond)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return conditions, nil
}

// Delete удаляет глобальное условие по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("global_price_conditions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConditionNotFound
	}

	return nil
}

// DeleteAll удаляет все глобальные условия
// Используется в ReplaceAll внутри сериализуемой транзакции
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("global_price_conditions").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCondition сканирует одну строку в domain условие
func scanCondition(row rowScanner) (*domain.PriceCondition, error) {
	var (
		cond          domain.PriceCondition
		conditionType string
		days          []string
		dates         []string
		slotFrom      string
		slotTo        string
	)

	err := row.Scan(
		&cond.ID,
		&conditionType,
		pq.Array(&days),
		pq.Array(&dates),
		&slotFrom,
		&slotTo,
		&cond.Price,
	)
	if err != nil {
		return nil, err
	}

	cond.Scope = domain.ConditionScope(conditionType)
	cond.Days = domain.WeekdaysFromNames(days)
	cond.Dates = datesFromStrings(dates)
	cond.SlotFrom = types.TimeString(slotFrom)
	cond.SlotTo = types.TimeString(slotTo)

	return &cond, nil
}

func datesToStrings(dates []types.DateString) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

func datesFromStrings(dates []string) []types.DateString {
	out := make([]types.DateString, 0, len(dates))
	for _, d := range dates {
		out = append(out, types.DateString(d))
	}
	return out
}
