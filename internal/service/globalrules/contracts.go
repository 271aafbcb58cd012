package globalrules

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// GlobalRuleRepository интерфейс репозитория глобальных ценовых условий
type GlobalRuleRepository interface {
	Create(ctx context.Context, cond *domain.PriceCondition) (*domain.PriceCondition, error)
	GetByID(ctx context.Context, id string) (*domain.PriceCondition, error)
	List(ctx context.Context) ([]domain.PriceCondition, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ScheduleCache инвалидация кэша расписания
// Глобальные условия влияют на все корты, поэтому изменение сбрасывает весь кэш
type ScheduleCache interface {
	Flush(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
