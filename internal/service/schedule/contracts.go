package schedule

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// CatalogClient интерфейс клиента каталога (филиалы и корты)
type CatalogClient interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.Court, error)
	GetBranch(ctx context.Context, branchID int64) (*domain.Branch, error)
	ListCourts(ctx context.Context, filter domain.CourtFilter) ([]domain.Court, error)
}

// GlobalRuleRepository интерфейс репозитория глобальных ценовых условий
type GlobalRuleRepository interface {
	List(ctx context.Context) ([]domain.PriceCondition, error)
}

// ScheduleCache кэш разрешенных слотов на день
// Кэш опционален: сервис работает и с nil
type ScheduleCache interface {
	GetDay(ctx context.Context, courtID int64, date types.DateString) ([]domain.ResolvedSlot, error)
	SetDay(ctx context.Context, courtID int64, date types.DateString, slots []domain.ResolvedSlot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
