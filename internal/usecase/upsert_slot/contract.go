package upsert_slot

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.Court, error)
	ListCourts(ctx context.Context, filter domain.CourtFilter) ([]domain.Court, error)
	UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
}

// ScheduleCache инвалидация кэша расписания
type ScheduleCache interface {
	DeleteDay(ctx context.Context, courtID int64, date types.DateString)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
