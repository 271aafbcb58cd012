package update_weekly_template

import (
	"context"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
)

// CatalogClient интерфейс клиента каталога
type CatalogClient interface {
	GetCourt(ctx context.Context, courtID int64) (*domain.Court, error)
	UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
}

// ScheduleCache инвалидация кэша расписания
type ScheduleCache interface {
	DeleteCourt(ctx context.Context, courtID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
