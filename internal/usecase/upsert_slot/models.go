package upsert_slot

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Request модель запроса на установку цены слота на конкретную дату
// Ровно одно из CourtID/Filter должно быть задано: CourtID - правка одного
// корта, Filter - bulk-правка всех активных кортов города/филиала
type Request struct {
	UserID   int64               // ID администратора (для логирования)
	Date     types.DateString    // Дата слота
	SlotFrom types.TimeString    // Начало слота
	SlotTo   types.TimeString    // Конец слота
	Price    float64             // Новая цена
	CourtID  *int64              // Целевой корт (одиночный режим)
	Filter   *domain.CourtFilter // Фильтр кортов (bulk режим)
}

// CourtResult результат применения правки к одному корту
type CourtResult struct {
	CourtID int64  // ID корта
	Updated bool   // Правка применена и подтверждена повторным чтением
	Version int64  // Версия записи после правки (0 при ошибке)
	Error   string // Текст ошибки, если правка не применилась
}

// Response модель ответа: результат по каждому целевому корту
// Bulk-операция - сага без отката: часть кортов может обновиться,
// часть - нет, детали в Results
type Response struct {
	Date     types.DateString
	SlotFrom types.TimeString
	SlotTo   types.TimeString
	Price    float64
	Results  []CourtResult
	Applied  int
	Failed   int
}
