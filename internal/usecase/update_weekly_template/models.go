package update_weekly_template

import (
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Action тип операции над недельным шаблоном
type Action string

const (
	// ActionAdd добавляет дни недели к recurring правилу корта
	ActionAdd Action = "add"
	// ActionRemove убирает дни недели из recurring правил корта
	ActionRemove Action = "remove"
)

// Request модель запроса на правку недельного шаблона цен корта
type Request struct {
	UserID   int64            // ID администратора (для логирования)
	CourtID  int64            // Целевой корт
	Action   Action           // add или remove
	Days     []string         // Дни недели: "monday".."sunday"
	SlotFrom types.TimeString // Начало слота
	SlotTo   types.TimeString // Конец слота
	Price    float64          // Цена (только для add)
}

// Response модель ответа
type Response struct {
	CourtID int64
	Version int64 // Версия записи корта после правки
}
