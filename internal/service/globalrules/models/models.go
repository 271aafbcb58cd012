package models

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// CreateConditionRequest запрос на создание глобального условия
type CreateConditionRequest struct {
	Scope    string   `json:"scope"` // "recurring" | "date_specific"
	Days     []string `json:"days,omitempty"`
	Dates    []string `json:"dates,omitempty"`
	SlotFrom string   `json:"slotFrom"`
	SlotTo   string   `json:"slotTo"`
	Price    float64  `json:"price"`
}

// ToDomain конвертирует запрос в domain условие (без ID)
func (r *CreateConditionRequest) ToDomain() domain.PriceCondition {
	dates := make([]types.DateString, 0, len(r.Dates))
	for _, d := range r.Dates {
		dates = append(dates, types.DateString(d))
	}

	return domain.PriceCondition{
		Scope:    domain.ConditionScope(r.Scope),
		Days:     domain.WeekdaysFromNames(r.Days),
		Dates:    dates,
		SlotFrom: types.TimeString(r.SlotFrom),
		SlotTo:   types.TimeString(r.SlotTo),
		Price:    r.Price,
	}
}

// ReplaceConditionsRequest запрос на полную замену набора глобальных условий
type ReplaceConditionsRequest struct {
	Conditions []CreateConditionRequest `json:"conditions"`
}

// ConditionResponse глобальное условие в ответе сервиса
type ConditionResponse struct {
	ID       string   `json:"id"`
	Scope    string   `json:"scope"`
	Days     []string `json:"days,omitempty"`
	Dates    []string `json:"dates,omitempty"`
	SlotFrom string   `json:"slotFrom"`
	SlotTo   string   `json:"slotTo"`
	Price    float64  `json:"price"`
}

// FromDomain конвертирует domain условие в ответ сервиса
func FromDomain(c domain.PriceCondition) ConditionResponse {
	dates := make([]string, 0, len(c.Dates))
	for _, d := range c.Dates {
		dates = append(dates, d.String())
	}

	return ConditionResponse{
		ID:       c.ID,
		Scope:    string(c.Scope),
		Days:     domain.WeekdayNames(c.Days),
		Dates:    dates,
		SlotFrom: c.SlotFrom.String(),
		SlotTo:   c.SlotTo.String(),
		Price:    c.Price,
	}
}
