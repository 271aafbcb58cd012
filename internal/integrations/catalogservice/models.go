package catalogservice

import (
	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/types"
)

// Wire модели каталога. Поля правил сериализуются в snake_case
// (slot_from, slot_to, condition_type) - это контракт каталога,
// in-memory модели движка живут в internal/domain.

// DaySchedule расписание работы филиала на один день недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

// OpeningHours расписание работы филиала по дням недели
type OpeningHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Branch модель филиала из каталога
type Branch struct {
	ID           int64        `json:"id"`
	CityID       int64        `json:"city_id"`
	Name         string       `json:"name"`
	OpeningHours OpeningHours `json:"opening_hours"`
	IsActive     bool         `json:"is_active"`
}

// PriceCondition ценовое правило корта в wire формате
type PriceCondition struct {
	ID            string   `json:"id"`
	ConditionType string   `json:"condition_type"` // "recurring" | "date_specific"
	Days          []string `json:"days,omitempty"`  // "monday".."sunday"
	Dates         []string `json:"dates,omitempty"` // "YYYY-MM-DD"
	SlotFrom      string   `json:"slot_from"`
	SlotTo        string   `json:"slot_to"`
	Price         float64  `json:"price"`
}

// UnavailabilitySlot маска недоступности корта в wire формате
type UnavailabilitySlot struct {
	ConditionType string   `json:"condition_type"`
	Days          []string `json:"days,omitempty"`
	Dates         []string `json:"dates,omitempty"`
	Times         []string `json:"times"`
}

// Court модель корта из каталога. Каталог принимает только полную запись,
// поэтому wire модель несет все поля корта, а не только правила
type Court struct {
	ID                  int64                `json:"id"`
	BranchID            int64                `json:"branch_id"`
	Name                string               `json:"name"`
	Description         *string              `json:"description,omitempty"`
	Surface             *string              `json:"surface,omitempty"`
	Amenities           []string             `json:"amenities,omitempty"`
	MediaURLs           []string             `json:"media_urls,omitempty"`
	Terms               *string              `json:"terms,omitempty"`
	DefaultPrice        float64              `json:"default_price"`
	PriceConditions     []PriceCondition     `json:"price_conditions"`
	UnavailabilitySlots []UnavailabilitySlot `json:"unavailability_slots"`
	IsActive            bool                 `json:"is_active"`
	Version             int64                `json:"version"`
}

// ErrorResponse модель ошибки каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func datesToDomain(dates []string) []types.DateString {
	out := make([]types.DateString, 0, len(dates))
	for _, d := range dates {
		out = append(out, types.DateString(d))
	}
	return out
}

func datesToWire(dates []types.DateString) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

func timesToDomain(times []string) []types.TimeString {
	out := make([]types.TimeString, 0, len(times))
	for _, t := range times {
		out = append(out, types.TimeString(t))
	}
	return out
}

func timesToWire(times []types.TimeString) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}

// ToDomain конвертирует wire модель условия в domain
func (c PriceCondition) ToDomain() domain.PriceCondition {
	return domain.PriceCondition{
		ID:       c.ID,
		Scope:    domain.ConditionScope(c.ConditionType),
		Days:     domain.WeekdaysFromNames(c.Days),
		Dates:    datesToDomain(c.Dates),
		SlotFrom: types.TimeString(c.SlotFrom),
		SlotTo:   types.TimeString(c.SlotTo),
		Price:    c.Price,
	}
}

// PriceConditionFromDomain конвертирует domain условие в wire модель
func PriceConditionFromDomain(c domain.PriceCondition) PriceCondition {
	return PriceCondition{
		ID:            c.ID,
		ConditionType: string(c.Scope),
		Days:          domain.WeekdayNames(c.Days),
		Dates:         datesToWire(c.Dates),
		SlotFrom:      c.SlotFrom.String(),
		SlotTo:        c.SlotTo.String(),
		Price:         c.Price,
	}
}

// ToDomain конвертирует wire модель маски в domain
func (u UnavailabilitySlot) ToDomain() domain.UnavailabilityException {
	return domain.UnavailabilityException{
		Scope: domain.ConditionScope(u.ConditionType),
		Days:  domain.WeekdaysFromNames(u.Days),
		Dates: datesToDomain(u.Dates),
		Times: timesToDomain(u.Times),
	}
}

// UnavailabilitySlotFromDomain конвертирует domain маску в wire модель
func UnavailabilitySlotFromDomain(e domain.UnavailabilityException) UnavailabilitySlot {
	return UnavailabilitySlot{
		ConditionType: string(e.Scope),
		Days:          domain.WeekdayNames(e.Days),
		Dates:         datesToWire(e.Dates),
		Times:         timesToWire(e.Times),
	}
}

// ToDomain конвертирует wire модель расписания дня в domain
func (d DaySchedule) ToDomain() domain.DaySchedule {
	return domain.DaySchedule{
		IsOpen:    d.IsOpen,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
	}
}

// ToDomain конвертирует wire модель филиала в domain
func (b Branch) ToDomain() domain.Branch {
	return domain.Branch{
		ID:     b.ID,
		CityID: b.CityID,
		Name:   b.Name,
		OpeningHours: domain.OpeningHours{
			Monday:    b.OpeningHours.Monday.ToDomain(),
			Tuesday:   b.OpeningHours.Tuesday.ToDomain(),
			Wednesday: b.OpeningHours.Wednesday.ToDomain(),
			Thursday:  b.OpeningHours.Thursday.ToDomain(),
			Friday:    b.OpeningHours.Friday.ToDomain(),
			Saturday:  b.OpeningHours.Saturday.ToDomain(),
			Sunday:    b.OpeningHours.Sunday.ToDomain(),
		},
		IsActive: b.IsActive,
	}
}

// ToDomain конвертирует wire модель корта в domain
func (c Court) ToDomain() domain.Court {
	conditions := make([]domain.PriceCondition, 0, len(c.PriceConditions))
	for _, pc := range c.PriceConditions {
		conditions = append(conditions, pc.ToDomain())
	}
	exceptions := make([]domain.UnavailabilityException, 0, len(c.UnavailabilitySlots))
	for _, u := range c.UnavailabilitySlots {
		exceptions = append(exceptions, u.ToDomain())
	}

	return domain.Court{
		ID:                  c.ID,
		BranchID:            c.BranchID,
		Name:                c.Name,
		Description:         c.Description,
		Surface:             c.Surface,
		Amenities:           c.Amenities,
		MediaURLs:           c.MediaURLs,
		Terms:               c.Terms,
		DefaultPrice:        c.DefaultPrice,
		PriceConditions:     conditions,
		UnavailabilitySlots: exceptions,
		IsActive:            c.IsActive,
		Version:             c.Version,
	}
}

// CourtFromDomain конвертирует domain корт в wire модель для полной записи
func CourtFromDomain(c domain.Court) Court {
	conditions := make([]PriceCondition, 0, len(c.PriceConditions))
	for _, pc := range c.PriceConditions {
		conditions = append(conditions, PriceConditionFromDomain(pc))
	}
	exceptions := make([]UnavailabilitySlot, 0, len(c.UnavailabilitySlots))
	for _, e := range c.UnavailabilitySlots {
		exceptions = append(exceptions, UnavailabilitySlotFromDomain(e))
	}

	return Court{
		ID:                  c.ID,
		BranchID:            c.BranchID,
		Name:                c.Name,
		Description:         c.Description,
		Surface:             c.Surface,
		Amenities:           c.Amenities,
		MediaURLs:           c.MediaURLs,
		Terms:               c.Terms,
		DefaultPrice:        c.DefaultPrice,
		PriceConditions:     conditions,
		UnavailabilitySlots: exceptions,
		IsActive:            c.IsActive,
		Version:             c.Version,
	}
}
