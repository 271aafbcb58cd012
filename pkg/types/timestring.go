package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// TimeString время в формате "HH:MM" (например, "09:00")
// Используется для времени слотов и рабочих часов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString валидирует строку и создает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем (например, "9:05" -> "09:05")
	return NewTimeString(t), nil
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// Validate проверяет корректность формата
func (ts TimeString) Validate() error {
	_, err := time.Parse("15:04", string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// MinutesFromMidnight возвращает количество минут с полуночи
func (ts TimeString) MinutesFromMidnight() (int, error) {
	t, err := time.Parse("15:04", string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore возвращает true, если ts строго раньше other
// Некорректные значения считаются равными (сравнение не падает)
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.MinutesFromMidnight()
	b, errB := other.MinutesFromMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Не переходит через полночь: 23:30 + 60 вернет ошибку
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Truncate округляет время вниз до границы granularity минут
// Например, "09:45".Truncate(60) == "09:00", "09:45".Truncate(30) == "09:30"
func (ts TimeString) Truncate(granularity int) (TimeString, error) {
	if granularity <= 0 {
		return "", fmt.Errorf("%w: granularity must be positive", ErrInvalidTimeString)
	}
	total, err := ts.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	total -= total % granularity
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
