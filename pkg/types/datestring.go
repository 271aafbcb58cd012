package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string, expected YYYY-MM-DD")

// DateString календарная дата в формате "YYYY-MM-DD" (например, "2024-06-10")
// Используется как ключ правил и кэша вместо time.Time, чтобы сравнение дат
// не зависело от часового пояса и компонента времени
type DateString string

// NewDateString создает DateString из time.Time (отбрасывает время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format("2006-01-02"))
}

// NewDateStringFromString валидирует строку и создает DateString
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return NewDateString(t), nil
}

// String возвращает строковое представление даты
func (ds DateString) String() string {
	return string(ds)
}

// Validate проверяет корректность формата
func (ds DateString) Validate() error {
	_, err := time.Parse("2006-01-02", string(ds))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(ds))
	}
	return nil
}

// Time возвращает дату как time.Time (полночь UTC)
func (ds DateString) Time() (time.Time, error) {
	t, err := time.Parse("2006-01-02", string(ds))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(ds))
	}
	return t, nil
}

// Weekday возвращает день недели даты
func (ds DateString) Weekday() (time.Weekday, error) {
	t, err := ds.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// AddDays возвращает дату, сдвинутую на days дней вперед
func (ds DateString) AddDays(days int) (DateString, error) {
	t, err := ds.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// IsAfter возвращает true, если ds строго позже other
// Формат YYYY-MM-DD сортируется лексикографически
func (ds DateString) IsAfter(other DateString) bool {
	return string(ds) > string(other)
}

// IsBefore возвращает true, если ds строго раньше other
func (ds DateString) IsBefore(other DateString) bool {
	return string(ds) < string(other)
}
