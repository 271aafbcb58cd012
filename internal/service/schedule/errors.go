package schedule

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("court not found")

	// ErrBranchNotFound возвращается, когда филиал корта не найден в каталоге
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRangeTooWide возвращается, когда диапазон дат превышает лимит
	ErrRangeTooWide = errors.New("date range is too wide")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
