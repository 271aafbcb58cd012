package globalrules

import "errors"

var (
	// ErrConditionNotFound возвращается, когда глобальное условие не найдено
	ErrConditionNotFound = errors.New("global condition not found")

	// ErrInvalidCondition возвращается при некорректных данных условия
	ErrInvalidCondition = errors.New("invalid global condition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("globalrules service: internal error")
)
