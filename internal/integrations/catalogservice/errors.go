package catalogservice

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в каталоге
	ErrCourtNotFound = errors.New("court not found")

	// ErrBranchNotFound возвращается, когда филиал не найден в каталоге
	ErrBranchNotFound = errors.New("branch not found")

	// ErrVersionConflict возвращается, когда условная запись отклонена:
	// версия корта в каталоге изменилась после нашего чтения
	ErrVersionConflict = errors.New("court version conflict")

	// ErrValidation возвращается, когда каталог отклонил запись как некорректную
	ErrValidation = errors.New("catalogservice: record rejected by validation")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
