package update_weekly_template

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCourtNotFound возвращается, когда целевой корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrVersionConflict возвращается, когда запись отклонена из-за
	// параллельного изменения корта (версия устарела)
	ErrVersionConflict = errors.New("court was modified concurrently")

	// ErrNothingToRemove возвращается, когда remove не нашел ни одного
	// recurring правила с такими днями и границами слота
	ErrNothingToRemove = errors.New("no recurring rule matched the given days and slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
