package upsert_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCourtNotFound возвращается, когда целевой корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrNoCourtsMatched возвращается, когда фильтр bulk-операции не нашел
	// ни одного активного корта
	ErrNoCourtsMatched = errors.New("no active courts matched the filter")

	// ErrVersionConflict возвращается, когда запись отклонена из-за
	// параллельного изменения корта (версия устарела)
	ErrVersionConflict = errors.New("court was modified concurrently")

	// ErrAllTargetsFailed возвращается, когда bulk-операция не применилась
	// ни к одному корту
	ErrAllTargetsFailed = errors.New("operation failed for all target courts")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
