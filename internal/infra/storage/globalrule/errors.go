package globalrule

import "errors"

var (
	// ErrConditionNotFound возвращается, когда глобальное условие не найдено
	ErrConditionNotFound = errors.New("globalrule.repository: condition not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("globalrule.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("globalrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("globalrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("globalrule.repository: failed to scan row")
)
