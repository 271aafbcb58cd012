package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда значение отсутствует в кэше
	ErrCacheMiss = errors.New("schedule.cache: cache miss")

	// ErrInternal возвращается при ошибках Redis или сериализации
	ErrInternal = errors.New("schedule.cache: internal error")
)
