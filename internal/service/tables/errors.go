package tables

import "errors"

var (
	// ErrStorageUnavailable возвращается, когда хранилище недоступно
	ErrStorageUnavailable = errors.New("tables: storage unavailable")
)
