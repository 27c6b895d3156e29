package conflicts

import "errors"

var (
	// ErrStorageUnavailable возвращается, когда запрос к хранилищу не удался.
	// Резолвер никогда не интерпретирует ошибку чтения как отсутствие
	// конфликта - проверка всегда закрывается в сторону отказа.
	ErrStorageUnavailable = errors.New("conflicts: storage unavailable")
)
