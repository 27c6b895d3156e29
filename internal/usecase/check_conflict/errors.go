package check_conflict

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflict: invalid input data")

	// ErrStorageUnavailable возвращается при отказе хранилища
	// Отказ проверки никогда не трактуется как отсутствие конфликта
	ErrStorageUnavailable = errors.New("check_conflict: storage unavailable")
)
