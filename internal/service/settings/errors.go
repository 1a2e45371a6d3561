package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда запись настроек отсутствует
	ErrSettingsNotFound = errors.New("shop settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoFieldsToUpdate возвращается, когда в запросе нет полей для обновления
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
