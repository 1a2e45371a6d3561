package notifier

import "errors"

var (
	// ErrInvalidResponse возвращается при неожиданном ответе webhook-приёмника
	ErrInvalidResponse = errors.New("notifier.client: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("notifier.client: internal error")
)
