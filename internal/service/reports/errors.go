package reports

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном интервале дат
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
