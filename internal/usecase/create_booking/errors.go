package create_booking

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("create_booking: table not found")

	// ErrTableNotAvailable возвращается, когда стол на обслуживании
	ErrTableNotAvailable = errors.New("create_booking: table is not available for booking")

	// ErrNameTooShort возвращается, когда имя клиента короче двух символов
	ErrNameTooShort = errors.New("create_booking: customer name is too short")

	// ErrInvalidPhone возвращается, когда телефон не содержит 9-10 цифр
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrSlotNotSelected возвращается, когда время начала не указано
	ErrSlotNotSelected = errors.New("create_booking: start time is not selected")

	// ErrSlotNotOnGrid возвращается, когда время начала не лежит на сетке слотов
	ErrSlotNotOnGrid = errors.New("create_booking: start time is not on the slot grid")

	// ErrInvalidDuration возвращается при длительности вне допустимых границ
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrRateLimitExceeded возвращается при превышении дневного лимита бронирований на телефон
	ErrRateLimitExceeded = errors.New("create_booking: daily booking limit exceeded for this phone")

	// ErrSlotConflict возвращается, когда запрошенное окно пересекается с существующим бронированием
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
