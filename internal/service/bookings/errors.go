package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoBookings возвращается, когда у пользователя нет ни одного бронирования
	// Отличается от некорректного идентификатора, который отклоняется на границе API
	ErrNoBookings = errors.New("no bookings found for this user")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при неизвестном значении статуса оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
