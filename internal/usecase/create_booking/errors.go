package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих или некорректных полях запроса
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата возврата раньше даты подачи
	ErrInvalidDateRange = errors.New("create_booking: dropoff date is before pickup date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
