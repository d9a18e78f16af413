package geocoding

import "errors"

var (
	// ErrPlaceNotFound возвращается, когда по названию не найдено ни одного места
	ErrPlaceNotFound = errors.New("geocoding: place not found")

	// ErrUpstream возвращается при недоступности или не-200 ответе внешнего сервиса
	ErrUpstream = errors.New("geocoding: upstream error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("geocoding: internal error")
)
