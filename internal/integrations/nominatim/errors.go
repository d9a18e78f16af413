package nominatim

import (
	"errors"
	"fmt"
)

var (
	// ErrPlaceNotFound возвращается, когда поиск не дал ни одного результата
	ErrPlaceNotFound = errors.New("nominatim client: place not found")

	// ErrUpstream возвращается, когда Nominatim вернул не-200 статус
	ErrUpstream = errors.New("nominatim client: upstream error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("nominatim client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("nominatim client: internal error")
)

// UpstreamStatusError несет статус-код не-200 ответа Nominatim,
// чтобы вызывающий мог отдать его клиенту без изменений
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", ErrUpstream, e.StatusCode, e.Body)
}

// Unwrap сопоставляет ошибку с ErrUpstream через errors.Is
func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstream
}
