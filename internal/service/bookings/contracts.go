package bookings

import (
	"context"

	"github.com/sifat-99/driverly/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatuses(ctx context.Context, id int64, status *domain.BookingStatus, paymentStatus *domain.PaymentStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
