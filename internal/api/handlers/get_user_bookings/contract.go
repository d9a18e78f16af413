package get_user_bookings

import (
	"context"

	"github.com/sifat-99/driverly/internal/service/bookings/models"
)

type BookingService interface {
	ListByUser(ctx context.Context, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
