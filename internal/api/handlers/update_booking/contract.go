package update_booking

import "context"

type BookingService interface {
	Update(ctx context.Context, bookingID int64, status, paymentStatus *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
