package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sifat-99/driverly/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Длительность и стоимость пересчитываются на сервере: присланные клиентом
// totalDates/totalFare игнорируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, car=%q, class=%s, pickup=%s, dropoff=%s",
		req.UserID, req.CarName, req.CarClass,
		req.PickupDate.Format(domain.DateFormat), req.DropoffDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	carClass := domain.CarClass(req.CarClass)
	if !carClass.IsKnown() {
		// Неизвестный класс не отклоняется, а тарифицируется по нижней ставке
		uc.logger.Warn("CreateBooking: unknown car class %q, using fallback rate", req.CarClass)
	}

	// 2. Расчет длительности и стоимости аренды
	totalDays, totalFare, err := domain.ComputeFare(carClass, req.PickupDate, req.DropoffDate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			uc.logger.Warn("CreateBooking: invalid date range for user=%d", req.UserID)
			return nil, ErrInvalidDateRange
		}
		uc.logger.Error("CreateBooking: fare computation failed: %v", err)
		return nil, fmt.Errorf("%w: fare computation failed: %v", ErrInternal, err)
	}

	// 3. Создаем бронирование: оба статуса начинаются в pending
	booking := &domain.Booking{
		UserID:         req.UserID,
		CarName:        req.CarName,
		CarClass:       carClass,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		PickupPoint:    domain.NewGeoPoint(req.PickupCoordinates[0], req.PickupCoordinates[1]),
		DropoffPoint:   domain.NewGeoPoint(req.DropoffCoordinates[0], req.DropoffCoordinates[1]),
		PickupDate:     req.PickupDate,
		DropoffDate:    req.DropoffDate,
		TotalDays:      totalDays,
		TotalFare:      totalFare,
		Status:         domain.StatusPending,
		PaymentStatus:  domain.PaymentPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to persist booking for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, days=%d, fare=%.2f",
		created.ID, created.TotalDays, created.TotalFare)

	return fromDomain(created), nil
}
