package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sifat-99/driverly/internal/domain"
	bookingRepo "github.com/sifat-99/driverly/internal/infra/storage/booking"
	"github.com/sifat-99/driverly/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByUser получает бронирования пользователя, новые первыми
// Пустой результат - явный сигнал отсутствия бронирований (ErrNoBookings)
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByUser: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	if len(bookings) == 0 {
		s.logger.Info("ListByUser: no bookings found for user=%d", userID)
		return nil, ErrNoBookings
	}

	s.logger.Info("ListByUser: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования, новые первыми
// Используется административной панелью
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update обновляет статус и/или статус оплаты бронирования
// Оба перехода проверяются по таблицам переходов до записи:
// pending -> confirmed/cancelled, confirmed -> completed/cancelled;
// оплата pending -> paid/failed. Запись выполняется одним UPDATE,
// поэтому частично примененных обновлений не бывает
func (s *Service) Update(ctx context.Context, bookingID int64, status, paymentStatus *string) error {
	var newStatus *domain.BookingStatus
	if status != nil {
		st := domain.BookingStatus(*status)
		if !st.IsValid() {
			s.logger.Warn("Update: invalid status=%s for booking id=%d", *status, bookingID)
			return ErrInvalidStatus
		}
		newStatus = &st
	}

	var newPaymentStatus *domain.PaymentStatus
	if paymentStatus != nil {
		ps := domain.PaymentStatus(*paymentStatus)
		if !ps.IsValid() {
			s.logger.Warn("Update: invalid paymentStatus=%s for booking id=%d", *paymentStatus, bookingID)
			return ErrInvalidPaymentStatus
		}
		newPaymentStatus = &ps
	}

	if newStatus == nil && newPaymentStatus == nil {
		return nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if newStatus != nil && !booking.Status.CanTransitionTo(*newStatus) {
		s.logger.Warn("Update: transition %s -> %s denied for booking id=%d",
			booking.Status, *newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, *newStatus)
	}

	if newPaymentStatus != nil && !booking.PaymentStatus.CanTransitionTo(*newPaymentStatus) {
		s.logger.Warn("Update: payment transition %s -> %s denied for booking id=%d",
			booking.PaymentStatus, *newPaymentStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.PaymentStatus, *newPaymentStatus)
	}

	if err := s.bookingRepo.UpdateStatuses(ctx, bookingID, newStatus, newPaymentStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", bookingID)
	return nil
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}
