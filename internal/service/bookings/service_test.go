package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sifat-99/driverly/internal/domain"
	bookingRepo "github.com/sifat-99/driverly/internal/infra/storage/booking"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatuses(ctx context.Context, id int64, status *domain.BookingStatus, paymentStatus *domain.PaymentStatus) error {
	args := m.Called(ctx, id, status, paymentStatus)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		UserID:         1,
		CarName:        "Eclipse Sedan",
		CarClass:       domain.ClassSedan,
		PickupAddress:  "A",
		DropoffAddress: "B",
		PickupPoint:    domain.NewGeoPoint(10, 20),
		DropoffPoint:   domain.NewGeoPoint(11, 21),
		PickupDate:     time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		DropoffDate:    time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
		TotalDays:      3,
		TotalFare:      150,
		Status:         status,
		PaymentStatus:  domain.PaymentPending,
	}
}

func TestListByUser_ReturnsBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByUserID", ctx, int64(1)).
		Return([]*domain.Booking{sampleBooking(42, domain.StatusPending)}, nil).Once()

	resp, err := svc.ListByUser(ctx, 1)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(42), resp.Bookings[0].ID)
	assert.Equal(t, "sedan", resp.Bookings[0].CarType)
	assert.Equal(t, "2024-08-15", resp.Bookings[0].PickupDate)
	assert.Equal(t, "Point", resp.Bookings[0].PickupLocation.Type)
	mockRepo.AssertExpectations(t)
}

func TestListByUser_EmptyIsNoBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetByUserID", mock.Anything, int64(5)).
		Return([]*domain.Booking{}, nil).Once()

	_, err := svc.ListByUser(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNoBookings)
}

func TestListAll_NewestFirstPassthrough(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetAll", mock.Anything).
		Return([]*domain.Booking{
			sampleBooking(2, domain.StatusConfirmed),
			sampleBooking(1, domain.StatusPending),
		}, nil).Once()

	resp, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, int64(1), resp.Bookings[1].ID)
}

// matchStatus сопоставляет *BookingStatus аргумент с ожидаемым значением
func matchStatus(want domain.BookingStatus) interface{} {
	return mock.MatchedBy(func(v *domain.BookingStatus) bool { return v != nil && *v == want })
}

// matchPayment сопоставляет *PaymentStatus аргумент с ожидаемым значением
func matchPayment(want domain.PaymentStatus) interface{} {
	return mock.MatchedBy(func(v *domain.PaymentStatus) bool { return v != nil && *v == want })
}

func strPtr(s string) *string { return &s }

func TestUpdate_AllowedStatusTransition(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetByID", mock.Anything, int64(42)).
		Return(sampleBooking(42, domain.StatusPending), nil).Once()
	mockRepo.On("UpdateStatuses", mock.Anything, int64(42), matchStatus(domain.StatusConfirmed),
		mock.MatchedBy(func(v *domain.PaymentStatus) bool { return v == nil })).
		Return(nil).Once()

	err := svc.Update(context.Background(), 42, strPtr("confirmed"), nil)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_DeniedStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		next    string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"completed to cancelled", domain.StatusCompleted, "cancelled"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"confirmed to pending", domain.StatusConfirmed, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			svc := NewService(mockRepo, nopLogger{})

			mockRepo.On("GetByID", mock.Anything, int64(42)).
				Return(sampleBooking(42, tt.current), nil).Once()

			err := svc.Update(context.Background(), 42, strPtr(tt.next), nil)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			mockRepo.AssertNotCalled(t, "UpdateStatuses")
		})
	}
}

func TestUpdate_UnknownStatus(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	err := svc.Update(context.Background(), 42, strPtr("Confirmed"), nil)

	// Канонические статусы - строго в нижнем регистре
	assert.ErrorIs(t, err, ErrInvalidStatus)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestUpdate_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, bookingRepo.ErrBookingNotFound).Once()

	err := svc.Update(context.Background(), 99, strPtr("confirmed"), nil)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate_AllowedPaymentTransitions(t *testing.T) {
	for _, next := range []string{"paid", "failed"} {
		t.Run("pending to "+next, func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			svc := NewService(mockRepo, nopLogger{})

			mockRepo.On("GetByID", mock.Anything, int64(42)).
				Return(sampleBooking(42, domain.StatusConfirmed), nil).Once()
			mockRepo.On("UpdateStatuses", mock.Anything, int64(42),
				mock.MatchedBy(func(v *domain.BookingStatus) bool { return v == nil }),
				matchPayment(domain.PaymentStatus(next))).
				Return(nil).Once()

			err := svc.Update(context.Background(), 42, nil, strPtr(next))

			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdate_PaidIsTerminal(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	booking := sampleBooking(42, domain.StatusConfirmed)
	booking.PaymentStatus = domain.PaymentPaid
	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(booking, nil).Once()

	err := svc.Update(context.Background(), 42, nil, strPtr("failed"))

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockRepo.AssertNotCalled(t, "UpdateStatuses")
}

func TestUpdate_BothFieldsSingleWrite(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetByID", mock.Anything, int64(42)).
		Return(sampleBooking(42, domain.StatusPending), nil).Once()
	mockRepo.On("UpdateStatuses", mock.Anything, int64(42),
		matchStatus(domain.StatusConfirmed), matchPayment(domain.PaymentPaid)).
		Return(nil).Once()

	err := svc.Update(context.Background(), 42, strPtr("confirmed"), strPtr("paid"))

	require.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "UpdateStatuses", 1)
}

func TestUpdate_DeniedPaymentLeavesStatusUntouched(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	// Переход статуса допустим, но платежный переход запрещен:
	// запись не выполняется вовсе, частичного применения нет
	booking := sampleBooking(42, domain.StatusPending)
	booking.PaymentStatus = domain.PaymentPaid
	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(booking, nil).Once()

	err := svc.Update(context.Background(), 42, strPtr("confirmed"), strPtr("failed"))

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockRepo.AssertNotCalled(t, "UpdateStatuses")
}

func TestDelete_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("Delete", mock.Anything, int64(42)).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), 42))
	mockRepo.AssertExpectations(t)
}

func TestDelete_AlreadyAbsent(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("Delete", mock.Anything, int64(42)).
		Return(bookingRepo.ErrBookingNotFound).Once()

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RepositoryFailure(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	svc := NewService(mockRepo, nopLogger{})

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(nil, errors.New("connection reset")).Once()

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
}
