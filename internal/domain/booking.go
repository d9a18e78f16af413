package domain

import "time"

// BookingStatus represents the status of a rental booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
// Независимая от статуса бронирования ось жизненного цикла
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// statusTransitions таблица допустимых переходов статуса бронирования
// cancelled и completed - терминальные статусы
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// paymentTransitions таблица допустимых переходов статуса оплаты
// paid и failed - терминальные статусы
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {},
	PaymentFailed:  {},
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal returns true if no further status transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(statusTransitions[s]) == 0
}

// CanTransitionTo returns true if the transition s -> next is allowed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is a known payment status
func (p PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[p]
	return ok
}

// CanTransitionTo returns true if the transition p -> next is allowed
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a car rental booking in the system
type Booking struct {
	ID             int64
	UserID         int64
	CarName        string
	CarClass       CarClass
	PickupAddress  string
	DropoffAddress string
	PickupPoint    GeoPoint
	DropoffPoint   GeoPoint
	PickupDate     time.Time
	DropoffDate    time.Time
	TotalDays      int
	TotalFare      float64
	Status         BookingStatus
	PaymentStatus  PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}
