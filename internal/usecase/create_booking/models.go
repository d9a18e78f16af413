package create_booking

import (
	"time"

	"github.com/sifat-99/driverly/internal/domain"
)

// Request модель запроса на создание бронирования
// Координаты - пары [longitude, latitude], как в GeoJSON
type Request struct {
	UserID             int64
	CarName            string
	CarClass           string
	PickupAddress      string
	DropoffAddress     string
	PickupCoordinates  []float64
	DropoffCoordinates []float64
	PickupDate         time.Time
	DropoffDate        time.Time
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	UserID         int64
	CarName        string
	CarClass       string
	PickupAddress  string
	DropoffAddress string
	PickupPoint    domain.GeoPoint
	DropoffPoint   domain.GeoPoint
	PickupDate     time.Time
	DropoffDate    time.Time
	TotalDays      int
	TotalFare      float64
	Status         string
	PaymentStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// fromDomain конвертирует доменную модель в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		UserID:         b.UserID,
		CarName:        b.CarName,
		CarClass:       string(b.CarClass),
		PickupAddress:  b.PickupAddress,
		DropoffAddress: b.DropoffAddress,
		PickupPoint:    b.PickupPoint,
		DropoffPoint:   b.DropoffPoint,
		PickupDate:     b.PickupDate,
		DropoffDate:    b.DropoffDate,
		TotalDays:      b.TotalDays,
		TotalFare:      b.TotalFare,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
