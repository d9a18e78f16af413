package create_booking

import (
	"fmt"
	"time"

	"github.com/sifat-99/driverly/internal/domain"
	createBooking "github.com/sifat-99/driverly/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// totalDates и totalFare принимаются для совместимости с клиентом,
// но пересчитываются на сервере
type CreateBookingRequest struct {
	UserID             int64     `json:"userId"`
	CarName            string    `json:"carName"`
	CarType            string    `json:"carType"`
	PickupAddress      string    `json:"pickupAddress"`
	DropoffAddress     string    `json:"dropoffAddress"`
	PickupCoordinates  []float64 `json:"pickupCoordinates"`
	DropoffCoordinates []float64 `json:"dropoffCoordinates"`
	PickupDate         string    `json:"pickupDate"`  // "2024-08-15" или RFC3339
	DropoffDate        string    `json:"dropoffDate"` // "2024-08-18" или RFC3339
	TotalDates         *int      `json:"totalDates,omitempty"`
	TotalFare          *float64  `json:"totalFare,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	CarName         string          `json:"carName"`
	CarType         string          `json:"carType"`
	PickupAddress   string          `json:"pickupAddress"`
	DropoffAddress  string          `json:"dropoffAddress"`
	PickupLocation  domain.GeoPoint `json:"pickupLocation"`
	DropoffLocation domain.GeoPoint `json:"dropoffLocation"`
	PickupDate      string          `json:"pickupDate"`
	DropoffDate     string          `json:"dropoffDate"`
	TotalDates      int             `json:"totalDates"`
	TotalFare       float64         `json:"totalFare"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// CreatedResponse обертка ответа 201
type CreatedResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	pickupDate, err := parseDate(r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("pickupDate: %w", err)
	}

	dropoffDate, err := parseDate(r.DropoffDate)
	if err != nil {
		return nil, fmt.Errorf("dropoffDate: %w", err)
	}

	return &createBooking.Request{
		UserID:             r.UserID,
		CarName:            r.CarName,
		CarClass:           r.CarType,
		PickupAddress:      r.PickupAddress,
		DropoffAddress:     r.DropoffAddress,
		PickupCoordinates:  r.PickupCoordinates,
		DropoffCoordinates: r.DropoffCoordinates,
		PickupDate:         pickupDate,
		DropoffDate:        dropoffDate,
	}, nil
}

// parseDate принимает дату в формате YYYY-MM-DD или RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CarName:         resp.CarName,
		CarType:         resp.CarClass,
		PickupAddress:   resp.PickupAddress,
		DropoffAddress:  resp.DropoffAddress,
		PickupLocation:  resp.PickupPoint,
		DropoffLocation: resp.DropoffPoint,
		PickupDate:      resp.PickupDate.Format(domain.DateFormat),
		DropoffDate:     resp.DropoffDate.Format(domain.DateFormat),
		TotalDates:      resp.TotalDays,
		TotalFare:       resp.TotalFare,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
