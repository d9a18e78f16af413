package models

import (
	"time"

	"github.com/sifat-99/driverly/internal/domain"
)

// BookingResponse ответ с данными бронирования
// Точки подачи/возврата сериализуются как GeoJSON Point
type BookingResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	CarName         string          `json:"carName"`
	CarType         string          `json:"carType"`
	PickupAddress   string          `json:"pickupAddress"`
	DropoffAddress  string          `json:"dropoffAddress"`
	PickupLocation  domain.GeoPoint `json:"pickupLocation"`
	DropoffLocation domain.GeoPoint `json:"dropoffLocation"`
	PickupDate      string          `json:"pickupDate"`  // "2024-08-15"
	DropoffDate     string          `json:"dropoffDate"` // "2024-08-18"
	TotalDates      int             `json:"totalDates"`
	TotalFare       float64         `json:"totalFare"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CarName:         b.CarName,
		CarType:         string(b.CarClass),
		PickupAddress:   b.PickupAddress,
		DropoffAddress:  b.DropoffAddress,
		PickupLocation:  b.PickupPoint,
		DropoffLocation: b.DropoffPoint,
		PickupDate:      b.PickupDate.Format(domain.DateFormat),
		DropoffDate:     b.DropoffDate.Format(domain.DateFormat),
		TotalDates:      b.TotalDays,
		TotalFare:       b.TotalFare,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
