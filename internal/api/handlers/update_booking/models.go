package update_booking

// UpdateBookingRequest HTTP request model
// Обновлению подлежат только status и paymentStatus
type UpdateBookingRequest struct {
	BookingID     int64   `json:"bookingId"`
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// HasUpdates returns true if at least one updatable field is present
func (r *UpdateBookingRequest) HasUpdates() bool {
	return r.Status != nil || r.PaymentStatus != nil
}

// MessageResponse простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
