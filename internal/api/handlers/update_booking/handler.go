package update_booking

import (
	"errors"
	"net/http"

	"github.com/sifat-99/driverly/internal/api/handlers"
	"github.com/sifat-99/driverly/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingIDRequired  = "bookingId is required"
	msgNoUpdateFields     = "no update fields provided"
	msgBookingNotFound    = "booking not found"
	msgInvalidStatus      = "invalid status value"
	msgInvalidTransition  = "status transition is not allowed"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking
// Оба поля применяются одной атомарной записью; поля вне
// {status, paymentStatus} отклоняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := handlers.DecodeJSONStrict(r, &req); err != nil {
		h.logger.Warn("PUT /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		h.logger.Warn("PUT /booking - Missing or invalid bookingId")
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	if !req.HasUpdates() {
		h.logger.Warn("PUT /booking - No update fields: booking_id=%d", req.BookingID)
		handlers.RespondBadRequest(w, msgNoUpdateFields)
		return
	}

	if err := h.service.Update(r.Context(), req.BookingID, req.Status, req.PaymentStatus); err != nil {
		h.respondServiceError(w, req.BookingID, err)
		return
	}

	h.logger.Info("PUT /booking - Booking updated successfully: booking_id=%d", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: "Booking updated successfully."})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, bookingID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("PUT /booking - Not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrInvalidStatus), errors.Is(err, bookings.ErrInvalidPaymentStatus):
		h.logger.Warn("PUT /booking - Invalid status value: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, bookings.ErrInvalidTransition):
		h.logger.Warn("PUT /booking - Transition denied: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

	default:
		h.logger.Error("PUT /booking - Failed to update: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
