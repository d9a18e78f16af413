package delete_booking

import (
	"errors"
	"net/http"

	"github.com/sifat-99/driverly/internal/api/handlers"
	"github.com/sifat-99/driverly/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingIDRequired  = "bookingId is required"
	msgBookingNotFound    = "booking not found or already deleted"
)

// DeleteBookingRequest HTTP request model
type DeleteBookingRequest struct {
	BookingID int64 `json:"bookingId"`
}

// MessageResponse простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

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

// Handle DELETE /api/v1/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingID <= 0 {
		h.logger.Warn("DELETE /booking - Missing or invalid bookingId")
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	if err := h.service.Delete(r.Context(), req.BookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /booking - Not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /booking - Failed to delete: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking - Booking deleted successfully: booking_id=%d", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: "Booking deleted successfully."})
}
