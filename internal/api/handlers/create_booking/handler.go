package create_booking

import (
	"errors"
	"net/http"

	"github.com/sifat-99/driverly/internal/api/handlers"
	createBooking "github.com/sifat-99/driverly/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingFields      = "missing or malformed booking information"
	msgInvalidDateRange   = "dropoff date must not be before pickup date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /booking - Invalid date range: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking - Validation failed: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /booking - Failed to create booking: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Booking created successfully: booking_id=%d, user_id=%d",
		result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, CreatedResponse{
		Message: "Booking created successfully.",
		Booking: FromUseCaseResponse(result),
	})
}
