package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sifat-99/driverly/internal/api/handlers"
	"github.com/sifat-99/driverly/internal/service/bookings"
)

const (
	msgUserIDRequired = "userId is required"
	msgInvalidUserID  = "invalid userId format"
	msgNoBookings     = "no bookings found for this user"
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

// Handle GET /api/v1/booking?userId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawUserID := r.URL.Query().Get("userId")
	if rawUserID == "" {
		h.logger.Warn("GET /booking - Missing userId")
		handlers.RespondBadRequest(w, msgUserIDRequired)
		return
	}

	// Некорректный идентификатор - ошибка клиента, а не пустой результат
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /booking - Invalid userId=%q", rawUserID)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNoBookings):
			h.logger.Info("GET /booking - No bookings for user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoBookings)

		default:
			h.logger.Error("GET /booking - Failed to fetch bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking - Fetched %d bookings for user_id=%d", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
