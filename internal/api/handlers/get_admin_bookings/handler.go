package get_admin_bookings

import (
	"net/http"

	"github.com/sifat-99/driverly/internal/api/handlers"
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

// Handle GET /api/v1/admin/bookings
// Роль admin проверяется middleware до вызова обработчика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to fetch bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
