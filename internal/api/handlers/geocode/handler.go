package geocode

import (
	"errors"
	"net/http"

	"github.com/sifat-99/driverly/internal/api/handlers"
	"github.com/sifat-99/driverly/internal/integrations/nominatim"
	"github.com/sifat-99/driverly/internal/service/geocoding"
)

const (
	msgLocationRequired = "locationName is required"
	msgPlaceNotFound    = "no results found for this location"
	msgUpstreamError    = "error fetching data from geocoding service"
)

type Handler struct {
	service GeocodingService
	logger  Logger
}

func NewHandler(service GeocodingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/book-rental?locationName=
// Отдает сырой массив результатов Nominatim без преобразований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationName := r.URL.Query().Get("locationName")
	if locationName == "" {
		h.logger.Warn("GET /book-rental - Missing locationName")
		handlers.RespondBadRequest(w, msgLocationRequired)
		return
	}

	places, err := h.service.Search(r.Context(), locationName)
	if err != nil {
		switch {
		case errors.Is(err, geocoding.ErrPlaceNotFound):
			h.logger.Info("GET /book-rental - No results for location=%q", locationName)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, geocoding.ErrUpstream):
			// Статус апстрима отдается клиенту как есть; 502 только когда
			// ответа не было (сетевая ошибка, таймаут)
			status := http.StatusBadGateway
			var upstreamErr *nominatim.UpstreamStatusError
			if errors.As(err, &upstreamErr) {
				status = upstreamErr.StatusCode
			}
			h.logger.Error("GET /book-rental - Upstream failure for location=%q: %v", locationName, err)
			handlers.RespondError(w, status, msgUpstreamError)

		default:
			h.logger.Error("GET /book-rental - Failed for location=%q: %v", locationName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /book-rental - Found %d place(s) for location=%q", len(places), locationName)
	handlers.RespondJSON(w, http.StatusOK, places)
}
