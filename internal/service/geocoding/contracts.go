package geocoding

import (
	"context"

	"github.com/sifat-99/driverly/internal/integrations/nominatim"
)

// GeocodingClient интерфейс клиента внешнего сервиса геокодирования
type GeocodingClient interface {
	Search(ctx context.Context, locationName string) ([]nominatim.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
