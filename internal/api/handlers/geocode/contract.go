package geocode

import (
	"context"

	"github.com/sifat-99/driverly/internal/integrations/nominatim"
)

type GeocodingService interface {
	Search(ctx context.Context, locationName string) ([]nominatim.Place, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
