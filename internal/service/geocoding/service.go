package geocoding

import (
	"context"
	"errors"
	"fmt"

	"github.com/sifat-99/driverly/internal/integrations/nominatim"
)

// Service тонкий сервис геокодирования поверх Nominatim
// Сырой массив результатов отдается вызывающему без преобразований
type Service struct {
	client GeocodingClient
	logger Logger
}

// NewService создает новый экземпляр сервиса геокодирования
func NewService(client GeocodingClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Search ищет координаты по свободному текстовому названию места
func (s *Service) Search(ctx context.Context, locationName string) ([]nominatim.Place, error) {
	s.logger.Info("Search: geocoding location=%q", locationName)

	places, err := s.client.Search(ctx, locationName)
	if err != nil {
		switch {
		case errors.Is(err, nominatim.ErrPlaceNotFound):
			s.logger.Info("Search: no match for location=%q", locationName)
			return nil, ErrPlaceNotFound
		case errors.Is(err, nominatim.ErrUpstream):
			// Цепочка сохраняется: статус-код апстрима доступен через errors.As
			s.logger.Error("Search: upstream failure for location=%q: %v", locationName, err)
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		default:
			s.logger.Error("Search: client error for location=%q: %v", locationName, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Search: found %d place(s) for location=%q", len(places), locationName)
	return places, nil
}
