package create_booking

import (
	"fmt"

	"github.com/sifat-99/driverly/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверка дат (dropoff >= pickup) выполняется калькулятором стоимости
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.CarName == "" {
		return fmt.Errorf("%w: carName is required", ErrInvalidInput)
	}

	if req.CarClass == "" {
		return fmt.Errorf("%w: carType is required", ErrInvalidInput)
	}

	if req.PickupAddress == "" {
		return fmt.Errorf("%w: pickupAddress is required", ErrInvalidInput)
	}

	if req.DropoffAddress == "" {
		return fmt.Errorf("%w: dropoffAddress is required", ErrInvalidInput)
	}

	if req.PickupDate.IsZero() {
		return fmt.Errorf("%w: pickupDate is required", ErrInvalidInput)
	}

	if req.DropoffDate.IsZero() {
		return fmt.Errorf("%w: dropoffDate is required", ErrInvalidInput)
	}

	if err := validateCoordinates(req.PickupCoordinates, "pickupCoordinates"); err != nil {
		return err
	}

	if err := validateCoordinates(req.DropoffCoordinates, "dropoffCoordinates"); err != nil {
		return err
	}

	return nil
}

// validateCoordinates проверяет, что координаты - корректная пара [longitude, latitude]
func validateCoordinates(coords []float64, field string) error {
	if len(coords) == 0 {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}

	point := domain.GeoPoint{Type: domain.GeoJSONPointType, Coordinates: coords}
	if err := point.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}

	return nil
}
