package domain

import (
	"fmt"
	"math"
)

// GeoJSONPointType тип геометрии GeoJSON для точек подачи/возврата
const GeoJSONPointType = "Point"

// GeoPoint represents a GeoJSON Point: coordinates are [longitude, latitude]
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewGeoPoint creates a GeoPoint from a longitude/latitude pair
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{
		Type:        GeoJSONPointType,
		Coordinates: []float64{lng, lat},
	}
}

// Longitude returns the first coordinate of the point
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Latitude returns the second coordinate of the point
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Validate проверяет, что точка - корректная пара [longitude, latitude]
func (p GeoPoint) Validate() error {
	if p.Type != "" && p.Type != GeoJSONPointType {
		return fmt.Errorf("unsupported geometry type %q", p.Type)
	}
	if len(p.Coordinates) != 2 {
		return fmt.Errorf("coordinates must be a [longitude, latitude] pair, got %d elements", len(p.Coordinates))
	}
	for _, c := range p.Coordinates {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coordinates must be finite numbers")
		}
	}
	return nil
}
