package nominatim

// Place результат поиска места в Nominatim
// Поля повторяют ответ search API с format=json
type Place struct {
	PlaceID     int64    `json:"place_id"`
	Licence     string   `json:"licence,omitempty"`
	OsmType     string   `json:"osm_type,omitempty"`
	OsmID       int64    `json:"osm_id,omitempty"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class,omitempty"`
	Type        string   `json:"type,omitempty"`
	DisplayName string   `json:"display_name"`
	Importance  float64  `json:"importance,omitempty"`
	BoundingBox []string `json:"boundingbox,omitempty"`
	Address     *Address `json:"address,omitempty"`
}

// Address детали адреса (addressdetails=1)
type Address struct {
	Road        string `json:"road,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
