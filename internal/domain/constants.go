package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoursPerDay количество часов в сутках для расчета длительности аренды
const HoursPerDay = 24
