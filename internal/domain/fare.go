package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDateRange возвращается, когда дата возврата раньше даты подачи
var ErrInvalidDateRange = errors.New("dropoff date is before pickup date")

// CarClass represents the rental vehicle class
type CarClass string

const (
	ClassCompact CarClass = "compact"
	ClassSedan   CarClass = "sedan"
	ClassSUV     CarClass = "suv"
	ClassLuxury  CarClass = "luxury"
	ClassVan     CarClass = "van"
)

// FallbackDailyRate ставка для класса van и любых неизвестных классов
const FallbackDailyRate = 20.0

// dailyRates фиксированная таблица суточных ставок по классам автомобилей
var dailyRates = map[CarClass]float64{
	ClassLuxury:  100.0,
	ClassSUV:     80.0,
	ClassSedan:   50.0,
	ClassCompact: 40.0,
	ClassVan:     FallbackDailyRate,
}

// IsKnown returns true if the class is one of the fixed enumeration
func (c CarClass) IsKnown() bool {
	_, ok := dailyRates[c]
	return ok
}

// DailyRate возвращает суточную ставку класса автомобиля
// Неизвестные классы тарифицируются по нижней ставке, а не отклоняются
func DailyRate(class CarClass) float64 {
	if rate, ok := dailyRates[class]; ok {
		return rate
	}
	return FallbackDailyRate
}

// ComputeFare вычисляет длительность аренды и итоговую стоимость
// totalDays - округленная вверх разница дат в сутках; бронирование день-в-день
// дает 0 суток и нулевую стоимость и не отклоняется на этом уровне
func ComputeFare(class CarClass, pickupDate, dropoffDate time.Time) (totalDays int, totalFare float64, err error) {
	if dropoffDate.Before(pickupDate) {
		return 0, 0, ErrInvalidDateRange
	}

	days := dropoffDate.Sub(pickupDate).Hours() / HoursPerDay
	totalDays = int(math.Ceil(days))
	totalFare = float64(totalDays) * DailyRate(class)

	return totalDays, totalFare, nil
}
