package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeFare_WholeDays(t *testing.T) {
	days, fare, err := ComputeFare(ClassSedan, date("2024-08-15"), date("2024-08-18"))

	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.Equal(t, 150.0, fare)
}

func TestComputeFare_RatesPerClass(t *testing.T) {
	tests := []struct {
		name     string
		class    CarClass
		wantFare float64
	}{
		{"luxury", ClassLuxury, 400.0},
		{"suv", ClassSUV, 320.0},
		{"sedan", ClassSedan, 200.0},
		{"compact", ClassCompact, 160.0},
		{"van", ClassVan, 80.0},
		{"unknown class falls back to lowest rate", CarClass("limousine"), 80.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, fare, err := ComputeFare(tt.class, date("2024-08-01"), date("2024-08-05"))

			require.NoError(t, err)
			assert.Equal(t, 4, days)
			assert.Equal(t, tt.wantFare, fare)
		})
	}
}

func TestComputeFare_PartialDayRoundsUp(t *testing.T) {
	pickup := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	dropoff := time.Date(2024, 8, 16, 18, 0, 0, 0, time.UTC)

	days, fare, err := ComputeFare(ClassCompact, pickup, dropoff)

	require.NoError(t, err)
	assert.Equal(t, 2, days)
	assert.Equal(t, 80.0, fare)
}

func TestComputeFare_SameDayIsZero(t *testing.T) {
	days, fare, err := ComputeFare(ClassLuxury, date("2024-08-15"), date("2024-08-15"))

	require.NoError(t, err)
	assert.Equal(t, 0, days)
	assert.Equal(t, 0.0, fare)
}

func TestComputeFare_DropoffBeforePickup(t *testing.T) {
	_, _, err := ComputeFare(ClassSedan, date("2024-08-18"), date("2024-08-15"))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDailyRate_FallbackForUnknownClass(t *testing.T) {
	assert.Equal(t, FallbackDailyRate, DailyRate(CarClass("hovercraft")))
	assert.False(t, CarClass("hovercraft").IsKnown())
	assert.True(t, ClassVan.IsKnown())
}
