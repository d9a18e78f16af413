package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, BookingStatus("unknown").IsTerminal())
}

func TestPaymentStatus_Transitions(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentPaid))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPending))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentFailed.CanTransitionTo(PaymentPaid))
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestGeoPoint_Validate(t *testing.T) {
	assert.NoError(t, NewGeoPoint(10, 20).Validate())
	assert.NoError(t, GeoPoint{Coordinates: []float64{90.4, 23.8}}.Validate())

	assert.Error(t, GeoPoint{Type: "Polygon", Coordinates: []float64{1, 2}}.Validate())
	assert.Error(t, GeoPoint{Coordinates: []float64{1}}.Validate())
	assert.Error(t, GeoPoint{Coordinates: []float64{1, 2, 3}}.Validate())
	assert.Error(t, GeoPoint{}.Validate())
}

func TestGeoPoint_Accessors(t *testing.T) {
	p := NewGeoPoint(90.4125, 23.8103)

	assert.Equal(t, GeoJSONPointType, p.Type)
	assert.Equal(t, 90.4125, p.Longitude())
	assert.Equal(t, 23.8103, p.Latitude())
}
