package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sifat-99/driverly/internal/integrations/nominatim"
	"github.com/sifat-99/driverly/internal/service/geocoding"
)

type MockGeocodingService struct {
	mock.Mock
}

func (m *MockGeocodingService) Search(ctx context.Context, locationName string) ([]nominatim.Place, error) {
	args := m.Called(ctx, locationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nominatim.Place), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// upstreamError строит цепочку ошибок в том виде, в каком ее возвращает
// сервис геокодирования при не-200 ответе Nominatim
func upstreamError(statusCode int) error {
	return fmt.Errorf("%w: %w", geocoding.ErrUpstream,
		&nominatim.UpstreamStatusError{StatusCode: statusCode, Body: "upstream says no"})
}

func TestHandle_Success(t *testing.T) {
	mockSvc := &MockGeocodingService{}
	h := NewHandler(mockSvc, nopLogger{})

	mockSvc.On("Search", mock.Anything, "Dhaka").
		Return([]nominatim.Place{{PlaceID: 123, Lat: "23.8103", Lon: "90.4125", DisplayName: "Dhaka, Bangladesh"}}, nil).Once()

	rec := doRequest(h, "/api/v1/book-rental?locationName=Dhaka")

	require.Equal(t, http.StatusOK, rec.Code)

	var places []nominatim.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	require.Len(t, places, 1)
	assert.Equal(t, "Dhaka, Bangladesh", places[0].DisplayName)
	mockSvc.AssertExpectations(t)
}

func TestHandle_MissingLocationName(t *testing.T) {
	mockSvc := &MockGeocodingService{}
	h := NewHandler(mockSvc, nopLogger{})

	rec := doRequest(h, "/api/v1/book-rental")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSvc.AssertNotCalled(t, "Search")
}

func TestHandle_NotFound(t *testing.T) {
	mockSvc := &MockGeocodingService{}
	h := NewHandler(mockSvc, nopLogger{})

	mockSvc.On("Search", mock.Anything, "nowhere at all").
		Return(nil, geocoding.ErrPlaceNotFound).Once()

	rec := doRequest(h, "/api/v1/book-rental?locationName=nowhere+at+all")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_UpstreamStatusPropagated(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"too many requests", http.StatusTooManyRequests},
		{"service unavailable", http.StatusServiceUnavailable},
		{"forbidden", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockGeocodingService{}
			h := NewHandler(mockSvc, nopLogger{})

			mockSvc.On("Search", mock.Anything, "Dhaka").
				Return(nil, upstreamError(tt.statusCode)).Once()

			rec := doRequest(h, "/api/v1/book-rental?locationName=Dhaka")

			// Статус апстрима отдается клиенту без изменений
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestHandle_UpstreamUnreachableIsBadGateway(t *testing.T) {
	mockSvc := &MockGeocodingService{}
	h := NewHandler(mockSvc, nopLogger{})

	// Ответа от апстрима не было, статус-кода нет
	mockSvc.On("Search", mock.Anything, "Dhaka").
		Return(nil, fmt.Errorf("%w: connection refused", geocoding.ErrUpstream)).Once()

	rec := doRequest(h, "/api/v1/book-rental?locationName=Dhaka")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	mockSvc := &MockGeocodingService{}
	h := NewHandler(mockSvc, nopLogger{})

	mockSvc.On("Search", mock.Anything, "Dhaka").
		Return(nil, geocoding.ErrInternal).Once()

	rec := doRequest(h, "/api/v1/book-rental?locationName=Dhaka")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
