package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Nominatim search API
// Прямой passthrough без ретраев: одиночная неуспешная попытка
// возвращается вызывающему как ошибка
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Nominatim
// userAgent обязателен: политика Nominatim требует описательный User-Agent
func NewClient(baseURL, userAgent string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Search ищет место по свободному текстовому названию
// Возвращает не более одного наилучшего совпадения (limit=1)
func (c *Client) Search(ctx context.Context, locationName string) ([]Place, error) {
	query := url.Values{}
	query.Set("q", locationName)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("addressdetails", "1")

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("Nominatim returned status=%d for location=%q", resp.StatusCode, locationName)
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(places) == 0 {
		c.log.Info("Nominatim found no match for location=%q", locationName)
		return nil, ErrPlaceNotFound
	}

	return places, nil
}
