package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Result is a forward-geocoding match.
type Result struct {
	Latitude  float64
	Longitude float64
	Label     string
}

// Geocoder resolves a freeform address to coordinates. A nil result with a
// nil error means the address produced no candidates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Client calls a positionstack-style forward-geocoding HTTP API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type geocodeResponse struct {
	Data []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Label     string  `json:"label"`
	} `json:"data"`
}

func (c *Client) Geocode(ctx context.Context, query string) (*Result, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding endpoint: %w", err)
	}

	q := u.Query()
	q.Set("access_key", c.apiKey)
	q.Set("query", query)
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(body.Data) == 0 {
		return nil, nil
	}

	match := body.Data[0]
	return &Result{
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
		Label:     match.Label,
	}, nil
}
