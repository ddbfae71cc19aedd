package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// ErrNoResults means the geocoding API knows no location for the address.
var ErrNoResults = errors.New("could not find a location for the given address")

// Coordinates is a lng/lat pair.
type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Client resolves street addresses via the Google Maps geocoding API.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithEndpoint is used by tests to point at a fake server.
func NewWithEndpoint(apiKey, endpoint string) *Client {
	c := New(apiKey)
	c.endpoint = endpoint
	return c
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve returns the coordinates of a free-form address.
func (c *Client) Resolve(ctx context.Context, address string) (Coordinates, error) {
	reqURL := fmt.Sprintf("%s?address=%s&key=%s", c.endpoint, url.QueryEscape(address), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Coordinates{}, fmt.Errorf("geocode request failed: HTTP %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, err
	}
	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return Coordinates{}, ErrNoResults
	}
	return body.Results[0].Geometry.Location, nil
}
