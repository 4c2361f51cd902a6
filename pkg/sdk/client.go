package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kailas-cloud/bnggrid"
)

const defaultBaseURL = "http://localhost:8080"

// APIError is a structured error response from the service.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bnggrid: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Client is the bnggridd SDK entry point.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		apiKey:  cfg.apiKey,
		http:    hc,
	}
}

// Convert converts one WGS84 lon/lat to a National Grid point.
func (c *Client) Convert(ctx context.Context, lon, lat float64) (bnggrid.GridPoint, error) {
	var p bnggrid.GridPoint
	err := c.post(ctx, "/v1/convert", map[string]float64{"lon": lon, "lat": lat}, &p)
	return p, err
}

// ConvertBatch converts parallel lon/lat slices; the result is
// index-aligned with the input.
func (c *Client) ConvertBatch(ctx context.Context, lons, lats []float64) ([]bnggrid.GridPoint, error) {
	var resp struct {
		Points []bnggrid.GridPoint `json:"points"`
	}
	req := map[string][]float64{"lons": lons, "lats": lats}
	if err := c.post(ctx, "/v1/convert/batch", req, &resp); err != nil {
		return nil, err
	}
	return resp.Points, nil
}

// Inverse converts a National Grid easting/northing back to WGS84 lon/lat.
func (c *Client) Inverse(ctx context.Context, easting, northing float64) (lon, lat float64, err error) {
	var resp struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	}
	req := map[string]float64{"easting": easting, "northing": northing}
	if err := c.post(ctx, "/v1/convert/inverse", req, &resp); err != nil {
		return 0, 0, err
	}
	return resp.Lon, resp.Lat, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("bnggrid: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("bnggrid: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bnggrid: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Code = "unknown"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("bnggrid: decode response: %w", err)
	}
	return nil
}
