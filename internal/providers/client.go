package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	geocodingServiceName = "geocoding"
	forecastServiceName  = "forecast"
)

// NewHTTPClient builds the outbound client shared by every provider for the
// lifetime of the process.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// openMeteoError is the body Open-Meteo sends alongside 4xx/5xx statuses.
type openMeteoError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func getJSON(ctx context.Context, client *http.Client, service, endpoint string, params url.Values, out interface{}) error {
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return newUpstreamError(service, "invalid endpoint %q: %w", endpoint, err)
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return newUpstreamError(service, "failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &UpstreamError{Service: service, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr openMeteoError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Reason != "" {
			return newUpstreamError(service, "returned status code %d: %s", resp.StatusCode, apiErr.Reason)
		}
		return newUpstreamError(service, "returned status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newUpstreamError(service, "returned malformed JSON: %w", err)
	}

	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
