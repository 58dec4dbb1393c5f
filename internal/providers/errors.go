package providers

import "fmt"

// UpstreamError reports a failed exchange with an upstream service: transport
// errors, timeouts, non-2xx statuses and payloads that do not match the
// expected schema.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CityNotFoundError is returned when geocoding yields no match.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city '%s' not found", e.City)
}

func newUpstreamError(service string, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Service: service, Err: fmt.Errorf(format, args...)}
}
