package models

import (
	"errors"
	"fmt"
)

// FailureReason classifies why a fail-open component fell back to its default
type FailureReason string

const (
	ReasonSourceMissing      FailureReason = "source_missing"
	ReasonSourceUnreadable   FailureReason = "source_unreadable"
	ReasonMissingHeaders     FailureReason = "missing_headers"
	ReasonNoCity             FailureReason = "no_city"
	ReasonInvalidDate        FailureReason = "invalid_date"
	ReasonWeatherUnavailable FailureReason = "weather_unavailable"
	ReasonNoWeatherData      FailureReason = "no_weather_data"
	ReasonGeolocationFailed  FailureReason = "geolocation_failed"
	ReasonMatchingFailed     FailureReason = "matching_failed"
	ReasonUnknown            FailureReason = "unknown"
)

// Failure is the error returned by fail-open components
type Failure struct {
	Reason FailureReason
	Err    error
}

// NewFailure wraps err with a reason
func NewFailure(reason FailureReason, err error) *Failure {
	return &Failure{Reason: reason, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Reason)
	}
	return fmt.Sprintf("%s: %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ReasonOf extracts the failure reason from err.
// Returns "" for a nil error and ReasonUnknown for errors that are not a *Failure.
func ReasonOf(err error) FailureReason {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ReasonUnknown
}
