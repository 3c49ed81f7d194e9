package sources

import "fmt"

// Source names used in errors, logs and metrics.
const (
	SourceCountries = "countries"
	SourceRates     = "exchange_rates"
)

// Failure reasons reported by ExternalSourceError.
const (
	ReasonTimeout      = "request timed out"
	ReasonTransport    = "transport failure"
	ReasonStatus       = "unexpected status"
	ReasonDecode       = "undecodable payload"
	ReasonEmpty        = "empty payload"
	ReasonUnsuccessful = "unsuccessful result"
	ReasonCircuitOpen  = "circuit open"
)

// ExternalSourceError reports that an upstream source could not deliver
// usable data.
type ExternalSourceError struct {
	Source string
	Reason string
	Err    error
}

func (e *ExternalSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not fetch data from %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("could not fetch data from %s: %s", e.Source, e.Reason)
}

func (e *ExternalSourceError) Unwrap() error {
	return e.Err
}
