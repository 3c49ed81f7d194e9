// Package sources fetches the two upstream datasets of a refresh: the country
// list and the USD exchange-rate table.
//
// Every fetch is bounded by a timeout (default 60s, never more than 120s) and
// is not retried. Each source sits behind its own circuit breaker; while a
// breaker is open calls fail immediately. All failures, including an empty
// payload or an unsuccessful rates result, are reported as
// *ExternalSourceError so callers can map them to "service unavailable".
//
// # Usage Example
//
//	client := sources.NewClient(cfg.Sources, logger)
//	raw, err := client.FetchCountries(ctx)
//	var srcErr *sources.ExternalSourceError
//	if errors.As(err, &srcErr) {
//	    // upstream unavailable
//	}
package sources
