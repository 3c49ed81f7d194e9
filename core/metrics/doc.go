// Package metrics declares the Prometheus collectors of the service.
//
// Collectors are registered on the default registry through promauto and are
// exposed by the start command at GET /metrics.
package metrics
