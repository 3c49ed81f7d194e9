package sources

import (
	"context"
	"errors"

	"country-currency/core/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// newBreaker creates the circuit breaker guarding one source.
// It opens after cfg.BreakerFailures consecutive failures and probes again
// with a single request once cfg.BreakerOpenSeconds elapsed. A call cancelled
// by its caller says nothing about the source and is not a failure.
func newBreaker(source string, cfg Config, logger *zap.Logger) *gobreaker.CircuitBreaker[any] {
	metrics.CircuitBreakerState.WithLabelValues(source).Set(stateToFloat(gobreaker.StateClosed))

	threshold := cfg.breakerFailures()
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        source,
		MaxRequests: 1,
		Timeout:     cfg.breakerOpen(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("source", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// execute runs fn through the breaker and reports rejections as
// ExternalSourceError.
func execute[T any](cb *gobreaker.CircuitBreaker[any], source string, fn func() (T, error)) (T, error) {
	var zero T
	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, &ExternalSourceError{Source: source, Reason: ReasonCircuitOpen, Err: err}
		}
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, &ExternalSourceError{Source: source, Reason: ReasonDecode}
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
