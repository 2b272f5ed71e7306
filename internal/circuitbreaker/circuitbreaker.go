// Package circuitbreaker wraps sony/gobreaker with application defaults.
package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/fd1az/dexkit/internal/apperror"
)

// Config holds circuit breaker settings.
type Config struct {
	Name        string
	MaxRequests uint32        // allowed half-open probes
	Interval    time.Duration // counters reset cadence while closed
	Timeout     time.Duration // open -> half-open transition
	MinRequests uint32        // minimum requests before tripping
	FailureRate float64       // failure ratio that trips the breaker
}

// DefaultConfig returns sensible defaults for RPC-facing breakers.
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		MinRequests: 5,
		FailureRate: 0.6,
	}
}

// CircuitBreaker is a typed wrapper around gobreaker.
type CircuitBreaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// New creates a circuit breaker from config.
func New[T any](cfg Config) *CircuitBreaker[T] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRate
		},
	}

	return &CircuitBreaker[T]{
		cb: gobreaker.NewCircuitBreaker[T](settings),
	}
}

// Execute runs fn through the breaker, mapping breaker states to app errors.
func (c *CircuitBreaker[T]) Execute(fn func() (T, error)) (T, error) {
	result, err := c.cb.Execute(fn)
	if err != nil {
		var zero T
		switch err {
		case gobreaker.ErrOpenState:
			return zero, apperror.New(apperror.CodeCircuitOpen,
				apperror.WithContext(c.cb.Name()))
		case gobreaker.ErrTooManyRequests:
			return zero, apperror.New(apperror.CodeCircuitHalfOpen,
				apperror.WithContext(c.cb.Name()))
		}
		return zero, err
	}
	return result, nil
}

// State returns the current breaker state.
func (c *CircuitBreaker[T]) State() gobreaker.State {
	return c.cb.State()
}
