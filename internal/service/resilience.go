package service

import (
	"context"
	"errors"
	"time"

	"open-instruct/internal/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

const (
	// generationAttempts is the total attempts per generation, matching
	// the LLM's tendency to emit unparseable JSON on a bad sample.
	generationAttempts = 3

	breakerFailureThreshold = 5
	breakerHalfOpenProbes   = 3
	breakerOpenTimeout      = 60 * time.Second

	// Overall kill switches per generation kind.
	objectivesTimeout = 60 * time.Second
	quizTimeout       = 30 * time.Second
)

// newGenerationBreaker builds the circuit breaker shared policy: open
// after five consecutive failures, probe again after the timeout with
// three half-open requests.
func newGenerationBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
	})
}

// generateWithResilience runs fn behind the circuit breaker with
// exponential-backoff retries. The context bounds the whole operation;
// callers translate the returned error into a domain error.
func generateWithResilience[T any](
	ctx context.Context,
	breaker *gobreaker.CircuitBreaker,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	result, err := breaker.Execute(func() (interface{}, error) {
		var value T
		operation := func() error {
			var opErr error
			value, opErr = fn(ctx)
			return opErr
		}

		policy := backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), generationAttempts-1),
			ctx,
		)
		if err := backoff.Retry(operation, policy); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// translateGenerationError maps pipeline failures onto domain errors:
// open breaker -> service unavailable, expired context -> timeout,
// anything else -> generation failed.
func translateGenerationError(err error, timeoutSeconds int) *domain.DomainError {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewServiceUnavailableError("LLM generation is temporarily unavailable", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewGenerationTimeoutError(timeoutSeconds)
	}
	return domain.NewGenerationFailedError(err.Error(), err)
}
