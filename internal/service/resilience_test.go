package service

import (
	"context"
	"errors"
	"testing"

	"open-instruct/internal/domain"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithResilience_RetriesThenSucceeds(t *testing.T) {
	breaker := newGenerationBreaker("test")
	calls := 0

	result, err := generateWithResilience(context.Background(), breaker, func(ctx context.Context) (string, error) {
		calls++
		if calls < generationAttempts {
			return "", errors.New("transient parse failure")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, generationAttempts, calls)
}

func TestGenerateWithResilience_ExhaustsAttempts(t *testing.T) {
	breaker := newGenerationBreaker("test")
	calls := 0

	_, err := generateWithResilience(context.Background(), breaker, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("persistent failure")
	})

	assert.Error(t, err)
	assert.Equal(t, generationAttempts, calls)
}

func TestGenerateWithResilience_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	breaker := newGenerationBreaker("test")
	failing := func(ctx context.Context) (string, error) {
		return "", errors.New("model down")
	}

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := generateWithResilience(context.Background(), breaker, failing)
		require.Error(t, err)
	}

	_, err := generateWithResilience(context.Background(), breaker, failing)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestGenerateWithResilience_ContextCancelStopsRetries(t *testing.T) {
	breaker := newGenerationBreaker("test")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := generateWithResilience(ctx, breaker, func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("first failure")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestTranslateGenerationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode domain.ErrorCode
	}{
		{"open breaker", gobreaker.ErrOpenState, domain.CodeServiceUnavailable},
		{"half open saturated", gobreaker.ErrTooManyRequests, domain.CodeServiceUnavailable},
		{"deadline exceeded", context.DeadlineExceeded, domain.CodeGenerationTimeout},
		{"anything else", errors.New("bad JSON"), domain.CodeGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := translateGenerationError(tt.err, 30)
			assert.Equal(t, tt.wantCode, translated.Code)
		})
	}
}
