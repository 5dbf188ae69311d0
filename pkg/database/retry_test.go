package database

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusyError(t *testing.T) {
	t.Parallel()

	assert.False(t, isBusyError(nil))
	assert.False(t, isBusyError(errors.New("syntax error")))
	assert.True(t, isBusyError(errors.New("database is locked")))
	assert.True(t, isBusyError(errors.New("database table is locked")))
	assert.True(t, isBusyError(errors.New("SQLITE_BUSY: unable to open")))
	assert.True(t, isBusyError(errors.New("sqlite error (5)")))
}

func TestRetryWithBackoffSucceedsAfterBusy(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffStopsOnNonBusy(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := retryWithBackoff(context.Background(), 3, func() error {
		attempts++
		return errors.New("syntax error")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffExhaustsRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	err := retryWithBackoff(context.Background(), 2, func() error {
		attempts++
		return errors.New("SQLITE_BUSY")
	})
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}
