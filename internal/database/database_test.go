package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectWithRetryEventualSuccess(t *testing.T) {
	var slept []time.Duration
	attempts := 0

	m := NewManager()
	m.connect = func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("store not ready")
		}
		return Connect(fmt.Sprintf("file:retry_%s?mode=memory&cache=shared", t.Name()))
	}

	policy := RetryPolicy{
		Attempts:  5,
		BaseDelay: 5 * time.Second,
		MaxDelay:  30 * time.Second,
		Sleep:     func(d time.Duration) { slept = append(slept, d) },
	}

	require.NoError(t, m.ConnectWithRetry("ignored", policy))
	require.Equal(t, 3, attempts)
	require.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, slept)
	require.Equal(t, StateConnected, m.State())
	require.True(t, m.Connected())
	require.NotNil(t, m.DB())
}

func TestConnectWithRetryExhausted(t *testing.T) {
	var slept []time.Duration

	m := NewManager()
	m.connect = func(dsn string) (*gorm.DB, error) {
		return nil, errors.New("store not ready")
	}

	policy := RetryPolicy{
		Attempts:  4,
		BaseDelay: 10 * time.Second,
		MaxDelay:  15 * time.Second,
		Sleep:     func(d time.Duration) { slept = append(slept, d) },
	}

	err := m.ConnectWithRetry("ignored", policy)
	require.Error(t, err)
	// delay doubles but is capped at MaxDelay, and the last attempt does not sleep
	require.Equal(t, []time.Duration{10 * time.Second, 15 * time.Second, 15 * time.Second}, slept)
	require.Equal(t, StateDisconnected, m.State())
	require.Nil(t, m.DB())
}

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := Connect(fmt.Sprintf("file:connect_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NotNil(t, db)
}
