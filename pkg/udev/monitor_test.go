package udev

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()

	m, err := NewMonitor(GroupUdev)
	if err != nil {
		t.Skipf("udev monitor not available: %v", err)
	}
	return m
}

func TestMonitorReceiveCancelled(t *testing.T) {
	m := newTestMonitor(t)
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// A real event may arrive first on a busy host.
	for {
		_, err := m.Receive(ctx)
		if err != nil {
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			return
		}
	}
}

func TestMonitorClose(t *testing.T) {
	m := newTestMonitor(t)

	errs := make(chan error, 1)
	go func() {
		for {
			if _, err := m.Receive(context.Background()); err != nil {
				errs <- err
				return
			}
		}
	}()

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("Receive did not return after Close")
	}

	_, err := m.Receive(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}
