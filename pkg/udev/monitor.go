package udev

import (
	"context"
	"errors"
	"fmt"
	libudev "github.com/jochenvg/go-udev"
	"sync"
)

// Group selects which netlink event source a Monitor listens to.
type Group string

const (
	// GroupKernel receives uevents straight from the kernel, before udev rules ran.
	GroupKernel Group = "kernel"
	// GroupUdev receives events rebroadcast by systemd-udevd, including properties such as
	// ID_VENDOR_ID.
	GroupUdev Group = "udev"
)

const receiveBufferSize = 128 * 1024 * 1024

// ErrClosed is returned by Receive once the Monitor has been closed or its event channel has
// ended.
var ErrClosed = errors.New("monitor closed")

// Monitor receives USB device events. Only messages sent by root are accepted.
//
// Receive must not be called concurrently with itself. Close may be called from any goroutine
// and interrupts a blocked Receive.
type Monitor struct {
	devices <-chan *libudev.Device
	stop    context.CancelFunc

	done      chan struct{}
	closeOnce sync.Once
}

func NewMonitor(group Group) (*Monitor, error) {
	u := &libudev.Udev{}

	m := u.NewMonitorFromNetlink(string(group))
	if m == nil {
		return nil, fmt.Errorf("failed to create udev monitor for %q", group)
	}

	// Best effort, a larger buffer only makes overflows less likely.
	_ = m.SetReceiveBufferSize(receiveBufferSize)

	if err := m.FilterAddMatchSubsystemDevtype(SubsystemUSB, DevTypeDevice); err != nil {
		return nil, fmt.Errorf("failed to filter udev monitor: %w", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	devices, err := m.DeviceChan(ctx)
	if err != nil {
		stop()
		return nil, fmt.Errorf("failed to start udev monitor: %w", err)
	}

	return &Monitor{
		devices: devices,
		stop:    stop,
		done:    make(chan struct{}),
	}, nil
}

// Receive blocks until the next device event arrives or ctx is done.
func (m *Monitor) Receive(ctx context.Context) (*Device, error) {
	select {
	case <-m.done:
		return nil, ErrClosed
	default:
	}

	for {
		select {
		case d, ok := <-m.devices:
			if !ok {
				return nil, ErrClosed
			}
			if d == nil {
				continue
			}
			return fromLibudev(d), nil
		case <-m.done:
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close stops the monitor goroutine and interrupts a pending Receive.
func (m *Monitor) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		m.stop()
	})

	return nil
}
