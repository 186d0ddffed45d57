package inhibit

import (
	"fmt"
	"github.com/godbus/dbus/v5"
	"io"
	"os"
	"strings"
)

const (
	dbusDest             = "org.freedesktop.login1"
	dbusManagerInterface = "org.freedesktop.login1.Manager"
	dbusPath             = "/org/freedesktop/login1"
)

type Inhibitor struct {
	conn   *dbus.Conn
	login1 dbus.BusObject
}

// New opens a private connection to the system bus.
// Locks taken through the Inhibitor outlive Close; they are tied to the returned file descriptors
// only.
func New() (*Inhibitor, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}

	return &Inhibitor{
		conn:   conn,
		login1: conn.Object(dbusDest, dbusPath),
	}, nil
}

type What string

const (
	WhatHandleHibernateKey What = "handle-hibernate-key"
	WhatHandleLidSwitch    What = "handle-lid-switch"
	WhatHandlePowerKey     What = "handle-power-key"
	WhatHandleSuspendKey   What = "handle-suspend-key"
	WhatIdle               What = "idle"
	WhatShutdown           What = "shutdown"
	WhatSleep              What = "sleep"
)

type Mode string

const (
	ModeBlock     Mode = "block"
	ModeBlockWeak Mode = "block-weak"
	ModeDelay     Mode = "delay"
)

// Inhibit creates an inhibition lock. It takes four parameters: what, who, why,
// and mode.
//   - what is one or more of actions that should be inhibited.
//   - who should be a short human-readable string identifying the application taking the lock.
//   - why should be a short human-readable string identifying the reason why the lock is taken.
//   - mode determines whether the inhibition shall be considered mandatory ("block") or whether it
//     should just delay the operation to a certain maximum time ("delay"),
//     while "block-weak" will create an inhibitor that is automatically ignored in some
//     circumstances.
//
// The lock is released the moment when the returned object and all its duplicates are closed.
func (i *Inhibitor) Inhibit(who string, why string, mode Mode, what ...What) (io.Closer, error) {
	if len(what) == 0 {
		return nil, fmt.Errorf("failed to create inhibit lock: nothing to inhibit")
	}

	var fd dbus.UnixFD

	err := i.login1.
		Call(dbusManagerInterface+".Inhibit", 0, joinWhat(what), who, why, string(mode)).
		Store(&fd)
	if err != nil {
		return nil, fmt.Errorf("failed to create inhibit lock: %w", err)
	}

	return os.NewFile(uintptr(fd), "inhibit"), nil
}

// Lock describes an inhibition lock currently registered with logind, by any process.
type Lock struct {
	What string
	Who  string
	Why  string
	Mode string
	UID  uint32
	PID  uint32
}

// ListInhibitors returns all inhibition locks currently in effect.
func (i *Inhibitor) ListInhibitors() ([]Lock, error) {
	var locks []Lock

	err := i.login1.
		Call(dbusManagerInterface+".ListInhibitors", 0).
		Store(&locks)
	if err != nil {
		return nil, fmt.Errorf("failed to list inhibitors: %w", err)
	}

	return locks, nil
}

// Close closes the bus connection. Locks already taken are not affected.
func (i *Inhibitor) Close() error {
	if i.conn == nil {
		return nil
	}

	if err := i.conn.Close(); err != nil {
		return fmt.Errorf("failed to close system bus connection: %w", err)
	}

	return nil
}

func joinWhat(elems []What) string {
	const sep = ":"
	var n int
	n += len(sep) * (len(elems) - 1)
	for _, elem := range elems {
		n += len(elem)
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(string(elems[0]))
	for _, s := range elems[1:] {
		b.WriteString(sep)
		b.WriteString(string(s))
	}
	return b.String()
}
