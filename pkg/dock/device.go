package dock

import (
	"context"
	"fmt"
)

// Identity identifies one physical device instance, e.g. its kernel device path.
// It is only ever compared for equality.
type Identity string

// Device is an attached device as seen by the startup scan.
type Device struct {
	Identity   Identity
	Descriptor Descriptor
}

type Kind int

const (
	KindOther Kind = iota
	KindAttach
	KindDetach
)

func (k Kind) String() string {
	switch k {
	case KindAttach:
		return "attach"
	case KindDetach:
		return "detach"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single hotplug notification.
// Descriptor is only meaningful for KindAttach.
type Event struct {
	Kind       Kind
	Identity   Identity
	Descriptor Descriptor
}

// EventSource supplies the devices attached right now and, after that, the live hotplug events.
type EventSource interface {
	// Enumerate returns a snapshot of the currently attached devices in no particular order.
	Enumerate(ctx context.Context) ([]Device, error)

	// Next blocks until the next event is available.
	// An error means the stream is unusable; Next must not be called again.
	Next(ctx context.Context) (Event, error)
}
