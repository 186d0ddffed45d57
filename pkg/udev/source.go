package udev

import (
	"context"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/dock"
	"github.com/rs/zerolog"
)

type lister interface {
	Devices() ([]*Device, error)
}

type receiver interface {
	Receive(ctx context.Context) (*Device, error)
	Close() error
}

var _ dock.EventSource = (*Source)(nil)

// Source reports USB devices, i.e. subsystem "usb" with devtype "usb_device", to a
// [dock.Controller].
type Source struct {
	enumerator lister
	monitor    receiver
	log        zerolog.Logger
}

// NewSource starts listening for events before anything is enumerated so no event can fall
// between the snapshot and the stream. The logger carried by ctx is used for all later calls.
func NewSource(ctx context.Context, group Group) (*Source, error) {
	monitor, err := NewMonitor(group)
	if err != nil {
		return nil, err
	}

	return newSource(ctx, NewEnumerator(), monitor), nil
}

func newSource(ctx context.Context, enumerator lister, monitor receiver) *Source {
	return &Source{
		enumerator: enumerator,
		monitor:    monitor,
		log:        *zerolog.Ctx(ctx),
	}
}

func (s *Source) Enumerate(context.Context) ([]dock.Device, error) {
	devices, err := s.enumerator.Devices()
	if err != nil {
		return nil, err
	}

	result := make([]dock.Device, 0, len(devices))
	for _, d := range devices {
		desc := d.Descriptor()
		s.log.Debug().
			Str("device", d.DevPath).
			Str("vendor", desc.VendorID).
			Str("product", desc.ProductID).
			Msg("found USB device")

		result = append(result, dock.Device{
			Identity:   dock.Identity(d.DevPath),
			Descriptor: desc,
		})
	}

	return result, nil
}

// Next blocks until an event for a USB device arrives. Events of other subsystems and of USB
// interfaces are skipped.
func (s *Source) Next(ctx context.Context) (dock.Event, error) {
	for {
		d, err := s.monitor.Receive(ctx)
		if err != nil {
			return dock.Event{}, err
		}

		if !d.IsUSBDevice() {
			continue
		}

		ev := dock.Event{
			Kind:       kindOf(d.Action),
			Identity:   dock.Identity(d.DevPath),
			Descriptor: d.Descriptor(),
		}

		s.log.Debug().
			Stringer("kind", ev.Kind).
			Str("action", d.Action).
			Str("device", d.DevPath).
			Str("vendor", ev.Descriptor.VendorID).
			Str("product", ev.Descriptor.ProductID).
			Msg("USB event")

		return ev, nil
	}
}

// Close stops the monitor. A pending Next returns an error.
func (s *Source) Close() error {
	return s.monitor.Close()
}

func kindOf(action string) dock.Kind {
	switch action {
	case "add":
		return dock.KindAttach
	case "remove":
		return dock.KindDetach
	default:
		return dock.KindOther
	}
}
