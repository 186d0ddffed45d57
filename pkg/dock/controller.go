package dock

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
)

// Controller holds a lock while the dock is attached.
//
// Controller is not safe for concurrent use. All calls are expected to come from the goroutine
// that consumes the event source.
type Controller struct {
	matcher  Matcher
	source   EventSource
	provider LockProvider
	request  Request

	// tracked is nil while no dock is tracked. It is only set after a lock has been acquired,
	// so at most one lock is ever held.
	tracked *trackedDock
}

type trackedDock struct {
	identity Identity
	handle   *Handle
}

func NewController(matcher Matcher, source EventSource, provider LockProvider, request Request) *Controller {
	return &Controller{
		matcher:  matcher,
		source:   source,
		provider: provider,
		request:  request,
	}
}

// Tracked returns the identity of the tracked dock. ok is false when no dock is tracked.
func (c *Controller) Tracked() (id Identity, ok bool) {
	if c.tracked == nil {
		return "", false
	}

	return c.tracked.identity, true
}

// Run performs the startup scan, then processes events until the event source fails or ctx is
// cancelled. Run never returns nil.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(ctx); err != nil {
		return err
	}

	return c.Loop(ctx)
}

// Start scans the attached devices once and takes a lock if the dock is among them.
// Only the first matching device is adopted. Call Start once, before Loop.
func (c *Controller) Start(ctx context.Context) error {
	log := zerolog.Ctx(ctx)

	devices, err := c.source.Enumerate(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnumeration, err)
	}

	for _, d := range devices {
		if !c.matcher.IsDock(d.Descriptor) {
			continue
		}

		log.Info().Str("device", string(d.Identity)).Msg("dock present at startup")
		return c.track(ctx, d.Identity)
	}

	log.Info().Int("devices", len(devices)).Msg("dock not present at startup")
	return nil
}

// Loop blocks on the event source and applies every event to the tracking state.
func (c *Controller) Loop(ctx context.Context) error {
	for {
		ev, err := c.source.Next(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			return fmt.Errorf("%w: %w", ErrEventStream, err)
		}

		if err := c.Handle(ctx, ev); err != nil {
			return err
		}
	}
}

// Handle applies a single event.
//
// While no dock is tracked, an attach event is recognized by its descriptor. Once a dock is
// tracked, only events carrying its identity are considered, since detach events may lack the
// descriptor.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	log := zerolog.Ctx(ctx)

	switch ev.Kind {
	case KindAttach:
		if c.tracked != nil {
			log.Debug().
				Str("device", string(ev.Identity)).
				Bool("tracked", ev.Identity == c.tracked.identity).
				Msg("ignoring attach while a dock is tracked")
			return nil
		}

		if !c.matcher.IsDock(ev.Descriptor) {
			log.Debug().
				Str("device", string(ev.Identity)).
				Str("vendor", ev.Descriptor.VendorID).
				Str("product", ev.Descriptor.ProductID).
				Msg("ignoring attach of a device that is not a dock")
			return nil
		}

		log.Info().Str("device", string(ev.Identity)).Msg("dock attached")
		return c.track(ctx, ev.Identity)
	case KindDetach:
		if c.tracked == nil || ev.Identity != c.tracked.identity {
			log.Debug().
				Str("device", string(ev.Identity)).
				Bool("dock_tracked", c.tracked != nil).
				Msg("ignoring detach of an untracked device")
			return nil
		}

		log.Info().Str("device", string(ev.Identity)).Msg("dock detached")
		c.untrack(ctx)
		return nil
	default:
		log.Debug().
			Str("device", string(ev.Identity)).
			Stringer("kind", ev.Kind).
			Msg("ignoring event")
		return nil
	}
}

// Close releases the lock if one is held.
func (c *Controller) Close() error {
	if c.tracked == nil {
		return nil
	}

	handle := c.tracked.handle
	c.tracked = nil

	if err := handle.Release(); err != nil {
		return fmt.Errorf("failed to release inhibitor lock: %w", err)
	}

	return nil
}

func (c *Controller) track(ctx context.Context, id Identity) error {
	handle, err := acquire(c.provider, c.request)
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ErrLockAcquisition, id, err)
	}

	c.tracked = &trackedDock{identity: id, handle: handle}
	zerolog.Ctx(ctx).Info().Str("device", string(id)).Msg("inhibitor lock acquired")

	return nil
}

// untrack empties the slot and releases its lock. A failed close is logged; the descriptor is
// gone either way.
func (c *Controller) untrack(ctx context.Context) {
	log := zerolog.Ctx(ctx)
	id := c.tracked.identity

	if err := c.Close(); err != nil {
		log.Warn().Err(err).Str("device", string(id)).Msg("releasing inhibitor lock")
		return
	}

	log.Info().Str("device", string(id)).Msg("inhibitor lock released")
}
