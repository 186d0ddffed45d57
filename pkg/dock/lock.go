package dock

//go:generate mockgen -destination=mock_lock_test.go -package=dock github.com/MatthiasKunnen/cdock-inhibit/pkg/dock LockProvider

import (
	"errors"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/inhibit"
	"io"
)

// LockProvider takes inhibitor locks. The call blocks until the lock is held or refused.
// The lock stays in effect until the returned closer is closed.
//
// [inhibit.Inhibitor] implements LockProvider.
type LockProvider interface {
	Inhibit(who string, why string, mode inhibit.Mode, what ...inhibit.What) (io.Closer, error)
}

// Request holds the parameters of every lock the controller takes.
type Request struct {
	Who  string
	Why  string
	Mode inhibit.Mode
	What []inhibit.What
}

// Handle owns one held lock.
// Release frees the lock the first time it is called and does nothing afterward.
type Handle struct {
	closer   io.Closer
	released bool
}

func acquire(provider LockProvider, r Request) (*Handle, error) {
	closer, err := provider.Inhibit(r.Who, r.Why, r.Mode, r.What...)
	if err != nil {
		return nil, err
	}
	if closer == nil {
		return nil, errors.New("lock provider returned no lock")
	}

	return &Handle{closer: closer}, nil
}

func (h *Handle) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true

	return h.closer.Close()
}
