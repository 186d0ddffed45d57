package dock

import "errors"

// Every error returned by the Controller wraps one of these.
var (
	// ErrEnumeration means the startup scan could not be performed.
	ErrEnumeration = errors.New("failed to enumerate devices")

	// ErrLockAcquisition means the lock provider refused or failed to provide a lock.
	ErrLockAcquisition = errors.New("failed to acquire inhibitor lock")

	// ErrEventStream means reading the next hotplug event failed.
	ErrEventStream = errors.New("failed to read hotplug event")
)
