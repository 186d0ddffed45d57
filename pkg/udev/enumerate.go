package udev

import (
	"fmt"
	libudev "github.com/jochenvg/go-udev"
)

// Enumerator lists the USB devices currently known to udev.
type Enumerator struct {
	udev *libudev.Udev
}

func NewEnumerator() *Enumerator {
	return &Enumerator{udev: &libudev.Udev{}}
}

// Devices returns every attached USB device. USB interfaces are not included.
// A system without a USB bus yields no devices.
func (e *Enumerator) Devices() ([]*Device, error) {
	enumerate := e.udev.NewEnumerate()

	if err := enumerate.AddMatchSubsystem(SubsystemUSB); err != nil {
		return nil, fmt.Errorf("failed to match subsystem %s: %w", SubsystemUSB, err)
	}
	if err := enumerate.AddMatchProperty("DEVTYPE", DevTypeDevice); err != nil {
		return nil, fmt.Errorf("failed to match devtype %s: %w", DevTypeDevice, err)
	}

	found, err := enumerate.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to scan USB devices: %w", err)
	}

	devices := make([]*Device, 0, len(found))
	for _, d := range found {
		dev := fromLibudev(d)
		if dev.IsUSBDevice() {
			devices = append(devices, dev)
		}
	}

	return devices, nil
}
