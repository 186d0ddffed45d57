package udev

import (
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/dock"
	libudev "github.com/jochenvg/go-udev"
	"strings"
)

const (
	SubsystemUSB  = "usb"
	DevTypeDevice = "usb_device"
)

// Device is a snapshot of a udev device and its properties.
type Device struct {
	// Action is empty for devices found by enumeration.
	Action     string
	DevPath    string
	Subsystem  string
	DevType    string
	Properties map[string]string
}

func newDevice(props map[string]string) *Device {
	return &Device{
		Action:     props["ACTION"],
		DevPath:    props["DEVPATH"],
		Subsystem:  props["SUBSYSTEM"],
		DevType:    props["DEVTYPE"],
		Properties: props,
	}
}

func fromLibudev(d *libudev.Device) *Device {
	props := d.Properties()
	if props == nil {
		props = make(map[string]string)
	}

	return &Device{
		Action:     d.Action(),
		DevPath:    d.Devpath(),
		Subsystem:  d.Subsystem(),
		DevType:    d.Devtype(),
		Properties: props,
	}
}

// Property returns the value of the property or an empty string if it is not set.
func (d *Device) Property(key string) string {
	return d.Properties[key]
}

// IsUSBDevice reports whether d is a whole USB device rather than one of its interfaces.
func (d *Device) IsUSBDevice() bool {
	return d.Subsystem == SubsystemUSB && d.DevType == DevTypeDevice
}

// Descriptor returns the vendor and product IDs of the device.
//
// The udev properties ID_VENDOR_ID and ID_MODEL_ID are preferred. When absent, as is the case
// for raw kernel uevents, they are taken from the PRODUCT property ("vid/pid/bcdDevice", in
// unpadded hex) and normalized to four lowercase hex digits.
func (d *Device) Descriptor() dock.Descriptor {
	desc := dock.Descriptor{
		VendorID:  d.Properties["ID_VENDOR_ID"],
		ProductID: d.Properties["ID_MODEL_ID"],
	}
	if desc.VendorID != "" && desc.ProductID != "" {
		return desc
	}

	fields := strings.Split(d.Properties["PRODUCT"], "/")
	if len(fields) != 3 {
		return desc
	}

	if desc.VendorID == "" {
		desc.VendorID = normalizeID(fields[0])
	}
	if desc.ProductID == "" {
		desc.ProductID = normalizeID(fields[1])
	}

	return desc
}

// normalizeID pads a hex ID to four digits. Anything that is not 1 to 4 hex digits yields an
// empty string.
func normalizeID(s string) string {
	if len(s) == 0 || len(s) > 4 {
		return ""
	}

	s = strings.ToLower(s)
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return ""
		}
	}

	return strings.Repeat("0", 4-len(s)) + s
}
