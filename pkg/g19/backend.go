package g19

// Device is an open HID handle capable of sending output reports.
type Device interface {
	Write(b []byte) (int, error)
	Close() error
}

// DeviceInfo describes an attached HID interface that can be opened.
type DeviceInfo interface {
	Open() (Device, error)
}

// Backend enumerates attached HID devices. Tests substitute a fake so
// the color logic runs without hardware.
type Backend interface {
	Enumerate(vendorID, productID uint16) []DeviceInfo
}
