package g19

import (
	"github.com/karalabe/hid"
	"github.com/pkg/errors"
)

type hidBackend struct{}

// HidBackend returns the Backend backed by the operating system's HID
// stack.
func HidBackend() Backend {
	return hidBackend{}
}

func (hidBackend) Enumerate(vendorID, productID uint16) []DeviceInfo {
	devs := hid.Enumerate(vendorID, productID)

	infos := make([]DeviceInfo, len(devs))
	for i := range devs {
		infos[i] = hidDeviceInfo{devs[i]}
	}

	return infos
}

type hidDeviceInfo struct {
	info hid.DeviceInfo
}

func (d hidDeviceInfo) Open() (Device, error) {
	device, err := d.info.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return device, nil
}
