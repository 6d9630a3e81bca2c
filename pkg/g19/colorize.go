package g19

import (
	"log"

	"github.com/pkg/errors"
)

// SetColor locates the keyboard and transmits one backlight report.
// Validation happens before any device interaction; when it fails,
// the backend is never touched. The device handle is released on
// every path after a successful open.
func SetColor(backend Backend, red, green, blue int, verbose bool) error {
	cmd, err := NewCommand(red, green, blue)
	if err != nil {
		return err
	}

	devices := backend.Enumerate(VendorID, ProductID)
	if len(devices) == 0 {
		return errors.Wrapf(ErrDeviceNotFound,
			"no HID device %04x:%04x attached", VendorID, ProductID)
	}

	// The keyboard exposes several HID interfaces; the first match
	// carries the lighting report.
	device, err := devices[0].Open()
	if err != nil {
		return errors.Wrapf(ErrWriteFailure, "opening device: %v", err)
	}
	defer device.Close()

	payload := cmd.Payload()
	if verbose {
		log.Printf("Sending report % x\n", payload)
	}

	n, err := device.Write(payload)
	if err != nil {
		return errors.Wrapf(ErrWriteFailure, "writing report: %v", err)
	}
	if n != len(payload) {
		return errors.Wrapf(ErrWriteFailure,
			"short write: %d of %d bytes", n, len(payload))
	}

	return nil
}
