package g19

import (
	"github.com/pkg/errors"
)

// USB identifiers for the Logitech G19 gaming keyboard.
const (
	VendorID  uint16 = 0x046d
	ProductID uint16 = 0xc229
)

// The backlight is driven by HID report 7, recovered by reverse
// engineering. The report layout is an external contract with the
// keyboard firmware and must be preserved byte for byte: report id
// followed by the red, green and blue values.
const lightingReportID = 0x07

// Command is a single backlight color change.
type Command struct {
	red, green, blue byte
}

// NewCommand validates the channel values and builds a Command. Each
// channel must be within [0,255].
func NewCommand(red, green, blue int) (Command, error) {
	channels := []struct {
		name  string
		value int
	}{
		{"red", red},
		{"green", green},
		{"blue", blue},
	}

	for _, c := range channels {
		if c.value < 0 || c.value > 255 {
			return Command{}, errors.Wrapf(ErrInvalidArgument,
				"%s value %d outside [0,255]", c.name, c.value)
		}
	}

	return Command{byte(red), byte(green), byte(blue)}, nil
}

// Payload packs the vendor report sent to the keyboard.
func (c Command) Payload() []byte {
	return []byte{lightingReportID, c.red, c.green, c.blue}
}
