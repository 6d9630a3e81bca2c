package main

import (
	"fmt"
	"log"

	"github.com/google/gousb"
	"github.com/karalabe/hid"
	"github.com/pkg/errors"

	"github.com/jjaammhh/JAM-G19-Colors/pkg/g19"
)

// inspect lists the keyboard's HID interfaces and USB descriptor.
// Useful when the firmware exposes the lighting report under a
// different interface than expected.
func inspect() error {
	devices := hid.Enumerate(g19.VendorID, g19.ProductID)
	if len(devices) == 0 {
		log.Printf("No HID device %04x:%04x attached\n", g19.VendorID, g19.ProductID)
		return nil
	}

	for i, info := range devices {
		fmt.Printf("HID interface %d: %s %s, path %s, usage page 0x%04x, usage 0x%04x\n",
			i, info.Manufacturer, info.Product, info.Path, info.UsagePage, info.Usage)
	}

	usbCtx := gousb.NewContext()
	defer usbCtx.Close()

	device, err := usbCtx.OpenDeviceWithVIDPID(gousb.ID(g19.VendorID), gousb.ID(g19.ProductID))
	if err != nil {
		return errors.WithStack(err)
	}
	if device == nil {
		log.Printf("USB descriptor not readable\n")
		return nil
	}
	defer device.Close()

	manufacturer, _ := device.Manufacturer()
	product, _ := device.Product()

	fmt.Printf("USB device: %s %s (bus %d, address %d, %d configurations)\n",
		manufacturer, product, device.Desc.Bus, device.Desc.Address, len(device.Desc.Configs))

	return nil
}
