package g19

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrWriteFailure    = errors.New("write failure")
)
