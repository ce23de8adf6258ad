package linear

import "errors"

var (
	// ErrTooLarge indicates a requested reservation that is zero pages or
	// does not fit in the 32-bit address space.
	ErrTooLarge = errors.New("linear: reservation exceeds 32-bit address space")

	// ErrMapFailed indicates that the host refused the address-space
	// reservation backing an Mmap memory.
	ErrMapFailed = errors.New("linear: mmap reservation failed")
)
