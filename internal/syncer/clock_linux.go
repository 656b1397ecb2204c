//go:build linux

package syncer

import (
	"syscall"
	"time"
)

// systemClock steps the kernel clock with settimeofday. Requires
// CAP_SYS_TIME.
type systemClock struct{}

// NewSystemClock returns the platform clock setter.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Set(t time.Time) error {
	tv := syscall.NsecToTimeval(t.UnixNano())
	return syscall.Settimeofday(&tv)
}
