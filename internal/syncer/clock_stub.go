//go:build !linux

package syncer

import (
	"errors"
	"time"
)

// NewSystemClock returns a setter that reports the platform as
// unsupported. Sync results are still computed and displayed.
func NewSystemClock() Clock {
	return stubClock{}
}

type stubClock struct{}

func (stubClock) Set(time.Time) error {
	return errors.New("setting the system clock is not supported on this platform")
}
