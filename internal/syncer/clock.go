package syncer

import "time"

// Clock applies a synchronized time to the system.
type Clock interface {
	Set(t time.Time) error
}
