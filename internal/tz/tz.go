// Package tz provides SyncTime's timezone database: a static table of
// zone definitions, calendar arithmetic over the local epoch, and
// hemisphere-aware daylight-saving computation.
package tz

// Entry describes a single timezone. Entries are defined statically in
// zones.go and never mutated.
type Entry struct {
	Name   string // full zone identifier, e.g. "America/Los_Angeles"
	Region string // coarse grouping, e.g. "America"
	City   string // display label, the tail of Name

	StdOffsetMins int // standard-time offset from UTC in minutes
	DSTOffsetMins int // added to StdOffsetMins while DST is active; 0 = never observes DST

	// Transition rules in local standard time. Week 1-4 selects the
	// Nth occurrence of DOW (0=Sunday) in the month; week 5 selects
	// the last occurrence.
	DSTStartMonth int
	DSTStartWeek  int
	DSTStartDOW   int
	DSTStartHour  int
	DSTEndMonth   int
	DSTEndWeek    int
	DSTEndDOW     int
	DSTEndHour    int
}

// HasDST reports whether the zone seasonally observes daylight-saving
// time. A zero start month or zero DST offset marks a zone without DST
// regardless of the other rule fields.
func (e *Entry) HasDST() bool {
	return e.DSTStartMonth != 0 && e.DSTOffsetMins != 0
}
