package tz

import "fmt"

// Engine answers timezone queries against an immutable table. The
// region list, per-region city lists, and the name index are computed
// once at construction; nothing is mutated afterwards, so a single
// Engine is safe to share across goroutines without locking.
type Engine struct {
	table    []Entry
	regions  []string
	byRegion map[string][]*Entry
	byName   map[string]*Entry
}

// NewEngine builds an engine over the packaged zone table.
func NewEngine() *Engine {
	return NewEngineFromTable(Table)
}

// NewEngineFromTable builds an engine over an arbitrary table. The
// table must not be modified after the call.
func NewEngineFromTable(table []Entry) *Engine {
	e := &Engine{
		table:    table,
		byRegion: make(map[string][]*Entry),
		byName:   make(map[string]*Entry, len(table)),
	}
	for i := range table {
		ent := &table[i]
		if _, ok := e.byName[ent.Name]; !ok {
			e.byName[ent.Name] = ent
		}
		if _, ok := e.byRegion[ent.Region]; !ok {
			e.regions = append(e.regions, ent.Region)
		}
		e.byRegion[ent.Region] = append(e.byRegion[ent.Region], ent)
	}
	return e
}

// FindByName returns the entry for a full zone identifier, or nil when
// the identifier is unknown. An unknown zone is not an error; callers
// fall back to UTC.
func (e *Engine) FindByName(name string) *Entry {
	return e.byName[name]
}

// Regions returns the unique region labels in first-seen table order.
// The returned slice is shared and must not be modified.
func (e *Engine) Regions() []string {
	return e.regions
}

// CitiesForRegion returns the entries of a region in table order. The
// result is empty, not an error, for an unknown region. The returned
// slice is shared and must not be modified.
func (e *Engine) CitiesForRegion(region string) []*Entry {
	return e.byRegion[region]
}

// IsDSTActive reports whether daylight-saving time is in effect for
// the zone at utcSecs (seconds since the local epoch). Transition
// instants are resolved against the evaluated date's own year, which
// keeps the southern-hemisphere wrap correct across December 31 /
// January 1.
func (e *Engine) IsDSTActive(ent *Entry, utcSecs uint32) bool {
	if ent == nil || !ent.HasDST() {
		return false
	}

	// Shift to local standard time; the window comparison below is
	// done entirely in local standard seconds.
	var localSecs uint32
	if ent.StdOffsetMins >= 0 {
		localSecs = utcSecs + uint32(ent.StdOffsetMins*secsPerMin)
	} else {
		off := uint32(-ent.StdOffsetMins * secsPerMin)
		if utcSecs < off {
			return false // too close to the epoch to evaluate
		}
		localSecs = utcSecs - off
	}

	d := SecondsToDate(localSecs)

	startDay := NthWeekdayOfMonth(d.Year, ent.DSTStartMonth, ent.DSTStartWeek, ent.DSTStartDOW)
	endDay := NthWeekdayOfMonth(d.Year, ent.DSTEndMonth, ent.DSTEndWeek, ent.DSTEndDOW)
	start := DateToSeconds(Date{d.Year, ent.DSTStartMonth, startDay, ent.DSTStartHour})
	end := DateToSeconds(Date{d.Year, ent.DSTEndMonth, endDay, ent.DSTEndHour})

	switch {
	case ent.DSTStartMonth < ent.DSTEndMonth:
		// Northern hemisphere: both transitions fall within one
		// calendar year.
		return localSecs >= start && localSecs < end
	case ent.DSTStartMonth > ent.DSTEndMonth:
		// Southern hemisphere: the DST window wraps the year end.
		return localSecs >= start || localSecs < end
	default:
		// Equal months is not a representable rule.
		return false
	}
}

// OffsetMins returns the zone's offset from UTC in minutes at utcSecs,
// including the DST offset when active. A nil entry is treated as UTC.
func (e *Engine) OffsetMins(ent *Entry, utcSecs uint32) int {
	if ent == nil {
		return 0
	}
	if e.IsDSTActive(ent, utcSecs) {
		return ent.StdOffsetMins + ent.DSTOffsetMins
	}
	return ent.StdOffsetMins
}

// FormatOffset renders a zone's standard offset for display, e.g.
// "UTC-8 (no DST)" or "UTC+5:30, DST active seasonally". A nil entry
// renders as plain "UTC".
func FormatOffset(ent *Entry) string {
	if ent == nil {
		return "UTC"
	}

	mins := ent.StdOffsetMins
	sign := "+"
	if mins < 0 {
		sign = "-"
		mins = -mins
	}

	s := fmt.Sprintf("UTC%s%d", sign, mins/60)
	if mins%60 != 0 {
		s += fmt.Sprintf(":%02d", mins%60)
	}

	if ent.HasDST() {
		return s + ", DST active seasonally"
	}
	return s + " (no DST)"
}
