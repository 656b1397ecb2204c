package tz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// northernZone observes DST from the 2nd Sunday of March 02:00 to the
// 1st Sunday of November 02:00, like the US rules. Zero standard
// offset keeps UTC and local standard time identical in tests.
var northernZone = Entry{
	Name: "Test/North", Region: "Test", City: "North",
	StdOffsetMins: 0, DSTOffsetMins: 60,
	DSTStartMonth: 3, DSTStartWeek: 2, DSTStartDOW: 0, DSTStartHour: 2,
	DSTEndMonth: 11, DSTEndWeek: 1, DSTEndDOW: 0, DSTEndHour: 2,
}

// southernZone observes DST from the 1st Sunday of October 02:00 to
// the 1st Sunday of April 03:00, wrapping the year boundary.
var southernZone = Entry{
	Name: "Test/South", Region: "Test", City: "South",
	StdOffsetMins: 0, DSTOffsetMins: 60,
	DSTStartMonth: 10, DSTStartWeek: 1, DSTStartDOW: 0, DSTStartHour: 2,
	DSTEndMonth: 4, DSTEndWeek: 1, DSTEndDOW: 0, DSTEndHour: 3,
}

func TestFindByName(t *testing.T) {
	e := NewEngine()

	ent := e.FindByName("America/Los_Angeles")
	if ent == nil {
		t.Fatal("America/Los_Angeles not found")
	}
	if ent.StdOffsetMins != -480 {
		t.Errorf("StdOffsetMins = %d, want -480", ent.StdOffsetMins)
	}

	if got := e.FindByName("Mars/Olympus"); got != nil {
		t.Errorf("unknown zone returned %v, want nil", got)
	}
}

func TestRegions(t *testing.T) {
	e := NewEngine()

	want := []string{
		"Africa", "America", "Antarctica", "Asia", "Atlantic",
		"Australia", "Europe", "Indian", "Pacific",
	}
	if diff := cmp.Diff(want, e.Regions()); diff != "" {
		t.Errorf("Regions mismatch (-want +got):\n%s", diff)
	}
}

func TestCitiesForRegion(t *testing.T) {
	e := NewEngine()

	if got := e.CitiesForRegion("Narnia"); len(got) != 0 {
		t.Errorf("unknown region returned %d entries, want 0", len(got))
	}

	cities := e.CitiesForRegion("Australia")
	if len(cities) == 0 {
		t.Fatal("no Australian cities")
	}
	for _, c := range cities {
		if c.Region != "Australia" {
			t.Errorf("entry %s has region %s", c.Name, c.Region)
		}
	}
}

// Every region must be non-empty and the per-region city sequences
// must partition the table in order with no duplicates or omissions.
func TestRegionCityCoverage(t *testing.T) {
	e := NewEngine()

	var union []string
	for _, region := range e.Regions() {
		cities := e.CitiesForRegion(region)
		if len(cities) == 0 {
			t.Errorf("region %s has no cities", region)
		}
		for _, c := range cities {
			union = append(union, c.Name)
		}
	}

	want := make([]string, len(Table))
	seen := make(map[string]bool, len(Table))
	for i := range Table {
		want[i] = Table[i].Name
		if seen[Table[i].Name] {
			t.Errorf("duplicate table entry %s", Table[i].Name)
		}
		seen[Table[i].Name] = true
	}

	if diff := cmp.Diff(want, union); diff != "" {
		t.Errorf("city union mismatch (-want +got):\n%s", diff)
	}
}

func TestIsDSTActiveNorthern(t *testing.T) {
	e := NewEngine()

	// 2024 transitions: March 10 02:00 and November 3 02:00.
	tests := []struct {
		name string
		when Date
		want bool
	}{
		{"hour before start", Date{2024, 3, 10, 1}, false},
		{"hour after start", Date{2024, 3, 10, 3}, true},
		{"midsummer", Date{2024, 7, 1, 12}, true},
		{"hour after end", Date{2024, 11, 3, 3}, false},
		{"midwinter", Date{2024, 1, 15, 12}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsDSTActive(&northernZone, DateToSeconds(tt.when)); got != tt.want {
				t.Errorf("IsDSTActive(%+v) = %v, want %v", tt.when, got, tt.want)
			}
		})
	}
}

func TestIsDSTActiveSouthern(t *testing.T) {
	e := NewEngine()

	// 2024 transitions: April 7 03:00 (end) and October 6 02:00
	// (start); 2025 end is April 6 03:00.
	tests := []struct {
		name string
		when Date
		want bool
	}{
		{"january is summer", Date{2024, 1, 15, 12}, true},
		{"july is winter", Date{2024, 7, 15, 12}, false},
		{"hour before start", Date{2024, 10, 6, 1}, false},
		{"hour after start", Date{2024, 10, 6, 3}, true},
		{"new years eve", Date{2024, 12, 31, 23}, true},
		{"new years day", Date{2025, 1, 1, 1}, true},
		{"hour after end", Date{2025, 4, 6, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsDSTActive(&southernZone, DateToSeconds(tt.when)); got != tt.want {
				t.Errorf("IsDSTActive(%+v) = %v, want %v", tt.when, got, tt.want)
			}
		})
	}
}

func TestIsDSTActiveEdgeCases(t *testing.T) {
	e := NewEngine()

	if e.IsDSTActive(nil, 1000000) {
		t.Error("nil entry reported active")
	}

	noDST := Entry{Name: "Test/Flat", StdOffsetMins: 120}
	if e.IsDSTActive(&noDST, DateToSeconds(Date{2024, 7, 1, 0})) {
		t.Error("zone without DST reported active")
	}

	// A very negative offset close to the epoch must not wrap.
	western := northernZone
	western.StdOffsetMins = -480
	if e.IsDSTActive(&western, 1000) {
		t.Error("pre-epoch evaluation reported active")
	}

	// Equal start and end months are not representable; inactive.
	weird := northernZone
	weird.DSTEndMonth = weird.DSTStartMonth
	if e.IsDSTActive(&weird, DateToSeconds(Date{2024, 3, 20, 12})) {
		t.Error("equal-month rule reported active")
	}
}

func TestOffsetMins(t *testing.T) {
	e := NewEngine()

	la := e.FindByName("America/Los_Angeles")
	if got := e.OffsetMins(la, DateToSeconds(Date{2024, 7, 1, 12})); got != -420 {
		t.Errorf("summer offset = %d, want -420", got)
	}
	if got := e.OffsetMins(la, DateToSeconds(Date{2024, 1, 15, 12})); got != -480 {
		t.Errorf("winter offset = %d, want -480", got)
	}

	sydney := e.FindByName("Australia/Sydney")
	if got := e.OffsetMins(sydney, DateToSeconds(Date{2024, 1, 15, 12})); got != 660 {
		t.Errorf("Sydney summer offset = %d, want 660", got)
	}
	if got := e.OffsetMins(sydney, DateToSeconds(Date{2024, 7, 15, 12})); got != 600 {
		t.Errorf("Sydney winter offset = %d, want 600", got)
	}

	// A zone without DST keeps its standard offset year round.
	tokyo := e.FindByName("Asia/Tokyo")
	for month := 1; month <= 12; month++ {
		if got := e.OffsetMins(tokyo, DateToSeconds(Date{2024, month, 15, 0})); got != 540 {
			t.Errorf("Tokyo offset in month %d = %d, want 540", month, got)
		}
	}

	if got := e.OffsetMins(nil, 0); got != 0 {
		t.Errorf("nil entry offset = %d, want 0", got)
	}
}

func TestFormatOffset(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		zone string
		want string
	}{
		{"", "UTC"},
		{"Asia/Tokyo", "UTC+9 (no DST)"},
		{"Asia/Kolkata", "UTC+5:30 (no DST)"},
		{"America/Los_Angeles", "UTC-8, DST active seasonally"},
		{"America/St_Johns", "UTC-3:30, DST active seasonally"},
		{"Africa/Abidjan", "UTC+0 (no DST)"},
	}
	for _, tt := range tests {
		if got := FormatOffset(e.FindByName(tt.zone)); got != tt.want {
			t.Errorf("FormatOffset(%q) = %q, want %q", tt.zone, got, tt.want)
		}
	}
}
