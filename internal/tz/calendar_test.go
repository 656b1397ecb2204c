package tz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1978, false},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{2024, 4, 30},
		{2024, 12, 31},
		{2024, 0, 0},
		{2024, 13, 0},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int
	}{
		{1978, 1, 1, 0},  // epoch day, a Sunday
		{2000, 3, 1, 3},  // Wednesday
		{2024, 3, 10, 0}, // Sunday
		{2024, 11, 24, 0},
		{2026, 8, 28, 5}, // Friday
	}
	for _, tt := range tests {
		if got := DayOfWeek(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DayOfWeek(%d, %d, %d) = %d, want %d",
				tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name                   string
		year, month, week, dow int
		want                   int
	}{
		{"2nd Sunday of March 2024", 2024, 3, 2, 0, 10},
		{"1st Sunday of November 2024", 2024, 11, 1, 0, 3},
		{"last Sunday of November 2024", 2024, 11, 5, 0, 24},
		{"last Sunday of March 2024", 2024, 3, 5, 0, 31},
		{"last Sunday of October 2024", 2024, 10, 5, 0, 27},
		{"1st Friday of August 2026", 2026, 8, 1, 5, 7},
		{"invalid month", 2024, 13, 1, 0, 1},
		{"invalid week", 2024, 3, 6, 0, 1},
		{"invalid dow", 2024, 3, 1, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NthWeekdayOfMonth(tt.year, tt.month, tt.week, tt.dow); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSecondsToDate(t *testing.T) {
	tests := []struct {
		secs uint32
		want Date
	}{
		{0, Date{1978, 1, 1, 0}},
		{secsPerDay - secsPerHour, Date{1978, 1, 1, 23}},
		{secsPerDay, Date{1978, 1, 2, 0}},
		{365 * secsPerDay, Date{1979, 1, 1, 0}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SecondsToDate(tt.secs)); diff != "" {
			t.Errorf("SecondsToDate(%d) mismatch (-want +got):\n%s", tt.secs, diff)
		}
	}
}

func TestDateSecondsRoundTrip(t *testing.T) {
	for year := 1978; year <= 2040; year += 3 {
		for month := 1; month <= 12; month++ {
			days := []int{1, 15, DaysInMonth(year, month)}
			for _, day := range days {
				for _, hour := range []int{0, 2, 23} {
					want := Date{year, month, day, hour}
					got := SecondsToDate(DateToSeconds(want))
					if got != want {
						t.Fatalf("round trip %+v -> %+v", want, got)
					}
				}
			}
		}
	}
}

func TestSecondsRoundTrip(t *testing.T) {
	// Whole-hour timestamps must survive decomposition exactly.
	for secs := uint32(0); secs < 40*365*secsPerDay; secs += 7*secsPerDay + 5*secsPerHour {
		if got := DateToSeconds(SecondsToDate(secs)); got != secs {
			t.Fatalf("round trip %d -> %d", secs, got)
		}
	}
}
