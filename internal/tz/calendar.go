package tz

// Calendar arithmetic over the SyncTime epoch, January 1, 1978
// 00:00:00. All functions are pure. Out-of-range inputs return
// documented safe defaults rather than failing: the only callers are
// driven by the static table, which is generated by an external build
// step, and a malformed rule must degrade instead of taking the
// process down.

const (
	EpochYear = 1978

	secsPerMin  = 60
	secsPerHour = 3600
	secsPerDay  = 86400
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a broken-down local time with hour resolution. Day is
// 1-based.
type Date struct {
	Year  int
	Month int
	Day   int
	Hour  int
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of a month, or 0 for a month outside
// 1..12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// DayOfWeek returns the day of the week for a date, 0=Sunday through
// 6=Saturday, using Zeller's congruence.
func DayOfWeek(year, month, day int) int {
	// Zeller treats January and February as months 13 and 14 of the
	// previous year.
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j) % 7
	// Zeller yields 0=Saturday; shift to 0=Sunday.
	return (h + 6) % 7
}

// NthWeekdayOfMonth resolves "the week-th dow of month" to a day of
// the month. Week 1-4 selects the ordinal occurrence and week 5 the
// last occurrence. Invalid inputs return day 1.
func NthWeekdayOfMonth(year, month, week, dow int) int {
	if month < 1 || month > 12 || week < 1 || week > 5 || dow < 0 || dow > 6 {
		return 1
	}

	dim := DaysInMonth(year, month)
	first := 1 + (dow-DayOfWeek(year, month, 1)+7)%7

	if week == 5 {
		day := first
		for day+7 <= dim {
			day += 7
		}
		return day
	}

	day := first + 7*(week-1)
	if day > dim {
		day = dim // clamp; valid rules never reach past the month
	}
	return day
}

// SecondsToDate decomposes seconds since the epoch into calendar
// components.
func SecondsToDate(secs uint32) Date {
	days := int(secs / secsPerDay)
	d := Date{Hour: int(secs % secsPerDay / secsPerHour)}

	year := EpochYear
	for {
		n := 365
		if IsLeapYear(year) {
			n = 366
		}
		if days < n {
			break
		}
		days -= n
		year++
	}
	d.Year = year

	month := 1
	for month < 12 && days >= DaysInMonth(year, month) {
		days -= DaysInMonth(year, month)
		month++
	}
	d.Month = month
	d.Day = days + 1
	return d
}

// DateToSeconds composes calendar components back into seconds since
// the epoch. It is the exact inverse of SecondsToDate for any value
// SecondsToDate produces.
func DateToSeconds(d Date) uint32 {
	var secs uint32
	for y := EpochYear; y < d.Year; y++ {
		n := uint32(365)
		if IsLeapYear(y) {
			n = 366
		}
		secs += n * secsPerDay
	}
	for m := 1; m < d.Month; m++ {
		secs += uint32(DaysInMonth(d.Year, m)) * secsPerDay
	}
	secs += uint32(d.Day-1) * secsPerDay
	secs += uint32(d.Hour) * secsPerHour
	return secs
}
