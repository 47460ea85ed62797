package fatstat

import (
	"time"
)

// ParseDate reads a 16-bit FAT date stamp, counted from the MS-DOS epoch of
// 1980-01-01:
//  Bits 0-4: day of month, valid range 1-31.
//  Bits 5-8: month of year, 1 = January, valid range 1-12.
//  Bits 9-15: years since 1980, valid range 0-127.
// A day or month of 0 is unspecified; in that case time.Time{} is returned
// so that time.Time.IsZero() can be used.
func ParseDate(input uint16) time.Time {
	dayOfMonth := input & 0x1F
	monthOfYear := input & 0x1E0 >> 5
	yearSince1980 := input & 0xFE00 >> 9

	if dayOfMonth == 0 || monthOfYear == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(yearSince1980), time.Month(monthOfYear), int(dayOfMonth), 0, 0, 0, 0, time.UTC)
}

// ParseTime reads a 16-bit FAT time stamp with its 2 second granularity:
//  Bits 0-4: 2-second count, valid range 0-29.
//  Bits 5-10: minutes, valid range 0-59.
//  Bits 11-15: hours, valid range 0-23.
// The result always has a date of January 1, year 1. Out-of-range values
// are added to the time but clamped at 23:59:59.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)

	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}

	return result
}

// ParseTimestamp combines a FAT date and time stamp into one point in time.
// An invalid date yields time.Time{}; the time part alone cannot be checked
// that way because 00:00:00 is a perfectly valid time.
func ParseTimestamp(date, tod uint16) time.Time {
	day := ParseDate(date)
	if day.IsZero() {
		return time.Time{}
	}

	clock := ParseTime(tod)
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}
