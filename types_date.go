package plancast

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
//
// Inside the engine time is counted in epoch days (days since 1970-01-01
// UTC); Date is the calendar view of that axis.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
// Out-of-range values are carried over, so NewDate(2024, time.January, 32)
// is February 1st and day 0 is the last day of the previous month.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOfDay returns the Date for an epoch day.
func DateOfDay(day int) Date {
	return NewDate(1970, time.January, 1+day)
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().UTC().Date()) }

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

var unixEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Days returns the epoch day of the date.
func (d Date) Days() int { return int(d.time().Sub(unixEpoch) / (24 * time.Hour)) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// lastDaysOfMonths returns the epoch day of the last day of every month
// in the inclusive [startDay, endDay] window, in ascending order.
func lastDaysOfMonths(startDay, endDay int) []int {
	var days []int
	cursor := DateOfDay(startDay)
	end := DateOfDay(endDay)
	for !cursor.After(end) {
		if last := cursor.EndOfMonth().Days(); last >= startDay && last <= endDay {
			days = append(days, last)
		}
		cursor = NewDate(cursor.y, cursor.m+1, 1)
	}
	return days
}

// ParseDate parses a Date from a string. It accepts the ISO form
// (leniently, "2025-7-1" works) and RFC-3339 timestamps, since plan
// records written by older clients carry full timestamps for schedule
// boundaries.
func ParseDate(str string) (Date, error) {
	if on, err := time.Parse(readDateFormat, str); err == nil {
		return NewDate(on.Date()), nil
	}
	on, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.UTC().Date()), nil
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = on
	return nil
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
