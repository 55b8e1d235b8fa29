package plancast

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSchedule is returned when a schedule is constructed with
// missing or inconsistent parameters.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ScheduleType identifies the recurrence rule of a Schedule.
type ScheduleType string

const (
	Once    ScheduleType = "once"
	Daily   ScheduleType = "daily"
	Weekly  ScheduleType = "weekly"
	Monthly ScheduleType = "monthly"
	Yearly  ScheduleType = "yearly"
	Custom  ScheduleType = "custom"
)

// ParseScheduleType parses a string into a ScheduleType. Matching is
// case-insensitive.
func ParseScheduleType(s string) (ScheduleType, error) {
	switch t := ScheduleType(strings.ToLower(s)); t {
	case Once, Daily, Weekly, Monthly, Yearly, Custom:
		return t, nil
	default:
		return "", fmt.Errorf("unknown schedule type: %q", s)
	}
}

// ScheduleConfig holds the parameters to construct a Schedule.
// End is optional; the zero Date means the rule never expires.
type ScheduleConfig struct {
	Type        ScheduleType
	DaysOfMonth []int // monthly: 1..31
	DaysOfWeek  []int // weekly: 0 (Sunday) .. 6 (Saturday)
	Interval    int   // custom: every N days
	Start       Date
	End         Date
}

// Schedule is an immutable recurrence rule. Given a date window it
// produces the matching calendar dates; it holds no state and the same
// rule always produces the same dates.
type Schedule struct {
	stype       ScheduleType
	daysOfMonth []int
	daysOfWeek  []int
	interval    int
	start       Date
	end         Date // zero when open-ended
}

// NewSchedule validates the configuration and returns the rule.
func NewSchedule(cfg ScheduleConfig) (Schedule, error) {
	daysOfMonth := cleanDays(cfg.DaysOfMonth, 1, 31)
	daysOfWeek := cleanDays(cfg.DaysOfWeek, 0, 6)

	switch cfg.Type {
	case Once, Daily, Yearly:
	case Monthly:
		if len(daysOfMonth) == 0 {
			return Schedule{}, fmt.Errorf("%w: monthly schedule requires days of month", ErrInvalidSchedule)
		}
	case Weekly:
		if len(daysOfWeek) == 0 {
			return Schedule{}, fmt.Errorf("%w: weekly schedule requires days of week", ErrInvalidSchedule)
		}
	case Custom:
		if cfg.Interval < 1 {
			return Schedule{}, fmt.Errorf("%w: custom schedule requires an interval of at least 1 day", ErrInvalidSchedule)
		}
	default:
		return Schedule{}, fmt.Errorf("%w: unknown schedule type %q", ErrInvalidSchedule, cfg.Type)
	}

	if !cfg.End.IsZero() && cfg.Start.After(cfg.End) {
		return Schedule{}, fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidSchedule, cfg.Start, cfg.End)
	}

	return Schedule{
		stype:       cfg.Type,
		daysOfMonth: daysOfMonth,
		daysOfWeek:  daysOfWeek,
		interval:    cfg.Interval,
		start:       cfg.Start,
		end:         cfg.End,
	}, nil
}

// cleanDays deduplicates, sorts and clamps a day list to [min, max].
func cleanDays(days []int, min, max int) []int {
	var out []int
	for _, d := range days {
		if d >= min && d <= max && !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}

// Type returns the recurrence type of the rule.
func (s Schedule) Type() ScheduleType { return s.stype }

// StartDate returns the first date the rule may fire on.
func (s Schedule) StartDate() Date { return s.start }

// EndDate returns the expiry date of the rule, and false when the rule
// is open-ended.
func (s Schedule) EndDate() (Date, bool) { return s.end, !s.end.IsZero() }

// DatesInRange returns every date matching the rule in the inclusive
// [start, end] window, in ascending order. The window is clamped to the
// rule's own start and end dates; an inverted window yields no dates.
func (s Schedule) DatesInRange(start, end Date) []Date {
	from := start
	if s.start.After(from) {
		from = s.start
	}
	to := end
	if !s.end.IsZero() && s.end.Before(to) {
		to = s.end
	}
	if from.After(to) {
		return nil
	}

	var dates []Date
	switch s.stype {
	case Once:
		if !s.start.Before(from) && !s.start.After(to) {
			dates = append(dates, s.start)
		}
	case Daily:
		for cur := from; !cur.After(to); cur = cur.Add(1) {
			dates = append(dates, cur)
		}
	case Weekly:
		for cur := from; !cur.After(to); cur = cur.Add(1) {
			if slices.Contains(s.daysOfWeek, int(cur.Weekday())) {
				dates = append(dates, cur)
			}
		}
	case Monthly:
		for cur := from; !cur.After(to); cur = cur.Add(1) {
			if slices.Contains(s.daysOfMonth, cur.Day()) {
				dates = append(dates, cur)
			}
		}
	case Yearly:
		// The rule fires on the start date's month/day every year.
		// Years where that month/day does not exist (Feb 29) are skipped.
		for year := from.Year(); year <= to.Year(); year++ {
			on := NewDate(year, s.start.Month(), s.start.Day())
			if on.Month() != s.start.Month() || on.Day() != s.start.Day() {
				continue
			}
			if !on.Before(from) && !on.After(to) {
				dates = append(dates, on)
			}
		}
	case Custom:
		for cur := from; !cur.After(to); cur = cur.Add(s.interval) {
			dates = append(dates, cur)
		}
	}
	return dates
}

// DaysInRange is DatesInRange on the epoch-day axis.
func (s Schedule) DaysInRange(startDay, endDay int) []int {
	dates := s.DatesInRange(DateOfDay(startDay), DateOfDay(endDay))
	days := make([]int, 0, len(dates))
	for _, d := range dates {
		days = append(days, d.Days())
	}
	return days
}

// MarshalJSON implements json.Marshaler for Schedule.
func (s Schedule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", s.stype)
	if len(s.daysOfMonth) > 0 {
		w.Append("daysOfMonth", s.daysOfMonth)
	}
	if len(s.daysOfWeek) > 0 {
		w.Append("daysOfWeek", s.daysOfWeek)
	}
	if s.interval > 0 {
		w.Append("interval", s.interval)
	}
	w.Append("startDate", s.start)
	if !s.end.IsZero() {
		w.Append("endDate", s.end)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler for Schedule. An absent or
// unknown type falls back to monthly, the shape legacy records used.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type        string `json:"type"`
		DaysOfMonth []int  `json:"daysOfMonth"`
		DaysOfWeek  []int  `json:"daysOfWeek"`
		Interval    int    `json:"interval"`
		StartDate   Date   `json:"startDate"`
		EndDate     Date   `json:"endDate"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	stype, err := ParseScheduleType(temp.Type)
	if err != nil {
		stype = Monthly
	}
	sched, err := NewSchedule(ScheduleConfig{
		Type:        stype,
		DaysOfMonth: temp.DaysOfMonth,
		DaysOfWeek:  temp.DaysOfWeek,
		Interval:    temp.Interval,
		Start:       temp.StartDate,
		End:         temp.EndDate,
	})
	if err != nil {
		return err
	}
	*s = sched
	return nil
}

// defaultSchedule is the rule used when a plan record omits one:
// monthly on the 1st, starting today.
func defaultSchedule() Schedule {
	sched, err := NewSchedule(ScheduleConfig{Type: Monthly, DaysOfMonth: []int{1}, Start: Today()})
	if err != nil {
		panic(err) // static configuration, cannot fail
	}
	return sched
}
