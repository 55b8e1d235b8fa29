package plancast

import (
	"testing"
	"time"
)

func TestDateDays(t *testing.T) {
	tests := []struct {
		date Date
		days int
	}{
		{NewDate(1970, time.January, 1), 0},
		{NewDate(1970, time.January, 2), 1},
		{NewDate(1970, time.February, 1), 31},
		{NewDate(2024, time.January, 1), 19723},
		{NewDate(2024, time.December, 31), 20088},
	}
	for _, tt := range tests {
		if got := tt.date.Days(); got != tt.days {
			t.Errorf("%s.Days() = %d, want %d", tt.date, got, tt.days)
		}
		if got := DateOfDay(tt.days); got != tt.date {
			t.Errorf("DateOfDay(%d) = %s, want %s", tt.days, got, tt.date)
		}
	}
}

func TestDateNormalization(t *testing.T) {
	if got, want := NewDate(2024, time.January, 32), NewDate(2024, time.February, 1); got != want {
		t.Errorf("NewDate(2024, January, 32) = %s, want %s", got, want)
	}
	if got, want := NewDate(2024, time.March, 0), NewDate(2024, time.February, 29); got != want {
		t.Errorf("NewDate(2024, March, 0) = %s, want %s", got, want)
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		date, want Date
	}{
		{NewDate(2024, time.February, 10), NewDate(2024, time.February, 29)},
		{NewDate(2023, time.February, 10), NewDate(2023, time.February, 28)},
		{NewDate(2024, time.December, 1), NewDate(2024, time.December, 31)},
		{NewDate(2024, time.April, 30), NewDate(2024, time.April, 30)},
	}
	for _, tt := range tests {
		if got := tt.date.EndOfMonth(); got != tt.want {
			t.Errorf("%s.EndOfMonth() = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestLastDaysOfMonths(t *testing.T) {
	start := NewDate(2024, time.January, 15).Days()
	end := NewDate(2024, time.April, 10).Days()

	want := []int{
		NewDate(2024, time.January, 31).Days(),
		NewDate(2024, time.February, 29).Days(),
		NewDate(2024, time.March, 31).Days(),
	}
	got := lastDaysOfMonths(start, end)
	if len(got) != len(want) {
		t.Fatalf("lastDaysOfMonths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lastDaysOfMonths()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: "2024-01-15T10:30:00Z", want: NewDate(2024, time.January, 15)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
