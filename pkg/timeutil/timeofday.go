package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of the schedulable day.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned when a clock value cannot be parsed.
var ErrInvalidTime = errors.New("timeutil: invalid time of day")

// TimeOfDay is a wall clock time expressed in minutes after midnight.
type TimeOfDay int

// Clock builds a TimeOfDay from an hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour component (0-23 for in-day values).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// Sub returns the duration t-u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t-u) * time.Minute
}

// On places the clock time on the calendar day of d.
func (t TimeOfDay) On(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, t.Hour(), t.Minute(), 0, 0, d.Location())
}

// Clock renders the 24 hour form, "09:30".
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// String renders the 12 hour form, "9:30 AM".
func (t TimeOfDay) String() string {
	h := t.Hour() % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	switch {
	case h == 0:
		h = 12
	case h > 12:
		h -= 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), suffix)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimeOfDay accepts "8:30 AM", "8 PM", "20:30" and "9:00".
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(v, suffix) {
			meridiem = suffix
			v = strings.TrimSpace(strings.TrimSuffix(v, suffix))
			break
		}
	}
	hourPart, minutePart := v, "0"
	if i := strings.Index(v, ":"); i >= 0 {
		hourPart, minutePart = v[:i], v[i+1:]
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "PM" {
			hour += 12
		}
	}
	return Clock(hour, minute), nil
}
