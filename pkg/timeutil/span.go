// Package timeutil holds the clock and duration helpers shared by tasks and
// the day planner.
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxHours and MaxMinutes bound the duration fields of a task.
	MaxHours   = 24
	MaxMinutes = 60

	// MaxDuration is the longest duration the fields allow, 24h60m.
	MaxDuration = MaxHours*time.Hour + MaxMinutes*time.Minute
)

// ErrInvalidDuration is returned for zero, negative or out of range task
// durations.
var ErrInvalidDuration = errors.New("timeutil: invalid duration")

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	spanUnits   = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// TaskDuration validates the hour and minute fields of a task and returns
// the combined duration.
func TaskDuration(hours, minutes int) (time.Duration, error) {
	switch {
	case hours < 0 || minutes < 0:
		return 0, fmt.Errorf("%w: negative value", ErrInvalidDuration)
	case hours > MaxHours:
		return 0, fmt.Errorf("%w: %d hours is more than %d", ErrInvalidDuration, hours, MaxHours)
	case minutes > MaxMinutes:
		return 0, fmt.Errorf("%w: %d minutes is more than %d", ErrInvalidDuration, minutes, MaxMinutes)
	case hours == 0 && minutes == 0:
		return 0, fmt.Errorf("%w: duration must be greater than zero", ErrInvalidDuration)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// ParseTaskDuration is TaskDuration for the raw text of the hour and minute
// fields. Empty fields count as zero.
func ParseTaskDuration(hours, minutes string) (time.Duration, error) {
	h, err := atoiField(hours)
	if err != nil {
		return 0, err
	}
	m, err := atoiField(minutes)
	if err != nil {
		return 0, err
	}
	return TaskDuration(h, m)
}

func atoiField(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDuration, v)
	}
	return n, nil
}

// ParseSpan parses compact spans such as "2h", "45m" or "1h30m". Hour and
// minute segments are summed separately and checked as the two duration
// fields, so "24h60m" is accepted and "90m" is not.
func ParseSpan(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("%w: empty span", ErrInvalidDuration)
	}
	var hours, minutes int64
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("%w: invalid segment %q", ErrInvalidDuration, strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid value %q", ErrInvalidDuration, matches[1])
		}
		base, ok := spanUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("%w: unsupported unit %q", ErrInvalidDuration, matches[2])
		}
		field := &minutes
		if base == time.Hour {
			field = &hours
		}
		*field += value
		if hours > MaxHours || minutes > MaxMinutes {
			break
		}
		remaining = remaining[len(matches[0]):]
	}
	return TaskDuration(int(hours), int(minutes))
}

// FormatSpan renders a duration as "2h30m".
func FormatSpan(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// Describe renders a duration as "2 hours and 30 minutes".
func Describe(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%d %s and %d %s", h, plural(h, "hour"), m, plural(m, "minute"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
