package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Priority is one of the four fixed severity codes attached to a task.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// ParsePriority matches a single-letter code case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return PriorityCritical, true
	case "H":
		return PriorityHigh, true
	case "N":
		return PriorityNormal, true
	case "L":
		return PriorityLow, true
	default:
		return "", false
	}
}

// DueTag is the derived classification of a task's date against the
// session's reference day. It is never persisted; Load and SetDate
// recompute it.
type DueTag string

const (
	DueOverdue DueTag = "Overdue"
	DueToday   DueTag = "Today"
	DueInTime  DueTag = "In-time"
)

// Task is one record in the list. Date and Time keep the normalized wire
// form (YYYY-MM-DD and HH:MM) so the record round-trips byte-for-byte.
type Task struct {
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Due         DueTag   `json:"-"`
}

// Classify compares calendar days only; the clock parts of both arguments
// are ignored.
func Classify(date, today time.Time) DueTag {
	d := dayOf(date)
	t := dayOf(today)
	switch {
	case d.Before(t):
		return DueOverdue
	case d.After(t):
		return DueInTime
	default:
		return DueToday
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses year-month-day with integer components and rejects
// anything that does not name a real calendar date (Feb 30, month 13).
// The returned form is always zero-padded YYYY-MM-DD.
func ParseDate(s string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if year < 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	// time.Date normalizes overflow (Feb 30 -> Mar 1), so a round-trip
	// mismatch means the components were not a real date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// ParseClock parses hour:minute with hour in [0,23] and minute in [0,59].
// The returned form is always zero-padded HH:MM.
func ParseClock(s string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return "", false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func parseDay(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func classifyDay(date string, today time.Time) DueTag {
	d, ok := parseDay(date)
	if !ok {
		return ""
	}
	return Classify(d, today)
}
