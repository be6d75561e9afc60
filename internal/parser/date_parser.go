package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/brewlog/internal/brew"
)

var (
	isoDateRegex   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	daysAgoRegex   = regexp.MustCompile(`^(\d+)\s*(?:d|days?)(?:\s+ago)?$`)
)

// ParseBrewDate parses the date a brew was made, relative to now
// Supported formats:
// - "" or "today"
// - "yesterday"
// - N days ago (e.g., "3 days ago", "2d")
// - yyyy-mm-dd (e.g., "2025-05-20")
// - dd/mm/yyyy (e.g., "20/05/2025")
// The result is local midnight of that day. Future dates are rejected.
func ParseBrewDate(input string, now time.Time) (time.Time, error) {
	today := brew.DateOf(now)
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if matches := daysAgoRegex.FindStringSubmatch(input); matches != nil {
		days, err := strconv.Atoi(matches[1])
		if err != nil || days > 3650 {
			return time.Time{}, fmt.Errorf("days ago must be between 0 and 3650")
		}
		return today.AddDate(0, 0, -days), nil
	}

	var year, month, day int
	if matches := isoDateRegex.FindStringSubmatch(input); matches != nil {
		year, _ = strconv.Atoi(matches[1])
		month, _ = strconv.Atoi(matches[2])
		day, _ = strconv.Atoi(matches[3])
	} else if matches := slashDateRegex.FindStringSubmatch(input); matches != nil {
		day, _ = strconv.Atoi(matches[1])
		month, _ = strconv.Atoi(matches[2])
		year, _ = strconv.Atoi(matches[3])
	} else {
		return time.Time{}, fmt.Errorf("invalid date format. Use: today, yesterday, N days ago, yyyy-mm-dd or dd/mm/yyyy")
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())

	// Rolled over, e.g. 31/02
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	if date.After(today) {
		return time.Time{}, fmt.Errorf("brew date %s is in the future", date.Format("2006-01-02"))
	}

	return date, nil
}

// FormatBrewDate formats a brew date for display
func FormatBrewDate(date, now time.Time) string {
	today := brew.DateOf(now)
	day := brew.DateOf(date.In(now.Location()))
	dateStr := day.Format("2006-01-02")

	daysAgo := int(math.Round(today.Sub(day).Hours() / 24))
	switch {
	case daysAgo == 0:
		return dateStr + " (today)"
	case daysAgo == 1:
		return dateStr + " (yesterday)"
	case daysAgo > 1 && daysAgo <= 7:
		return fmt.Sprintf("%s (%d days ago)", dateStr, daysAgo)
	default:
		return dateStr
	}
}
