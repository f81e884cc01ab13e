package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Travel dates arrive as free text ("tomorrow", "18 August", "2025-08-18").
// Everything is normalized to an ISO calendar date before it enters the trip
// context; the rest of the system never sees the raw phrasing.

const ISODate = "2006-01-02"

var monthIndex = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	ordinalDateRe  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)(?:\s+(\d{4}))?`)
	monthFirstRe   = regexp.MustCompile(`([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?`)
	slashDateRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseTravelDate normalizes a natural-language date to ISO form, relative to
// the current day. Returns "" when nothing parseable is found.
func ParseTravelDate(raw string) string {
	return ParseTravelDateAt(raw, time.Now())
}

// ParseTravelDateAt is ParseTravelDate with an explicit reference time.
func ParseTravelDateAt(raw string, now time.Time) string {
	txt := strings.ToLower(strings.TrimSpace(raw))
	if txt == "" {
		return ""
	}

	switch {
	case txt == "today":
		return now.Format(ISODate)
	case txt == "tomorrow":
		return now.AddDate(0, 0, 1).Format(ISODate)
	case txt == "day after tomorrow" || txt == "day after":
		return now.AddDate(0, 0, 2).Format(ISODate)
	case strings.Contains(txt, "next week"):
		return now.AddDate(0, 0, 7).Format(ISODate)
	case strings.Contains(txt, "next month"):
		return now.AddDate(0, 1, 0).Format(ISODate)
	}

	if isoDateRe.MatchString(txt) {
		if _, err := time.Parse(ISODate, txt); err == nil {
			return txt
		}
		return ""
	}

	if m := slashDateRe.FindStringSubmatch(txt); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return buildDate(year, time.Month(month), day)
	}

	// "18 August", "18th of August 2025"
	if m := ordinalDateRe.FindStringSubmatch(txt); m != nil {
		if month, ok := monthIndex[m[2]]; ok {
			day, _ := strconv.Atoi(m[1])
			year := yearOrDefault(m[3], now)
			return buildDate(year, month, day)
		}
	}

	// "August 18"
	if m := monthFirstRe.FindStringSubmatch(txt); m != nil {
		if month, ok := monthIndex[m[1]]; ok {
			day, _ := strconv.Atoi(m[2])
			year := yearOrDefault(m[3], now)
			return buildDate(year, month, day)
		}
	}

	return ""
}

func yearOrDefault(raw string, now time.Time) int {
	if raw != "" {
		if y, err := strconv.Atoi(raw); err == nil {
			return y
		}
	}
	return now.Year()
}

// buildDate rejects roll-overs like 31 February instead of normalizing them.
func buildDate(year int, month time.Month, day int) string {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month || d.Year() != year {
		return ""
	}
	return d.Format(ISODate)
}

// NextDayISO returns the day after an ISO date, used as a default checkout
// when no return date is known.
func NextDayISO(iso string) string {
	d, err := time.Parse(ISODate, iso)
	if err != nil {
		return iso
	}
	return d.AddDate(0, 0, 1).Format(ISODate)
}

// FormatDisplayDate renders an ISO date for user-facing prompts.
func FormatDisplayDate(iso string) string {
	d, err := time.Parse(ISODate, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s, %d %s %d", d.Weekday(), d.Day(), d.Month(), d.Year())
}
