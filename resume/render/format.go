package render

import (
	"regexp"
	"strconv"
	"strings"
)

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var (
	monthPrefixPattern = regexp.MustCompile(`^[A-Za-z]{3}`)
	yearMonthPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})`)
)

// FormatDate converts a date-like string into a human-readable label.
// Inputs already carrying a three-letter alphabetic prefix ("Jan 2024") pass
// through unchanged. "YYYY-MM" inputs, with or without a further suffix,
// become "Mon YYYY"; an out-of-range month degrades to the bare year. Any
// other non-empty input passes through unchanged. Never fails.
func FormatDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if monthPrefixPattern.MatchString(trimmed) {
		return trimmed
	}
	if m := yearMonthPattern.FindStringSubmatch(trimmed); m != nil {
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			return m[1]
		}
		return monthAbbrevs[month-1] + " " + m[1]
	}
	return trimmed
}

// FormatEndDate is FormatDate with the "present" literal special-cased: any
// casing of "present" renders as exactly "Present".
func FormatEndDate(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "present") {
		return "Present"
	}
	return FormatDate(raw)
}

// FormatDateRange joins a formatted start and end date, omitting absent ends
// so sparse entries never show a dangling delimiter.
func FormatDateRange(start, end string) string {
	from := FormatDate(start)
	to := FormatEndDate(end)
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	}
	return from + " - " + to
}
