// Package timeformat normalizes the free-text time strings the outreach team
// types into the dashboard. The rules are intentionally forgiving: digits are
// reshaped into H:MM, and a missing AM/PM is guessed with a business-hours
// default. The guesses are part of the product's observed behavior and must
// not be "fixed" here; the generated emails depend on the exact output.
package timeformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonClockChars = regexp.MustCompile(`[^0-9:]`)
	leadingHour   = regexp.MustCompile(`^(\d{1,2})`)
	meridiemToken = regexp.MustCompile(`(?i)\s*(AM|PM)`)
	clockPattern  = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(AM|PM)`)
	bareHour      = regexp.MustCompile(`(?i)^(\d{1,2})\s*(AM|PM)$`)
)

// FormatTimeInput reshapes raw digit input into an H:MM clock string.
// "930" becomes "9:30", "1145" becomes "11:45", one or two bare digits pass
// through unchanged. Anything past four digits (or past two digits on either
// side of a colon) is dropped.
func FormatTimeInput(input string) string {
	if input == "" {
		return ""
	}

	cleaned := nonClockChars.ReplaceAllString(input, "")
	if cleaned == "" {
		return ""
	}

	if !strings.Contains(cleaned, ":") {
		switch {
		case len(cleaned) <= 2:
			return cleaned
		case len(cleaned) == 3:
			return cleaned[:1] + ":" + cleaned[1:]
		default:
			return cleaned[:2] + ":" + cleaned[2:4]
		}
	}

	parts := strings.SplitN(cleaned, ":", 2)
	hours := parts[0]
	if len(hours) > 2 {
		hours = hours[:2]
	}
	minutes := parts[1]
	if i := strings.IndexByte(minutes, ':'); i >= 0 {
		minutes = minutes[:i]
	}
	if len(minutes) > 2 {
		minutes = minutes[:2]
	}
	if minutes != "" {
		return hours + ":" + minutes
	}
	return hours
}

// EnsureMeridiem appends an AM/PM marker when the input has none. Input that
// already carries a marker is returned trimmed but otherwise untouched.
//
// The guess defaults to working hours: 9 through 23 read as PM, 1 through 8
// as AM, and 12 (or 0) falls through to PM. "9" therefore becomes "9 PM" even
// when the user meant morning; callers accept that.
func EnsureMeridiem(s string) string {
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(strings.TrimSpace(s))
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return strings.TrimSpace(s)
	}

	timePart := FormatTimeInput(s)
	if timePart == "" {
		return s
	}

	m := leadingHour.FindStringSubmatch(timePart)
	if m == nil {
		return s
	}

	hour, _ := strconv.Atoi(m[1])
	switch {
	case hour >= 9 && hour <= 23:
		return timePart + " PM"
	case hour >= 1 && hour <= 8:
		return timePart + " AM"
	default:
		return timePart + " PM"
	}
}

// DisplayTime is the email-body variant of EnsureMeridiem. A marker already
// present is lowercased and attached ("2:00 PM" -> "2:00pm"); untagged input
// gets a lowercase "am" suffix regardless of hour. That blanket "am" matches
// the legacy generator and FoodReadyTime depends on it.
func DisplayTime(s string) string {
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(strings.TrimSpace(s))
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return meridiemToken.ReplaceAllStringFunc(strings.TrimSpace(s), func(m string) string {
			return strings.ToLower(strings.TrimSpace(m))
		})
	}

	timePart := FormatTimeInput(s)
	if timePart == "" {
		return s
	}
	if !leadingHour.MatchString(timePart) {
		return s
	}
	return timePart + "am"
}

// FoodReadyTime derives the catering drop-off target: thirty minutes before
// the given start time, rendered as H:MM with a lowercase meridiem. Input the
// clock pattern cannot parse yields an empty string so a bad time never sinks
// the whole email.
func FoodReadyTime(start string) string {
	if start == "" {
		return ""
	}

	m := clockPattern.FindStringSubmatch(DisplayTime(start))
	if m == nil {
		return ""
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	period := strings.ToUpper(m[3])

	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	minutes -= 30
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
	}

	display := hours % 12
	if display == 0 {
		display = 12
	}
	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}

	return fmt.Sprintf("%d:%02d%s", display, minutes, suffix)
}

// ParseClock extracts a 24-hour clock from a normalized time string like
// "9:30 AM" or "2pm". The second return is false when no meridiem-tagged
// clock is present.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	period := strings.ToUpper(m[3])

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// PadMinutes expands a bare-hour canonical time ("11 PM") to the H:MM display
// form ("11:00 PM"). Times that already carry minutes pass through unchanged.
func PadMinutes(s string) string {
	trimmed := strings.TrimSpace(s)
	if m := bareHour.FindStringSubmatch(trimmed); m != nil {
		return m[1] + ":00 " + strings.ToUpper(m[2])
	}
	return s
}
