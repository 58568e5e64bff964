package events

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateFragment matches the embedded date annotation in an event string,
// e.g. "Cooking (Date: 7/25)" or "Karts (Date: 7/25/2025)".
var dateFragment = regexp.MustCompile(`\(Date:\s*(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\)`)

// FormatEvent renders the literal stored form of an event entry. The exact
// format must be preserved for round-trip and search compatibility.
func FormatEvent(name, date string) string {
	return fmt.Sprintf("%s (Date: %s)", name, date)
}

// StripDate removes the trailing "(Date: ...)" annotation, for
// formatting-drift-tolerant comparisons.
func StripDate(event string) string {
	return strings.TrimSpace(dateFragment.ReplaceAllString(event, ""))
}

// ParseEventDate extracts the date annotation from an event string. Entries
// without a parseable fragment return the zero time so they sort last. A
// missing year defaults to the current year; two-digit years are 2000-based.
func ParseEventDate(event string, now time.Time) time.Time {
	match := dateFragment.FindStringSubmatch(event)
	if match == nil {
		return time.Time{}
	}
	month, _ := strconv.Atoi(match[1])
	day, _ := strconv.Atoi(match[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}

	year := now.Year()
	if match[3] != "" {
		year, _ = strconv.Atoi(match[3])
		if year < 100 {
			year += 2000
		}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsBattleRoyale reports whether an event entry was registered as a battle
// royale. The stored text is the only record, so this is a substring
// heuristic on the event name.
func IsBattleRoyale(event string) bool {
	return strings.Contains(strings.ToLower(event), "royal")
}
