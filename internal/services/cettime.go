package services

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/araddon/dateparse"
)

// warsaw is the reference timezone: every stored and compared timestamp
// is normalized to Europe/Warsaw before use.
var warsaw = mustLoadWarsaw()

func mustLoadWarsaw() *time.Location {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		// cannot happen: tzdata is compiled in above
		panic(err)
	}
	return loc
}

const (
	naiveLayout = "2006-01-02 15:04:05"
	stampLayout = "2006-01-02 15:04:05 MST"
	dateLayout  = "2006-01-02"
)

// farFuture is the sort sentinel for entries whose interview_datetime is
// missing or unparseable; they order after every real timestamp.
var farFuture = time.Date(9998, 12, 31, 23, 59, 59, 0, time.UTC)

// CurrentDate returns today's calendar date in the reference timezone.
func CurrentDate() string {
	return time.Now().In(warsaw).Format(dateLayout)
}

// NormalizeISO parses an ISO-format timestamp, assumes the reference
// timezone when no offset is given, converts aware values to it, and
// returns the stamp as formatted text with the zone abbreviation. If the
// input does not parse it is returned unchanged.
func NormalizeISO(value string) string {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05Z07:00",
		naiveLayout,
		dateLayout,
	}
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, warsaw)
		if err == nil {
			return t.In(warsaw).Format(stampLayout)
		}
	}
	return value
}

// ParseDateTime parses a stored or client-supplied timestamp best-effort.
// A stamp tagged with the reference zone's abbreviation is read as local
// wall time; anything else goes through general-purpose parsing. Naive
// results are localized to the reference timezone, aware ones converted.
// The false return is the single "no timestamp" case consumed by both
// the date filter and the sort.
func ParseDateTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	// strptime-style layouts do not match abbreviations like CET/CEST,
	// so strip the tag and treat the rest as Warsaw wall time. CEST is
	// not a substring of CET, so both tags need checking.
	if strings.Contains(value, "CEST") || strings.Contains(value, "CET") {
		stripped := strings.Replace(value, "CEST", "", 1)
		stripped = strings.Replace(stripped, "CET", "", 1)
		stripped = strings.TrimSpace(stripped)
		t, err := time.ParseInLocation(naiveLayout, stripped, warsaw)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	t, err := dateparse.ParseIn(value, warsaw)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(warsaw), true
}
