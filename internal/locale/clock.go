package locale

import (
	"strings"
	"time"

	// Documents are stamped in Africa/Cairo even on hosts without tzdata.
	_ "time/tzdata"
)

// DefaultZone is the zone used when neither TIMEZONE nor TZ resolves.
const DefaultZone = "Africa/Cairo"

const (
	stampLayout = "02-01-2006 15:04:05"
	dateLayout  = "02-01-2006"
)

// dateParseLayouts are tried in order when normalizing caller dates. The
// DD-MM-YYYY layout sits after ISO so already-normalized values round-trip
// unchanged.
var dateParseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// Clock produces zone-fixed timestamps for document headers. The now hook
// exists for deterministic tests.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock resolves the IANA zone from the candidate names in order,
// defaulting to Africa/Cairo. An unknown zone falls back to a fixed UTC+2
// location so document generation never blocks on tzdata.
func NewClock(candidates ...string) *Clock {
	names := append([]string{}, candidates...)
	names = append(names, DefaultZone)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return &Clock{loc: loc, now: time.Now}
		}
	}
	return &Clock{loc: time.FixedZone("EET", 2*60*60), now: time.Now}
}

// WithNow overrides the clock source for tests.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	if now != nil {
		c.now = now
	}
	return c
}

// Location exposes the resolved zone.
func (c *Clock) Location() *time.Location { return c.loc }

// Now returns the current instant in the clock's zone.
func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Stamp renders the current instant as `DD-MM-YYYY HH:mm:ss` with a 24-hour
// clock and zero padding.
func (c *Clock) Stamp() string {
	return c.Now().Format(stampLayout)
}

// TodayISO returns the current local date as YYYY-MM-DD.
func (c *Clock) TodayISO() string {
	return c.Now().Format("2006-01-02")
}

// FormatDate normalizes an input date string to DD-MM-YYYY. Parseable inputs
// are formatted in the clock's zone; unparseable three-segment strings have
// their hyphen segments reversed; everything else passes through unchanged.
func (c *Clock) FormatDate(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return s
	}
	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if strings.Contains(layout, "Z07") {
				t = t.In(c.loc)
			}
			return t.Format(dateLayout)
		}
	}
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}

// SlashDateUTC renders an instant as DD/MM/YYYY with UTC extraction, the
// form used for reservation and down-payment dates.
func SlashDateUTC(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

// ParseSlashDateUTC normalizes a stored date string to DD/MM/YYYY using UTC
// extraction. Unparseable inputs return the empty string.
func ParseSlashDateUTC(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return SlashDateUTC(t)
		}
	}
	return ""
}

var (
	englishDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	arabicDays  = [7]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}
)

// DayName returns the localized weekday name for t.
func DayName(t time.Time, lang Lang) string {
	if lang == Arabic {
		return arabicDays[int(t.Weekday())]
	}
	return englishDays[int(t.Weekday())]
}
