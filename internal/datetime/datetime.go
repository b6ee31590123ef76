// Package datetime converts between structured local date/time parts and the
// canonical local ISO-8601 string form used by the date-picker endpoints and
// the fromDate/toDate list filters.
//
// The canonical form is YYYY-MM-DDTHH:MM:SS±HH:MM where the offset is the
// converter location's UTC offset at that instant. Parsing the canonical form
// takes the wall-clock digits verbatim and discards the offset, so a value
// round-trips to the same parts on any machine.
package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Parts holds a calendar date plus optional time-of-day as display strings.
// An empty Date means the whole value is absent; Hour and Minute are always
// two digits and default to "00".
type Parts struct {
	Date   string
	Hour   string
	Minute string
}

var isoPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T(\d{2}):(\d{2})(?::\d{2})?(?:[+-]\d{2}:\d{2}|Z)$`)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Converter performs conversions relative to a fixed location. The zero
// location means the machine's local zone, matching what a browser date
// input would produce. Tests pin the offset with time.FixedZone.
type Converter struct {
	loc *time.Location
	now func() time.Time
}

// NewConverter returns a converter anchored to loc. A nil loc falls back to
// time.Local.
func NewConverter(loc *time.Location) *Converter {
	if loc == nil {
		loc = time.Local
	}
	return &Converter{loc: loc, now: time.Now}
}

// WithNow overrides the reference instant used by the free-form parsing
// fallback for relative inputs. Intended for tests.
func (c *Converter) WithNow(now func() time.Time) *Converter {
	c.now = now
	return c
}

// Location returns the converter's anchor location.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// FormatDatePart renders t's local calendar fields as YYYY-MM-DD.
func (c *Converter) FormatDatePart(t time.Time) string {
	local := t.In(c.loc)
	return fmt.Sprintf("%04d-%02d-%02d", local.Year(), int(local.Month()), local.Day())
}

// ToLocalISOString renders t as YYYY-MM-DDTHH:MM:SS±HH:MM using the local
// calendar fields and the signed UTC offset at that instant. A non-negative
// offset gets "+", including +00:00.
func (c *Converter) ToLocalISOString(t time.Time) string {
	local := t.In(c.loc)
	_, offsetSeconds := local.Zone()

	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	offsetMinutes := offsetSeconds / 60

	return fmt.Sprintf("%sT%02d:%02d:%02d%s%02d:%02d",
		c.FormatDatePart(local),
		local.Hour(), local.Minute(), local.Second(),
		sign, offsetMinutes/60, offsetMinutes%60,
	)
}

// CreateDateFromParts builds an instant in the converter's location from a
// YYYY-MM-DD date string plus hour/minute strings. The date is strict: an
// empty string or a year/month/day that does not parse as an integer reports
// ok=false. Hour and minute are lenient and coerce to 0 when unparseable.
// Seconds and sub-second fields are always zero.
func (c *Converter) CreateDateFromParts(date, hour, minute string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}

	fields := strings.SplitN(date, "-", 3)
	for len(fields) < 3 {
		fields = append(fields, "")
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}

	h, err := strconv.Atoi(hour)
	if err != nil {
		h = 0
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		m = 0
	}

	return time.Date(year, time.Month(month), day, h, m, 0, 0, c.loc), true
}

// ParseLocalDateTime extracts display parts from a heterogeneous input
// string. Recognized, in priority order:
//
//  1. YYYY-MM-DDTHH:MM[:SS] followed by ±HH:MM or Z: the wall-clock digits
//     are taken verbatim and the offset suffix is discarded, never converted
//     through.
//  2. Bare YYYY-MM-DD, with hour and minute reporting "00".
//  3. Free-form parsing via go-dateparser; the resulting instant's fields in
//     the converter's location become the parts.
//
// Empty or whitespace-only input, and anything unrecognized, reports
// ok=false. The function is total: no input panics.
func (c *Converter) ParseLocalDateTime(value string) (Parts, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Parts{}, false
	}

	if match := isoPattern.FindStringSubmatch(trimmed); match != nil {
		return Parts{Date: match[1], Hour: match[2], Minute: match[3]}, true
	}

	if datePattern.MatchString(trimmed) {
		return Parts{Date: trimmed, Hour: "00", Minute: "00"}, true
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     c.now(),
		DefaultTimezone: c.loc,
	}
	parsed, err := dateparser.Parse(cfg, trimmed)
	if err != nil || parsed.Time.IsZero() {
		return Parts{}, false
	}

	local := parsed.Time.In(c.loc)
	return Parts{
		Date:   c.FormatDatePart(local),
		Hour:   fmt.Sprintf("%02d", local.Hour()),
		Minute: fmt.Sprintf("%02d", local.Minute()),
	}, true
}

// FormatPartsToLocalISOString composes CreateDateFromParts and
// ToLocalISOString. ok is false only when date construction failed.
func (c *Converter) FormatPartsToLocalISOString(date, hour, minute string) (string, bool) {
	constructed, ok := c.CreateDateFromParts(date, hour, minute)
	if !ok {
		return "", false
	}
	return c.ToLocalISOString(constructed), true
}

// ValidDateOnly reports whether s is a well-formed bare YYYY-MM-DD string.
// List filters use it to reject fromDate/toDate values that would not order
// correctly as strings.
func ValidDateOnly(s string) bool {
	return datePattern.MatchString(s)
}
