package client

import (
	"fmt"
	"strings"
	"time"
)

// LabelLayout renders DD-MM-YYYY-HH-MM-SS.
const LabelLayout = "02-01-2006-15-04-05"

// zonedLayouts carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
}

// localLayouts have no offset and are read in the target location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// dateOnlyLayout values are midnight UTC, like a bare ISO date.
const dateOnlyLayout = "2006-01-02"

// ParseTimestamp parses an ISO-8601 style timestamp. Date-time values
// without an offset are interpreted in loc; a bare date is midnight UTC.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// FormatTimestamp renders value as DD-MM-YYYY-HH-MM-SS in loc, every
// component zero padded. A nil loc means time.Local.
func FormatTimestamp(value string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	t, err := ParseTimestamp(value, loc)
	if err != nil {
		return "", err
	}

	return t.In(loc).Format(LabelLayout), nil
}
