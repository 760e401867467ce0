package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	gotime "time"

	"eventboard/internal/domain"
)

// dateLayouts are the accepted input layouts for Date, tried in order.
// Only the date portion of the parsed value is kept.
var dateLayouts = []string{
	"2006-01-02",
	gotime.RFC3339,
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Date normalizes free-form date text to canonical YYYY-MM-DD form. Inputs
// already in canonical form round-trip unchanged. Returns ErrInvalidDate when
// no accepted layout parses the input into a valid calendar date.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		t, err := gotime.Parse(layout, s)
		if err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", domain.ErrInvalidDate
}

// timePattern accepts H:mm, HH:mm, Hmm and HHmm, optionally suffixed by a
// case-insensitive AM/PM with or without a preceding space.
var timePattern = regexp.MustCompile(`^(\d{1,2}):?(\d{2})(?:\s?([AaPp][Mm]))?$`)

// Time normalizes clock-time text to 24-hour HH:mm form. The raw parsed hour
// must be 0-23 and the minute 0-59 before any meridiem reinterpretation; only
// then, when a meridiem suffix is present, hour 12 maps to 0 (AM) or 12 (PM)
// and hours 1-11 gain 12 for PM. Returns ErrInvalidTime when the text does
// not match the accepted pattern or a component is out of range.
func Time(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", domain.ErrInvalidTime
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", domain.ErrInvalidTime
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return "", domain.ErrInvalidTime
	}
	if hour > 23 || minute > 59 {
		return "", domain.ErrInvalidTime
	}
	if meridiem := strings.ToUpper(m[3]); meridiem != "" {
		switch {
		case hour == 12 && meridiem == "AM":
			hour = 0
		case hour >= 1 && hour <= 11 && meridiem == "PM":
			hour += 12
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
