package clock

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"retro-clock/internal/settings"
)

const (
	pattern24h = "%H:%M:%S"
	pattern12h = "%I:%M:%S %p"
)

// extraVerbs adds the common strftime directives missing from the library's
// default set: %f microseconds, %s unix seconds and %P lower-case am/pm.
var extraVerbs = []strftime.Option{
	strftime.WithMicroseconds('f'),
	strftime.WithSpecification('s', strftime.UnixSeconds()),
	strftime.WithSpecification('P', strftime.AppendFunc(func(b []byte, t time.Time) []byte {
		if t.Hour() < 12 {
			return append(b, "am"...)
		}
		return append(b, "pm"...)
	})),
}

// FormatTime renders t as HH:MM:SS for "24h" and hh:mm:ss AM/PM for any
// other format value.
func FormatTime(t time.Time, timeFormat string) (string, error) {
	pattern := pattern12h
	if timeFormat == settings.TimeFormat24h {
		pattern = pattern24h
	}
	return strftime.Format(pattern, t)
}

// FormatDate renders t with the strftime pattern, or "" when showDate is false.
func FormatDate(t time.Time, showDate bool, pattern string) (string, error) {
	if !showDate {
		return "", nil
	}
	out, err := strftime.Format(pattern, t, extraVerbs...)
	if err != nil {
		return "", fmt.Errorf("date format %q: %w", pattern, err)
	}
	return out, nil
}

// Render reads the clock section of cfg and formats t. date_format is only
// consulted when show_date is true.
func Render(t time.Time, cfg settings.Config) (Face, error) {
	timeFormat, err := cfg.String(settings.SectionClock, "time_format")
	if err != nil {
		return Face{}, err
	}
	timeStr, err := FormatTime(t, timeFormat)
	if err != nil {
		return Face{}, err
	}

	showDate, err := cfg.Bool(settings.SectionClock, "show_date")
	if err != nil {
		return Face{}, err
	}
	if !showDate {
		return Face{Time: timeStr}, nil
	}

	dateFormat, err := cfg.String(settings.SectionClock, "date_format")
	if err != nil {
		return Face{}, err
	}
	dateStr, err := FormatDate(t, true, dateFormat)
	if err != nil {
		return Face{}, err
	}
	return Face{Time: timeStr, Date: dateStr}, nil
}
