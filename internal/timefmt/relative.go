// Package timefmt renders the time elapsed between two instants as a
// human-readable calendar span.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Style selects the rendering of a relative span.
type Style int

const (
	// Long spells units out: "1 year, 2 months, 3 days".
	Long Style = iota
	// Short abbreviates units: "1y, 2mo, 3d".
	Short
	// Raw emits an ISO-8601 duration: "P1Y2M3DT4H5M6S".
	Raw
)

type span struct {
	years, months, days     int
	hours, minutes, seconds int
}

func (s span) isZero() bool {
	return s == span{}
}

// Relative formats the calendar span between from and to. With approx the
// span is truncated to whole days, and a same-day span renders as "today"
// instead of "now".
func Relative(from, to time.Time, style Style, approx bool) string {
	if from.After(to) {
		from, to = to, from
	}

	sp := between(from, to)
	if approx {
		sp.hours, sp.minutes, sp.seconds = 0, 0, 0
	}

	if style == Raw {
		return iso(sp)
	}

	var parts []string
	add := func(value int, short, singular, plural string) {
		if value == 0 {
			return
		}
		if style == Short {
			parts = append(parts, fmt.Sprintf("%d%s", value, short))
		} else if value == 1 {
			parts = append(parts, fmt.Sprintf("%d %s", value, singular))
		} else {
			parts = append(parts, fmt.Sprintf("%d %s", value, plural))
		}
	}

	add(sp.years, "y", "year", "years")
	add(sp.months, "mo", "month", "months")
	add(sp.days, "d", "day", "days")
	add(sp.hours, "h", "hour", "hours")
	add(sp.minutes, "m", "minute", "minutes")
	add(sp.seconds, "s", "second", "seconds")

	if len(parts) == 0 {
		if approx {
			return "today"
		}
		return "now"
	}
	return strings.Join(parts, ", ")
}

// between computes the calendar component breakdown from one instant to a
// later one, borrowing across units the way a human would count.
func between(from, to time.Time) span {
	sp := span{
		years:   to.Year() - from.Year(),
		months:  int(to.Month()) - int(from.Month()),
		days:    to.Day() - from.Day(),
		hours:   to.Hour() - from.Hour(),
		minutes: to.Minute() - from.Minute(),
		seconds: to.Second() - from.Second(),
	}

	if sp.seconds < 0 {
		sp.seconds += 60
		sp.minutes--
	}
	if sp.minutes < 0 {
		sp.minutes += 60
		sp.hours--
	}
	if sp.hours < 0 {
		sp.hours += 24
		sp.days--
	}
	if sp.days < 0 {
		// Day 0 of to's month is the last day of the month before it.
		sp.days += time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, to.Location()).Day()
		sp.months--
	}
	if sp.months < 0 {
		sp.months += 12
		sp.years--
	}
	return sp
}

func iso(sp span) string {
	if sp.isZero() {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte('P')
	if sp.years != 0 {
		fmt.Fprintf(&b, "%dY", sp.years)
	}
	if sp.months != 0 {
		fmt.Fprintf(&b, "%dM", sp.months)
	}
	if sp.days != 0 {
		fmt.Fprintf(&b, "%dD", sp.days)
	}
	if sp.hours != 0 || sp.minutes != 0 || sp.seconds != 0 {
		b.WriteByte('T')
		if sp.hours != 0 {
			fmt.Fprintf(&b, "%dH", sp.hours)
		}
		if sp.minutes != 0 {
			fmt.Fprintf(&b, "%dM", sp.minutes)
		}
		if sp.seconds != 0 {
			fmt.Fprintf(&b, "%dS", sp.seconds)
		}
	}
	return b.String()
}
