package timer

import (
	"fmt"
	"strings"
	"time"

	"BreakTimer/i18n"
)

// FormatInterval renders a period in words, e.g. "15 minutes" or
// "1 hour 30 minutes". Sub-second precision is dropped.
func FormatInterval(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, sec := total/3600, (total%3600)/60, total%60

	var parts []string
	add := func(n int, one, many string) {
		if n == 0 {
			return
		}
		unit := many
		if n == 1 {
			unit = one
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, i18n.T(unit)))
	}
	add(h, "hour", "hours")
	add(m, "minute", "minutes")
	add(sec, "second", "seconds")

	if len(parts) == 0 {
		return "0 " + i18n.T("seconds")
	}
	return strings.Join(parts, " ")
}

// FormatTimerLabel names the timer by its period, e.g. "15-minute". In
// English a single-unit period becomes a compound adjective; anything else
// falls back to FormatInterval.
func FormatTimerLabel(d time.Duration) string {
	if i18n.GetLang() != "en" {
		return FormatInterval(d)
	}
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%d-hour", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0 && d < time.Hour:
		return fmt.Sprintf("%d-minute", d/time.Minute)
	case d >= time.Second && d < time.Minute && d%time.Second == 0:
		return fmt.Sprintf("%d-second", d/time.Second)
	}
	return FormatInterval(d)
}

// FormatClock renders a wall-clock time as hh:mm.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
