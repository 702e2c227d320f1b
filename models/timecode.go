// Package models provides core data structures for the chapter toolkit.
package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
)

// timeCodePattern accepts the canonical H:MM:SS shape with an optional
// 1-3 digit fraction. Two-field times (MM:SS) are rejected here; the
// chapter-list scanner has its own, more permissive token pattern.
var timeCodePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})(?:\.(\d{1,3}))?$`)

// TimeCode represents a playback timestamp as hours, minutes, and
// seconds with millisecond precision.
//
// TimeCode is a plain value: construct it with ParseTimeCode or
// TimeCodeFromMilliseconds and treat it as immutable afterwards.
// Milliseconds and TimeCodeFromMilliseconds round-trip exactly at
// 1 ms resolution.
type TimeCode struct {
	Hours   int
	Minutes int
	Seconds float64
}

// ParseTimeCode parses a timestamp in H:MM:SS or H:MM:SS.fff form.
//
// A fraction of 1-3 digits is right-padded with zeros to milliseconds,
// so "1:02:03.5" means 1:02:03.500. Any other shape returns ok=false
// rather than an error; a failed parse is an expected outcome for
// user-entered text.
//
// Example:
//
//	tc, ok := models.ParseTimeCode("0:01:30.250")
//	if !ok {
//	    // not a timestamp
//	}
func ParseTimeCode(s string) (TimeCode, bool) {
	matches := timeCodePattern.FindStringSubmatch(s)
	if matches == nil {
		return TimeCode{}, false
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	millis := 0
	if matches[4] != "" {
		padded := matches[4]
		for len(padded) < 3 {
			padded += "0"
		}
		millis, _ = strconv.Atoi(padded)
	}

	return TimeCode{
		Hours:   hours,
		Minutes: minutes,
		Seconds: float64(seconds) + float64(millis)/1000,
	}, true
}

// TimeCodeFromMilliseconds converts an absolute millisecond count into
// a TimeCode. Negative counts are clamped to zero.
func TimeCodeFromMilliseconds(ms int64) TimeCode {
	if ms < 0 {
		ms = 0
	}
	return TimeCode{
		Hours:   int(ms / millisPerHour),
		Minutes: int(ms/millisPerMinute) % 60,
		Seconds: float64(ms%millisPerMinute) / float64(millisPerSecond),
	}
}

// Milliseconds returns the absolute millisecond count for the timestamp.
//
// The seconds field is rounded to the nearest millisecond before the
// conversion. Rounding (instead of truncating) is what keeps
// TimeCodeFromMilliseconds(m).Milliseconds() == m for every m: the
// float64 seconds value for a count like 30530 ms is slightly below
// 30.53, and truncation would lose a millisecond.
func (t TimeCode) Milliseconds() int64 {
	return int64(t.Hours)*millisPerHour +
		int64(t.Minutes)*millisPerMinute +
		int64(math.Round(t.Seconds*float64(millisPerSecond)))
}

// Format renders the timestamp in the canonical form: hours unpadded,
// minutes and seconds zero-padded to two digits, milliseconds to three.
//
// When includeFraction is false the seconds are truncated to a whole
// number and no fractional part is printed.
//
// Example:
//
//	models.TimeCode{Minutes: 1, Seconds: 30.25}.Format(true)  // "0:01:30.250"
//	models.TimeCode{Minutes: 1, Seconds: 30.25}.Format(false) // "0:01:30"
func (t TimeCode) Format(includeFraction bool) string {
	if !includeFraction {
		return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, int(t.Seconds))
	}

	totalMillis := int64(math.Round(t.Seconds * float64(millisPerSecond)))
	return fmt.Sprintf("%d:%02d:%02d.%03d",
		t.Hours, t.Minutes, totalMillis/millisPerSecond, totalMillis%millisPerSecond)
}

// String returns the canonical H:MM:SS.mmm form.
func (t TimeCode) String() string {
	return t.Format(true)
}
