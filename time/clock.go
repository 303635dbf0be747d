package time

import (
	"cmp"
	"fmt"
	"regexp"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

const (
	nanosecondsPerMicrosecond int64 = 1000
	nanosecondsPerMillisecond int64 = 1000 * nanosecondsPerMicrosecond
	nanosecondsPerSecond      int64 = 1000 * nanosecondsPerMillisecond
	nanosecondsPerMinute      int64 = 60 * nanosecondsPerSecond
	nanosecondsPerHour        int64 = 60 * nanosecondsPerMinute
	nanosecondsPerDay         int64 = 24 * nanosecondsPerHour
	nanosecondsPerWeek        int64 = 7 * nanosecondsPerDay
)

// Time is a time of day with nanosecond resolution. The zero value is undefined;
// use Midnight for 00:00:00.
type Time struct {
	nanoseconds int64 // since midnight
	defined     bool
}

// NewTime returns the time of day hour:minute:second. Up to three sub-second
// fields may follow, in order millisecond, microsecond, nanosecond; missing
// ones are zero. Each field must lie within its natural range (hour < 24,
// minute < 60, second < 60, sub-second fields < 1000) or the call fails with
// errors.CodeInvalidArgument.
func NewTime(hour, minute, second int, subsecond ...int) (Time, error) {
	if len(subsecond) > 3 {
		return Time{}, invalidArgument("at most 3 sub-second fields (millisecond, microsecond, nanosecond), got %d", len(subsecond))
	}

	var fields [3]int
	copy(fields[:], subsecond)
	millisecond, microsecond, nanosecond := fields[0], fields[1], fields[2]

	switch {
	case hour < 0 || hour > 23:
		return Time{}, invalidArgument("hour %d out of range [0, 23]", hour)
	case minute < 0 || minute > 59:
		return Time{}, invalidArgument("minute %d out of range [0, 59]", minute)
	case second < 0 || second > 59:
		return Time{}, invalidArgument("second %d out of range [0, 59]", second)
	case millisecond < 0 || millisecond > 999:
		return Time{}, invalidArgument("millisecond %d out of range [0, 999]", millisecond)
	case microsecond < 0 || microsecond > 999:
		return Time{}, invalidArgument("microsecond %d out of range [0, 999]", microsecond)
	case nanosecond < 0 || nanosecond > 999:
		return Time{}, invalidArgument("nanosecond %d out of range [0, 999]", nanosecond)
	}

	ns := int64(hour)*nanosecondsPerHour +
		int64(minute)*nanosecondsPerMinute +
		int64(second)*nanosecondsPerSecond +
		int64(millisecond)*nanosecondsPerMillisecond +
		int64(microsecond)*nanosecondsPerMicrosecond +
		int64(nanosecond)

	return Time{nanoseconds: ns, defined: true}, nil
}

// timeOfDay builds a Time from nanoseconds since midnight, which must be in [0, 1 day).
func timeOfDay(ns int64) Time {
	return Time{nanoseconds: ns, defined: true}
}

// UndefinedTime returns the undefined time of day.
func UndefinedTime() Time {
	return Time{}
}

// Midnight returns 00:00:00.
func Midnight() Time {
	return timeOfDay(0)
}

// Noon returns 12:00:00.
func Noon() Time {
	return timeOfDay(12 * nanosecondsPerHour)
}

// IsDefined reports whether t holds a time of day.
func (t Time) IsDefined() bool {
	return t.defined
}

// Hour returns the hour in [0, 23].
// Every field accessor fails with errors.CodeUndefined when t is undefined.
func (t Time) Hour() (int, error) { return t.field("hour", nanosecondsPerDay, nanosecondsPerHour) }

// Minute returns the minute in [0, 59].
func (t Time) Minute() (int, error) { return t.field("minute", nanosecondsPerHour, nanosecondsPerMinute) }

// Second returns the second in [0, 59].
func (t Time) Second() (int, error) { return t.field("second", nanosecondsPerMinute, nanosecondsPerSecond) }

// Millisecond returns the millisecond in [0, 999].
func (t Time) Millisecond() (int, error) {
	return t.field("millisecond", nanosecondsPerSecond, nanosecondsPerMillisecond)
}

// Microsecond returns the microsecond in [0, 999].
func (t Time) Microsecond() (int, error) {
	return t.field("microsecond", nanosecondsPerMillisecond, nanosecondsPerMicrosecond)
}

// Nanosecond returns the nanosecond in [0, 999].
func (t Time) Nanosecond() (int, error) {
	return t.field("nanosecond", nanosecondsPerMicrosecond, 1)
}

func (t Time) field(name string, span, unit int64) (int, error) {
	if !t.defined {
		return 0, undefinedError("read " + name + " of time")
	}
	return t.component(span, unit), nil
}

// component returns the count of unit within the current span, ignoring definedness.
func (t Time) component(span, unit int64) int {
	return int(t.nanoseconds % span / unit)
}

// TotalNanoseconds returns the number of nanoseconds elapsed since midnight.
func (t Time) TotalNanoseconds() (int64, error) {
	if !t.defined {
		return 0, undefinedError("count nanoseconds of time")
	}
	return t.nanoseconds, nil
}

// Equal reports whether t and other are the same time of day, down to the nanosecond.
// Two undefined times are equal.
func (t Time) Equal(other Time) bool {
	return t == other
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or after other.
// Undefined times order before every defined time.
func (t Time) Compare(other Time) int {
	if t.defined != other.defined {
		if t.defined {
			return 1
		}
		return -1
	}
	return cmp.Compare(t.nanoseconds, other.nanoseconds)
}

// String returns the time as HH:MM:SS with a fractional part when the sub-second
// fields are not all zero, or "Undefined".
func (t Time) String() string {
	if !t.defined {
		return undefinedString
	}
	return fmt.Sprintf("%02d:%02d:%02d%s",
		t.component(nanosecondsPerDay, nanosecondsPerHour),
		t.component(nanosecondsPerHour, nanosecondsPerMinute),
		t.component(nanosecondsPerMinute, nanosecondsPerSecond),
		t.fraction(),
	)
}

// fraction renders the sub-second part with the fewest of 3, 6 or 9 digits that
// represent it exactly, and is empty when there is none.
func (t Time) fraction() string {
	sub := t.nanoseconds % nanosecondsPerSecond
	switch {
	case sub == 0:
		return ""
	case sub%nanosecondsPerMillisecond == 0:
		return fmt.Sprintf(".%03d", sub/nanosecondsPerMillisecond)
	case sub%nanosecondsPerMicrosecond == 0:
		return fmt.Sprintf(".%06d", sub/nanosecondsPerMicrosecond)
	default:
		return fmt.Sprintf(".%09d", sub)
	}
}

var clockRe = regexp.MustCompile(`^` + clockPattern + `$`)

// ParseTime parses a time of day written as HH:MM:SS with an optional fraction of
// one to nine digits.
func ParseTime(s string) (Time, error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return Time{}, errors.Newf(errors.CodeParseFailed, "cannot parse %q as a time (expected HH:MM:SS[.fffffffff])", s)
	}
	t, err := newTimeFromFields(m[1], m[2], m[3], m[4])
	if err != nil {
		return Time{}, errors.Wrapf(err, errors.CodeParseFailed, "cannot parse %q as a time", s)
	}
	return t, nil
}

// clockPattern captures hour, minute, second and an optional fraction.
const clockPattern = `(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,9}))?`

// newTimeFromFields builds a Time from regexp captures of clockPattern.
func newTimeFromFields(hour, minute, second, fraction string) (Time, error) {
	digits := fraction + "000000000"[len(fraction):]
	return NewTime(
		atoi(hour), atoi(minute), atoi(second),
		atoi(digits[0:3]), atoi(digits[3:6]), atoi(digits[6:9]),
	)
}
