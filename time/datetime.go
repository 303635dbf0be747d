package time

import (
	gotime "time"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// DateTime is a calendar date and time of day, without time zone.
// The zero value is undefined. DateTime values are comparable with ==, which
// agrees with Equal.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime returns the date-time year-month-day hour:minute:second.
// Up to three sub-second fields may follow, in order millisecond, microsecond,
// nanosecond. Out-of-range fields and impossible dates fail with
// errors.CodeInvalidArgument.
func NewDateTime(year, month, day, hour, minute, second int, subsecond ...int) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := NewTime(hour, minute, second, subsecond...)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: t}, nil
}

// DateTimeOf combines a date and a time of day. Both must be defined.
func DateTimeOf(date Date, t Time) (DateTime, error) {
	if !date.IsDefined() {
		return DateTime{}, invalidArgument("date is undefined")
	}
	if !t.IsDefined() {
		return DateTime{}, invalidArgument("time is undefined")
	}
	return DateTime{date: date, time: t}, nil
}

// UndefinedDateTime returns the undefined date-time.
func UndefinedDateTime() DateTime {
	return DateTime{}
}

// IsDefined reports whether dt holds a date and time.
func (dt DateTime) IsDefined() bool {
	return dt.date.IsDefined()
}

// Date returns the calendar date of dt, undefined when dt is.
func (dt DateTime) Date() Date {
	return dt.date
}

// Time returns the time of day of dt, undefined when dt is.
func (dt DateTime) Time() Time {
	return dt.time
}

// Equal reports whether dt and other agree on every field down to the nanosecond.
// Two undefined date-times are equal.
func (dt DateTime) Equal(other DateTime) bool {
	return dt == other
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or after
// other. Undefined date-times order before every defined date-time.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Before reports whether dt orders before other.
func (dt DateTime) Before(other DateTime) bool {
	return dt.Compare(other) < 0
}

// After reports whether dt orders after other.
func (dt DateTime) After(other DateTime) bool {
	return dt.Compare(other) > 0
}

// Add returns dt shifted by d. The result is undefined when either operand is
// undefined or the shifted date leaves [MinYear, MaxYear].
func (dt DateTime) Add(d Duration) DateTime {
	if !dt.IsDefined() || !d.IsDefined() {
		return DateTime{}
	}

	days := floorDiv(d.nanoseconds, nanosecondsPerDay)
	ns := d.nanoseconds - days*nanosecondsPerDay + dt.time.nanoseconds
	if ns >= nanosecondsPerDay {
		days++
		ns -= nanosecondsPerDay
	}

	jdn := dt.date.julianDayNumber() + days
	if jdn < minJulianDayNumber || jdn > maxJulianDayNumber {
		return DateTime{}
	}
	return DateTime{date: dateFromJulianDayNumber(jdn), time: timeOfDay(ns)}
}

// Sub returns the duration from other to dt. See Between.
func (dt DateTime) Sub(other DateTime) Duration {
	return Between(other, dt)
}

// FromStdTime converts t, taken in UTC, to a DateTime.
func FromStdTime(t gotime.Time) (DateTime, error) {
	t = t.UTC()
	ns := t.Nanosecond()
	return NewDateTime(
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		ns/1_000_000, ns/1_000%1_000, ns%1_000,
	)
}

// StdTime returns dt as a standard library time in UTC.
func (dt DateTime) StdTime() (gotime.Time, error) {
	if !dt.IsDefined() {
		return gotime.Time{}, undefinedError("convert date-time to time.Time")
	}
	d, t := dt.date, dt.time
	return gotime.Date(
		d.year, gotime.Month(d.month), d.day,
		t.component(nanosecondsPerDay, nanosecondsPerHour),
		t.component(nanosecondsPerHour, nanosecondsPerMinute),
		t.component(nanosecondsPerMinute, nanosecondsPerSecond),
		t.component(nanosecondsPerSecond, 1),
		gotime.UTC,
	), nil
}

// MustDateTime panics if err is non-nil and returns dt otherwise.
// It is intended for initializing package-level values from literals.
func MustDateTime(dt DateTime, err error) DateTime {
	if err != nil {
		panic(errors.Wrap(err, errors.CodeInternal, "time: MustDateTime"))
	}
	return dt
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
