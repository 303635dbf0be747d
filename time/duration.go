package time

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// Unit is a fixed length of time, counted in nanoseconds, for Duration.In.
type Unit int64

// Units of time. Days are 86400 seconds long.
const (
	Nanosecond  Unit = 1
	Microsecond Unit = Unit(nanosecondsPerMicrosecond)
	Millisecond Unit = Unit(nanosecondsPerMillisecond)
	Second      Unit = Unit(nanosecondsPerSecond)
	Minute      Unit = Unit(nanosecondsPerMinute)
	Hour        Unit = Unit(nanosecondsPerHour)
	Day         Unit = Unit(nanosecondsPerDay)
	Week        Unit = Unit(nanosecondsPerWeek)
)

// Duration is a signed span of time counted in nanoseconds, covering about
// ±292 years. The zero value is undefined; use ZeroDuration for a zero span.
type Duration struct {
	nanoseconds int64
	defined     bool
}

// NewDuration returns a duration of n nanoseconds.
func NewDuration(n int64) Duration {
	return Duration{nanoseconds: n, defined: true}
}

// UndefinedDuration returns the undefined duration.
func UndefinedDuration() Duration {
	return Duration{}
}

// ZeroDuration returns the zero-length duration.
func ZeroDuration() Duration {
	return NewDuration(0)
}

// Nanoseconds returns a duration of n nanoseconds, rounded to the nearest nanosecond.
// The unit factories return an undefined duration when the value is not finite
// or does not fit in the representable range.
func Nanoseconds(n float64) Duration { return fromUnits(n, 1) }

// Microseconds returns a duration of n microseconds.
func Microseconds(n float64) Duration { return fromUnits(n, nanosecondsPerMicrosecond) }

// Milliseconds returns a duration of n milliseconds.
func Milliseconds(n float64) Duration { return fromUnits(n, nanosecondsPerMillisecond) }

// Seconds returns a duration of n seconds.
func Seconds(n float64) Duration { return fromUnits(n, nanosecondsPerSecond) }

// Minutes returns a duration of n minutes.
func Minutes(n float64) Duration { return fromUnits(n, nanosecondsPerMinute) }

// Hours returns a duration of n hours.
func Hours(n float64) Duration { return fromUnits(n, nanosecondsPerHour) }

// Days returns a duration of n days of 86400 seconds.
func Days(n float64) Duration { return fromUnits(n, nanosecondsPerDay) }

// Weeks returns a duration of n weeks.
func Weeks(n float64) Duration { return fromUnits(n, nanosecondsPerWeek) }

func fromUnits(n float64, unit int64) Duration {
	return fromFloat(n * float64(unit))
}

// fromFloat rounds ns to an integer count, or returns undefined when it cannot.
func fromFloat(ns float64) Duration {
	if math.IsNaN(ns) || math.IsInf(ns, 0) {
		return Duration{}
	}
	r := math.Round(ns)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if r >= math.MaxInt64 || r < math.MinInt64 {
		return Duration{}
	}
	return NewDuration(int64(r))
}

// Between returns the duration from start to end, positive when end is later.
// It is undefined when either is undefined or the span overflows a Duration.
func Between(start, end DateTime) Duration {
	if !start.IsDefined() || !end.IsDefined() {
		return Duration{}
	}

	const maxDays = math.MaxInt64 / nanosecondsPerDay

	days := end.date.julianDayNumber() - start.date.julianDayNumber()
	if days > maxDays || days < -maxDays {
		return Duration{}
	}
	total := days * nanosecondsPerDay
	rest := end.time.nanoseconds - start.time.nanoseconds
	if (rest > 0 && total > math.MaxInt64-rest) || (rest < 0 && total < math.MinInt64-rest) {
		return Duration{}
	}
	return NewDuration(total + rest)
}

// IsDefined reports whether d holds a span of time.
func (d Duration) IsDefined() bool {
	return d.defined
}

// IsZero reports whether d is defined and zero.
func (d Duration) IsZero() bool {
	return d.defined && d.nanoseconds == 0
}

// IsPositive reports whether d is defined and not negative.
func (d Duration) IsPositive() bool {
	return d.defined && d.nanoseconds >= 0
}

// IsStrictlyPositive reports whether d is defined and greater than zero.
func (d Duration) IsStrictlyPositive() bool {
	return d.defined && d.nanoseconds > 0
}

// Equal reports whether d and other are the same span. Two undefined durations are equal.
func (d Duration) Equal(other Duration) bool {
	return d == other
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, equal to or
// longer than other. Undefined durations order before every defined duration.
func (d Duration) Compare(other Duration) int {
	if d.defined != other.defined {
		if d.defined {
			return 1
		}
		return -1
	}
	return cmp.Compare(d.nanoseconds, other.nanoseconds)
}

// Add returns d + other. Arithmetic on an undefined operand, or arithmetic that
// overflows, yields an undefined duration.
func (d Duration) Add(other Duration) Duration {
	if !d.defined || !other.defined {
		return Duration{}
	}
	sum := d.nanoseconds + other.nanoseconds
	if (other.nanoseconds > 0 && sum < d.nanoseconds) || (other.nanoseconds < 0 && sum > d.nanoseconds) {
		return Duration{}
	}
	return NewDuration(sum)
}

// Sub returns d - other.
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

// Neg returns -d.
func (d Duration) Neg() Duration {
	if !d.defined || d.nanoseconds == math.MinInt64 {
		return Duration{}
	}
	return NewDuration(-d.nanoseconds)
}

// Abs returns |d|.
func (d Duration) Abs() Duration {
	if d.defined && d.nanoseconds < 0 {
		return d.Neg()
	}
	return d
}

// Mul returns d scaled by factor, rounded to the nearest nanosecond.
func (d Duration) Mul(factor float64) Duration {
	if !d.defined {
		return Duration{}
	}
	return fromFloat(float64(d.nanoseconds) * factor)
}

// Div returns d divided by divisor, rounded to the nearest nanosecond.
// Division by zero yields an undefined duration.
func (d Duration) Div(divisor float64) Duration {
	if !d.defined || divisor == 0 {
		return Duration{}
	}
	return fromFloat(float64(d.nanoseconds) / divisor)
}

// InNanoseconds returns d as an integer count of nanoseconds.
func (d Duration) InNanoseconds() (int64, error) {
	if !d.defined {
		return 0, undefinedError("convert duration")
	}
	return d.nanoseconds, nil
}

// InMicroseconds returns d in microseconds.
func (d Duration) InMicroseconds() (float64, error) { return d.In(Microsecond) }

// InMilliseconds returns d in milliseconds.
func (d Duration) InMilliseconds() (float64, error) { return d.In(Millisecond) }

// InSeconds returns d in seconds.
func (d Duration) InSeconds() (float64, error) { return d.In(Second) }

// InMinutes returns d in minutes.
func (d Duration) InMinutes() (float64, error) { return d.In(Minute) }

// InHours returns d in hours.
func (d Duration) InHours() (float64, error) { return d.In(Hour) }

// InDays returns d in days of 86400 seconds.
func (d Duration) InDays() (float64, error) { return d.In(Day) }

// InWeeks returns d in weeks.
func (d Duration) InWeeks() (float64, error) { return d.In(Week) }

// In returns d expressed in unit. It fails with errors.CodeInvalidArgument
// for a unit that is not positive.
func (d Duration) In(unit Unit) (float64, error) {
	if !d.defined {
		return 0, undefinedError("convert duration")
	}
	if unit <= 0 {
		return 0, errors.Newf(errors.CodeInvalidArgument, "invalid duration unit %d", int64(unit))
	}
	// Split before converting so whole units stay exact beyond 2^53 nanoseconds.
	u := int64(unit)
	whole := d.nanoseconds / u
	rest := d.nanoseconds % u
	return float64(whole) + float64(rest)/float64(u), nil
}

// Component getters read |d|, so -1.5s and 1.5s have the same fields.

// Nanosecond returns the nanoseconds of |d| within its microsecond, in [0, 999].
func (d Duration) Nanosecond() (int, error) { return d.component("nanosecond", 1, 1000) }

// Microsecond returns the microseconds of |d| within its millisecond, in [0, 999].
func (d Duration) Microsecond() (int, error) { return d.component("microsecond", Microsecond, 1000) }

// Millisecond returns the milliseconds of |d| within its second, in [0, 999].
func (d Duration) Millisecond() (int, error) { return d.component("millisecond", Millisecond, 1000) }

// Second returns the seconds of |d| within its minute, in [0, 59].
func (d Duration) Second() (int, error) { return d.component("second", Second, 60) }

// Minute returns the minutes of |d| within its hour, in [0, 59].
func (d Duration) Minute() (int, error) { return d.component("minute", Minute, 60) }

// Hour returns the hours of |d| within its day, in [0, 23].
func (d Duration) Hour() (int, error) { return d.component("hour", Hour, 24) }

// WholeDays returns the number of complete days in |d|.
func (d Duration) WholeDays() (int64, error) { return d.whole("days", Day) }

// WholeWeeks returns the number of complete weeks in |d|.
func (d Duration) WholeWeeks() (int64, error) { return d.whole("weeks", Week) }

func (d Duration) component(name string, unit Unit, span uint64) (int, error) {
	if !d.defined {
		return 0, undefinedError("read " + name + " of duration")
	}
	return int(d.magnitude() / uint64(unit) % span), nil
}

func (d Duration) whole(name string, unit Unit) (int64, error) {
	if !d.defined {
		return 0, undefinedError("count " + name + " of duration")
	}
	return int64(d.magnitude() / uint64(unit)), nil
}

// magnitude returns |d| in nanoseconds. It is computed in uint64 so MinInt64 has one.
func (d Duration) magnitude() uint64 {
	abs := uint64(d.nanoseconds)
	if d.nanoseconds < 0 {
		abs = -abs
	}
	return abs
}

// String renders d as [-][Nd ]HH:MM:SS[.fff], using the same fraction rules as
// Time, or "Undefined".
func (d Duration) String() string {
	if !d.defined {
		return undefinedString
	}

	var b strings.Builder
	if d.nanoseconds < 0 {
		b.WriteByte('-')
	}

	abs := d.magnitude()
	days := abs / uint64(nanosecondsPerDay)
	rest := int64(abs % uint64(nanosecondsPerDay))

	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	b.WriteString(timeOfDay(rest).String())
	return b.String()
}
