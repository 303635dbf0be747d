package time

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

const (
	// MinYear is the earliest supported calendar year.
	MinYear = 1400

	// MaxYear is the latest supported calendar year.
	MaxYear = 9999
)

// undefinedString is what String returns for undefined values.
const undefinedString = "Undefined"

// Date is a Gregorian calendar date. The zero value is undefined.
type Date struct {
	year  int
	month int // 0 only when undefined
	day   int
}

// NewDate returns the date year-month-day.
// It fails with errors.CodeInvalidArgument when the year is outside
// [MinYear, MaxYear] or the day does not exist in that month.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, invalidArgument("year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, invalidArgument("month %d out of range [1, 12]", month)
	}
	if days := DaysInMonth(year, month); day < 1 || day > days {
		return Date{}, invalidArgument("day %d out of range [1, %d] for %04d-%02d", day, days, year, month)
	}
	return Date{year: year, month: month, day: day}, nil
}

// UndefinedDate returns the undefined date.
func UndefinedDate() Date {
	return Date{}
}

// IsDefined reports whether d holds a calendar date.
func (d Date) IsDefined() bool {
	return d.month != 0
}

// Year returns the year, or 0 when d is undefined.
func (d Date) Year() int { return d.year }

// Month returns the month in [1, 12], or 0 when d is undefined.
func (d Date) Month() int { return d.month }

// Day returns the day of the month, or 0 when d is undefined.
func (d Date) Day() int { return d.day }

// Equal reports whether d and other are the same date.
// Two undefined dates are equal.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
// Undefined dates order before every defined date.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	default:
		return cmp.Compare(d.day, other.day)
	}
}

// String returns the date as YYYY-MM-DD, or "Undefined".
func (d Date) String() string {
	if !d.IsDefined() {
		return undefinedString
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

var dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDate parses a date written as YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, errors.Newf(errors.CodeParseFailed, "cannot parse %q as a date (expected YYYY-MM-DD)", s)
	}
	d, err := NewDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	if err != nil {
		return Date{}, errors.Wrapf(err, errors.CodeParseFailed, "cannot parse %q as a date", s)
	}
	return d, nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, or 0 for an invalid month.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// julianDayNumber returns the Julian Day Number of the noon that falls on d.
func (d Date) julianDayNumber() int64 {
	a := int64((14 - d.month) / 12)
	y := int64(d.year) + 4800 - a
	m := int64(d.month) + 12*a - 3
	return int64(d.day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// dateFromJulianDayNumber is the inverse of julianDayNumber. It does not check
// the year range.
func dateFromJulianDayNumber(jdn int64) Date {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	return Date{
		year:  int(100*b + d - 4800 + m/10),
		month: int(m + 3 - 12*(m/10)),
		day:   int(e - (153*m+2)/5 + 1),
	}
}

var (
	minJulianDayNumber = Date{year: MinYear, month: 1, day: 1}.julianDayNumber()
	maxJulianDayNumber = Date{year: MaxYear, month: 12, day: 31}.julianDayNumber()
)

func invalidArgument(format string, args ...interface{}) error {
	return errors.Newf(errors.CodeInvalidArgument, format, args...)
}

func undefinedError(operation string) error {
	return errors.Newf(errors.CodeUndefined, "cannot %s: value is undefined", operation)
}

// atoi converts a string of ASCII digits already validated by a regexp.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("time: digits %q passed validation but failed to convert: %v", s, err))
	}
	return n
}
