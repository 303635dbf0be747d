// Package time provides calendar value types for astrodynamics work: Date, Time,
// DateTime and Duration.
//
// DateTime is an immutable pairing of a Gregorian calendar Date (years 1400 to 9999)
// and a nanosecond-resolution time of day. It converts to and from Julian Date and
// Modified Julian Date, exposes the usual reference epochs, and reads and writes three
// textual formats:
//
//	Standard  2018-01-01 00:00:00[.fffffffff]
//	ISO8601   2018-01-01T00:00:00[.fffffffff]
//	STK       1 Jan 2018 00:00:00[.fffffffff]
//
// Time zones and leap seconds are not modeled: every value is a plain calendar
// reading with 86400 seconds per day.
//
// # Undefined values
//
// The zero value of every type in this package is its undefined state, so
//
//	var dt time.DateTime
//	dt.IsDefined() // false
//
// Undefined values propagate: operations returning one of this package's types
// (DateTime.Date, DateTime.Add, Between, ...) return an undefined result. Operations
// returning a Go primitive (DateTime.JulianDate, DateTime.Format, Duration.InSeconds,
// ...) return an error with code errors.CodeUndefined instead.
//
// # Basic Usage
//
//	dt, err := time.NewDateTime(2018, 1, 1, 0, 0, 0)
//	if err != nil {
//	    return err
//	}
//
//	jd, _ := dt.JulianDate()            // 2458119.5
//	stk, _ := dt.Format(time.FormatSTK) // "1 Jan 2018 00:00:00"
//
//	parsed, err := time.Parse("2018-01-01T00:00:00")
//	fmt.Println(parsed.Equal(dt)) // true
//
// All types are safe for concurrent use.
package time
