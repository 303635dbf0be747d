package time

import (
	"math"
)

// ModifiedJulianDateOffset is the Julian Date of the Modified Julian Date epoch:
// MJD = JD - ModifiedJulianDateOffset.
const ModifiedJulianDateOffset = 2400000.5

// JulianDateTolerance is the documented round-trip tolerance, in days, of
// FromJulianDate followed by JulianDate. A float64 near 2.4e6 resolves about
// 4.7e-10 days (40 microseconds), so the round trip is exact to that grain.
const JulianDateTolerance = 1e-9

// FromJulianDate returns the date-time at Julian Date jd.
// The day count is split into a whole Julian Day Number and a fraction that is
// rounded to the nearest nanosecond. NaN, infinities and dates outside
// [MinYear, MaxYear] fail with errors.CodeInvalidArgument.
func FromJulianDate(jd float64) (DateTime, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return DateTime{}, invalidArgument("julian date %v is not finite", jd)
	}

	// Julian days start at noon; shifting by half a day puts the day boundary at midnight.
	shifted := jd + 0.5
	whole := math.Floor(shifted)
	if whole < float64(minJulianDayNumber) || whole > float64(maxJulianDayNumber) {
		return DateTime{}, invalidArgument(
			"julian date %v out of range [%d-01-01, %d-12-31]", jd, MinYear, MaxYear)
	}

	jdn := int64(whole)
	ns := int64(math.Round((shifted - whole) * float64(nanosecondsPerDay)))
	if ns >= nanosecondsPerDay {
		jdn++
		ns -= nanosecondsPerDay
	}
	if jdn > maxJulianDayNumber {
		return DateTime{}, invalidArgument(
			"julian date %v out of range [%d-01-01, %d-12-31]", jd, MinYear, MaxYear)
	}

	return DateTime{date: dateFromJulianDayNumber(jdn), time: timeOfDay(ns)}, nil
}

// FromModifiedJulianDate returns the date-time at Modified Julian Date mjd.
// It is FromJulianDate(mjd + ModifiedJulianDateOffset).
func FromModifiedJulianDate(mjd float64) (DateTime, error) {
	return FromJulianDate(mjd + ModifiedJulianDateOffset)
}

// JulianDate returns the Julian Date of dt, a continuous count of days since noon
// on 1 January 4713 BC (proleptic Julian calendar).
func (dt DateTime) JulianDate() (float64, error) {
	if !dt.IsDefined() {
		return 0, undefinedError("compute julian date")
	}
	jdn := dt.date.julianDayNumber()
	offset := float64(dt.time.nanoseconds-nanosecondsPerDay/2) / float64(nanosecondsPerDay)
	return float64(jdn) + offset, nil
}

// ModifiedJulianDate returns JulianDate() - ModifiedJulianDateOffset.
func (dt DateTime) ModifiedJulianDate() (float64, error) {
	jd, err := dt.JulianDate()
	if err != nil {
		return 0, undefinedError("compute modified julian date")
	}
	return jd - ModifiedJulianDateOffset, nil
}
