package time

// J2000 returns the J2000.0 epoch, 2000-01-01 12:00:00.
func J2000() DateTime {
	return DateTime{date: Date{year: 2000, month: 1, day: 1}, time: Noon()}
}

// GPSEpoch returns the start of GPS time, 1980-01-06 00:00:00.
func GPSEpoch() DateTime {
	return DateTime{date: Date{year: 1980, month: 1, day: 6}, time: Midnight()}
}

// UnixEpoch returns the start of Unix time, 1970-01-01 00:00:00.
func UnixEpoch() DateTime {
	return DateTime{date: Date{year: 1970, month: 1, day: 1}, time: Midnight()}
}

// ModifiedJulianDateEpoch returns the origin of Modified Julian Dates, 1858-11-17 00:00:00.
func ModifiedJulianDateEpoch() DateTime {
	return DateTime{date: Date{year: 1858, month: 11, day: 17}, time: Midnight()}
}
