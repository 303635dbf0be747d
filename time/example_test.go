package time_test

import (
	"fmt"

	"github.com/tapiab/open-space-toolkit-physics/time"
)

// Example_formats renders one instant in every supported format.
func Example_formats() {
	dt := time.MustDateTime(time.NewDateTime(2018, 1, 1, 0, 0, 0))

	for _, f := range time.Formats {
		s, _ := dt.Format(f)
		fmt.Printf("%-8s %s\n", f, s)
	}

	// Output:
	// Standard 2018-01-01 00:00:00
	// ISO8601  2018-01-01T00:00:00
	// STK      1 Jan 2018 00:00:00
}

func ExampleParse() {
	dt, err := time.Parse("4 Jul 2018 09:30:00.250")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dt)

	_, err = time.Parse("yesterday")
	fmt.Println(err)

	// Output:
	// 2018-07-04 09:30:00.250
	// PARSE_FAILED: cannot parse "yesterday" as a date-time in any supported format [input=yesterday]
}

func ExampleFromModifiedJulianDate() {
	dt, err := time.FromModifiedJulianDate(58119.0)
	if err != nil {
		fmt.Println(err)
		return
	}

	jd, _ := dt.JulianDate()
	fmt.Println(dt)
	fmt.Printf("%.1f\n", jd)

	// Output:
	// 2018-01-01 00:00:00
	// 2458119.5
}

func ExampleBetween() {
	d := time.Between(time.GPSEpoch(), time.J2000())
	days, _ := d.InDays()

	fmt.Println(d)
	fmt.Println(days)

	// Output:
	// 7300d 12:00:00
	// 7300.5
}

func ExampleDateTime_Add() {
	dt := time.J2000().Add(time.Hours(-12))
	fmt.Println(dt.Equal(time.MustDateTime(time.NewDateTime(2000, 1, 1, 0, 0, 0))))

	// Leaving the supported calendar range gives an undefined value.
	fmt.Println(time.MustDateTime(time.NewDateTime(9999, 12, 31, 23, 59, 59)).Add(time.Seconds(1)))

	// Output:
	// true
	// Undefined
}
