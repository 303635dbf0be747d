package time

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// Format identifies a textual representation of a DateTime.
type Format string

const (
	// FormatStandard is YYYY-MM-DD HH:MM:SS[.fffffffff].
	FormatStandard Format = "Standard"

	// FormatISO8601 is YYYY-MM-DDTHH:MM:SS[.fffffffff].
	FormatISO8601 Format = "ISO8601"

	// FormatSTK is D Mon YYYY HH:MM:SS[.fffffffff], as used by AGI STK.
	FormatSTK Format = "STK"
)

// Formats lists every supported format in auto-detection order.
var Formats = []Format{FormatStandard, FormatISO8601, FormatSTK}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	_, ok := matchers[f]
	return ok
}

// ParseFormatName returns the Format whose name matches name, ignoring case.
func ParseFormatName(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", errors.Newf(errors.CodeInvalidArgument, "unknown format %q (want one of Standard, ISO8601, STK)", name)
}

var monthAbbreviations = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func monthFromAbbreviation(s string) (int, bool) {
	for i, abbr := range monthAbbreviations {
		if strings.EqualFold(s, abbr) {
			return i + 1, true
		}
	}
	return 0, false
}

// matcher recognizes one textual format. re decides whether the input has the
// format's shape; build turns its captures into a DateTime and may still reject an
// impossible date or time.
type matcher struct {
	re    *regexp.Regexp
	build func(m []string) (DateTime, error)
}

func isoLike(separator string) matcher {
	return matcher{
		re: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})` + separator + clockPattern + `$`),
		build: func(m []string) (DateTime, error) {
			return buildDateTime(atoi(m[1]), atoi(m[2]), atoi(m[3]), m[4:8])
		},
	}
}

var matchers = map[Format]matcher{
	FormatStandard: isoLike(" "),
	FormatISO8601:  isoLike("T"),
	FormatSTK: {
		re: regexp.MustCompile(`^(\d{1,2}) ([A-Za-z]{3}) (\d{4}) ` + clockPattern + `$`),
		build: func(m []string) (DateTime, error) {
			month, ok := monthFromAbbreviation(m[2])
			if !ok {
				return DateTime{}, invalidArgument("unknown month abbreviation %q", m[2])
			}
			return buildDateTime(atoi(m[3]), month, atoi(m[1]), m[4:8])
		},
	},
}

func buildDateTime(year, month, day int, clock []string) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := newTimeFromFields(clock[0], clock[1], clock[2], clock[3])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: t}, nil
}

// Parse parses s, trying FormatStandard, FormatISO8601 and FormatSTK in that order.
// The first format whose shape matches decides the result. It fails with
// errors.CodeParseFailed when no format matches or the matched text encodes an
// impossible date or time.
func Parse(s string) (DateTime, error) {
	for _, f := range Formats {
		if dt, ok, err := parseAs(s, f); ok {
			return dt, err
		}
	}
	return DateTime{}, errors.NewWithContext(
		errors.CodeParseFailed,
		fmt.Sprintf("cannot parse %q as a date-time in any supported format", s),
		map[string]interface{}{"input": s},
	)
}

// ParseFormat parses s in the given format.
func ParseFormat(s string, f Format) (DateTime, error) {
	if !f.IsValid() {
		return DateTime{}, errors.Newf(errors.CodeInvalidArgument, "unknown format %q", string(f))
	}
	dt, ok, err := parseAs(s, f)
	if !ok {
		return DateTime{}, errors.NewWithContext(
			errors.CodeParseFailed,
			fmt.Sprintf("cannot parse %q as a %s date-time", s, f),
			map[string]interface{}{"input": s, "format": f.String()},
		)
	}
	return dt, err
}

func parseAs(s string, f Format) (DateTime, bool, error) {
	mt := matchers[f]
	m := mt.re.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, false, nil
	}
	dt, err := mt.build(m)
	if err != nil {
		return DateTime{}, true, errors.WrapWithContext(
			err,
			errors.CodeParseFailed,
			fmt.Sprintf("cannot parse %q as a %s date-time", s, f),
			map[string]interface{}{"input": s, "format": f.String()},
		)
	}
	return dt, true, nil
}

// Format renders dt in the given format. It fails with errors.CodeUndefined when dt
// is undefined and errors.CodeInvalidArgument for an unknown format.
func (dt DateTime) Format(f Format) (string, error) {
	if !f.IsValid() {
		return "", errors.Newf(errors.CodeInvalidArgument, "unknown format %q", string(f))
	}
	if !dt.IsDefined() {
		return "", undefinedError("format date-time")
	}

	d, t := dt.date, dt.time
	switch f {
	case FormatISO8601:
		return d.String() + "T" + t.String(), nil
	case FormatSTK:
		return fmt.Sprintf("%d %s %04d %s", d.day, monthAbbreviations[d.month-1], d.year, t.String()), nil
	default:
		return d.String() + " " + t.String(), nil
	}
}

// String renders dt in FormatStandard, or "Undefined".
func (dt DateTime) String() string {
	if !dt.IsDefined() {
		return undefinedString
	}
	s, _ := dt.Format(FormatStandard)
	return s
}
