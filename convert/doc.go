// Package convert turns date-time inputs into every representation the time
// package knows about.
//
// A Converter accepts text in any supported format (or a fixed one), plus Julian
// Date and Modified Julian Date values written as "jd:<days>" and "mjd:<days>".
// Each input yields a Result carrying the Standard, ISO8601 and STK renderings and
// both day counts. Results can be written as plain text, JSON or YAML.
//
// # Basic Usage
//
//	c, err := convert.New(
//	    convert.WithLogger(slog.Default()),
//	    convert.WithOutputFormat(time.FormatSTK),
//	)
//	if err != nil {
//	    return err
//	}
//
//	results, err := c.ConvertAll(ctx, []string{"2018-01-01T00:00:00", "mjd:58119.5"})
//	if err != nil {
//	    return err
//	}
//
//	return c.Encode(os.Stdout, results, convert.EncodingText)
//
// A Converter is immutable after construction and safe for concurrent use.
package convert
