package convert

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tapiab/open-space-toolkit-physics/errors"
	"github.com/tapiab/open-space-toolkit-physics/time"
)

// Prefixes that mark an input as a day count rather than calendar text.
const (
	JulianDatePrefix         = "jd:"
	ModifiedJulianDatePrefix = "mjd:"
)

// Result holds every representation of one converted input.
type Result struct {
	Input              string        `json:"input" yaml:"input"`
	DateTime           time.DateTime `json:"-" yaml:"-"`
	Standard           string        `json:"standard" yaml:"standard"`
	ISO8601            string        `json:"iso8601" yaml:"iso8601"`
	STK                string        `json:"stk" yaml:"stk"`
	JulianDate         float64       `json:"julianDate" yaml:"julianDate"`
	ModifiedJulianDate float64       `json:"modifiedJulianDate" yaml:"modifiedJulianDate"`
}

// Formatted returns the rendering of r in f.
func (r *Result) Formatted(f time.Format) string {
	switch f {
	case time.FormatISO8601:
		return r.ISO8601
	case time.FormatSTK:
		return r.STK
	default:
		return r.Standard
	}
}

// Converter converts date-time inputs into Results.
//
// Thread Safety: Converter holds no mutable state after New returns and is safe for
// concurrent use. The logger must be safe for concurrent use (slog.Logger is).
type Converter struct {
	logger       *slog.Logger
	inputFormat  time.Format
	outputFormat time.Format
}

// New creates a Converter with the provided options.
// It fails with errors.CodeInvalidArgument when a configured format is unknown.
func New(opts ...Option) (*Converter, error) {
	options := defaultOptions()
	applyOptions(options, opts)

	if options.inputFormat != "" && !options.inputFormat.IsValid() {
		return nil, errors.Newf(errors.CodeInvalidArgument, "unknown input format %q", options.inputFormat.String())
	}
	if !options.outputFormat.IsValid() {
		return nil, errors.Newf(errors.CodeInvalidArgument, "unknown output format %q", options.outputFormat.String())
	}

	return &Converter{
		logger:       options.logger,
		inputFormat:  options.inputFormat,
		outputFormat: options.outputFormat,
	}, nil
}

// OutputFormat returns the format written by EncodingText.
func (c *Converter) OutputFormat() time.Format {
	return c.outputFormat
}

// Convert converts a single input.
// Failures are returned with errors.CodeInvalidInput and the offending input in the
// error context; the underlying parse or range error stays in the chain.
func (c *Converter) Convert(ctx context.Context, input string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeTimeout, "conversion cancelled")
	}

	dt, err := c.dateTime(input)
	if err != nil {
		if c.logger != nil {
			c.logger.DebugContext(ctx, "conversion failed",
				"input", input,
				"error", err,
			)
		}
		return nil, errors.WrapWithContext(
			err,
			errors.CodeInvalidInput,
			"cannot convert input",
			map[string]interface{}{"input": input},
		)
	}

	result, err := newResult(input, dt)
	if err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.CodeInternal,
			"cannot render converted date-time",
			map[string]interface{}{"input": input},
		)
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "converted input",
			"input", input,
			"datetime", result.Standard,
			"julian_date", result.JulianDate,
		)
	}

	return result, nil
}

// ConvertAll converts inputs in order, stopping at the first failure or when ctx is
// done. The results converted before the failure are returned with the error.
func (c *Converter) ConvertAll(ctx context.Context, inputs []string) ([]*Result, error) {
	results := make([]*Result, 0, len(inputs))
	for i, input := range inputs {
		result, err := c.Convert(ctx, input)
		if err != nil {
			return results, errors.WrapWithContext(
				err,
				errors.GetCode(err),
				"conversion stopped",
				map[string]interface{}{"index": i},
			)
		}
		results = append(results, result)
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "converted inputs", "count", len(results))
	}

	return results, nil
}

func (c *Converter) dateTime(input string) (time.DateTime, error) {
	switch {
	case strings.HasPrefix(input, ModifiedJulianDatePrefix):
		mjd, err := parseDays(strings.TrimPrefix(input, ModifiedJulianDatePrefix))
		if err != nil {
			return time.DateTime{}, err
		}
		return time.FromModifiedJulianDate(mjd)

	case strings.HasPrefix(input, JulianDatePrefix):
		jd, err := parseDays(strings.TrimPrefix(input, JulianDatePrefix))
		if err != nil {
			return time.DateTime{}, err
		}
		return time.FromJulianDate(jd)

	case c.inputFormat != "":
		return time.ParseFormat(input, c.inputFormat)

	default:
		return time.Parse(input)
	}
}

func parseDays(s string) (float64, error) {
	days, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeParseFailed, "cannot parse %q as a day count", s)
	}
	return days, nil
}

func newResult(input string, dt time.DateTime) (*Result, error) {
	r := &Result{Input: input, DateTime: dt}

	var err error
	if r.Standard, err = dt.Format(time.FormatStandard); err != nil {
		return nil, err
	}
	if r.ISO8601, err = dt.Format(time.FormatISO8601); err != nil {
		return nil, err
	}
	if r.STK, err = dt.Format(time.FormatSTK); err != nil {
		return nil, err
	}
	if r.JulianDate, err = dt.JulianDate(); err != nil {
		return nil, err
	}
	if r.ModifiedJulianDate, err = dt.ModifiedJulianDate(); err != nil {
		return nil, err
	}

	return r, nil
}
