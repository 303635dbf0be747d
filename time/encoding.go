package time

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

var (
	_ json.Marshaler   = DateTime{}
	_ json.Unmarshaler = (*DateTime)(nil)
	_ yaml.Marshaler   = DateTime{}
	_ yaml.Unmarshaler = (*DateTime)(nil)
)

// MarshalText renders dt in FormatISO8601. Undefined values cannot be marshaled as text.
func (dt DateTime) MarshalText() ([]byte, error) {
	s, err := dt.Format(FormatISO8601)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses text in any supported format. See Parse.
func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalJSON renders dt as an ISO 8601 JSON string, or null when undefined.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	if !dt.IsDefined() {
		return []byte("null"), nil
	}
	text, err := dt.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a JSON string in any supported format, or null for undefined.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*dt = DateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, errors.CodeParseFailed, "date-time must be a JSON string or null")
	}
	return dt.UnmarshalText([]byte(s))
}

// MarshalYAML renders dt as an ISO 8601 scalar, or null when undefined.
func (dt DateTime) MarshalYAML() (interface{}, error) {
	if !dt.IsDefined() {
		return nil, nil
	}
	return dt.Format(FormatISO8601)
}

// UnmarshalYAML accepts a scalar in any supported format, or null for undefined.
// YAML resolves ISO 8601 scalars to !!timestamp; the raw text is parsed either way.
func (dt *DateTime) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf(errors.CodeParseFailed, "date-time must be a YAML scalar (line %d)", value.Line)
	}
	if value.ShortTag() == "!!null" {
		*dt = DateTime{}
		return nil
	}
	return dt.UnmarshalText([]byte(value.Value))
}
