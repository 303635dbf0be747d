package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// Encoding selects how Encode writes results.
type Encoding string

const (
	// EncodingText writes one line per result in the converter's output format.
	EncodingText Encoding = "text"

	// EncodingJSON writes an indented JSON array.
	EncodingJSON Encoding = "json"

	// EncodingYAML writes a YAML sequence.
	EncodingYAML Encoding = "yaml"
)

// Encodings lists every supported encoding.
var Encodings = []Encoding{EncodingText, EncodingJSON, EncodingYAML}

// String returns the string representation of the Encoding.
func (e Encoding) String() string {
	return string(e)
}

// ParseEncoding returns the Encoding named name, ignoring case.
func ParseEncoding(name string) (Encoding, error) {
	for _, e := range Encodings {
		if strings.EqualFold(name, string(e)) {
			return e, nil
		}
	}
	return "", errors.Newf(errors.CodeInvalidArgument, "unknown encoding %q (want one of text, json, yaml)", name)
}

// Encode writes results to w using enc.
func (c *Converter) Encode(w io.Writer, results []*Result, enc Encoding) error {
	var err error
	switch enc {
	case EncodingText:
		err = c.encodeText(w, results)
	case EncodingJSON:
		err = encodeJSON(w, results)
	case EncodingYAML:
		err = encodeYAML(w, results)
	default:
		return errors.Newf(errors.CodeInvalidArgument, "unknown encoding %q", string(enc))
	}

	if err != nil {
		return errors.WrapWithContext(
			err,
			errors.CodeInternal,
			"failed to encode results",
			map[string]interface{}{"encoding": enc.String()},
		)
	}
	return nil
}

func (c *Converter) encodeText(w io.Writer, results []*Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Formatted(c.outputFormat)); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(w io.Writer, results []*Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func encodeYAML(w io.Writer, results []*Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
