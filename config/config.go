// Package config loads ostk-time configuration files written in CUE.
//
// A configuration file is unified with the embedded #Config schema, which fills
// in defaults and rejects unknown fields, then checked for a compatible schema
// version.
//
// # Basic Usage
//
//	fs := osfs.New(".")
//
//	cfg, err := config.Load(ctx, fs, "ostk-time.cue")
//	if err != nil {
//	    return err
//	}
//
//	opts, err := cfg.ConverterOptions()
//	if err != nil {
//	    return err
//	}
//	c, err := convert.New(opts...)
//
// A minimal file only declares its version:
//
//	version: "0.1.0"
//	outputFormat: "STK"
package config

import (
	"strings"

	"github.com/tapiab/open-space-toolkit-physics/convert"
	"github.com/tapiab/open-space-toolkit-physics/errors"
	"github.com/tapiab/open-space-toolkit-physics/time"
)

// AutoFormat is the InputFormat value that enables format auto-detection.
const AutoFormat = "auto"

// Config is a decoded configuration file.
type Config struct {
	// Version is the schema version the file was written against.
	Version string `json:"version"`

	// InputFormat is AutoFormat or the name of a time.Format.
	InputFormat string `json:"inputFormat"`

	// OutputFormat is the name of the time.Format written by the text encoding.
	OutputFormat string `json:"outputFormat"`

	// Encoding is the name of a convert.Encoding.
	Encoding string `json:"encoding"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:      SchemaVersion,
		InputFormat:  AutoFormat,
		OutputFormat: time.FormatStandard.String(),
		Encoding:     convert.EncodingText.String(),
	}
}

// ConverterOptions returns the convert options described by c.
func (c *Config) ConverterOptions() ([]convert.Option, error) {
	var opts []convert.Option

	if c.InputFormat != "" && !strings.EqualFold(c.InputFormat, AutoFormat) {
		f, err := time.ParseFormatName(c.InputFormat)
		if err != nil {
			return nil, invalidField("inputFormat", err)
		}
		opts = append(opts, convert.WithInputFormat(f))
	}

	if c.OutputFormat != "" {
		f, err := time.ParseFormatName(c.OutputFormat)
		if err != nil {
			return nil, invalidField("outputFormat", err)
		}
		opts = append(opts, convert.WithOutputFormat(f))
	}

	return opts, nil
}

// ResultEncoding returns the encoding named by c, or convert.EncodingText when unset.
func (c *Config) ResultEncoding() (convert.Encoding, error) {
	if c.Encoding == "" {
		return convert.EncodingText, nil
	}
	enc, err := convert.ParseEncoding(c.Encoding)
	if err != nil {
		return "", invalidField("encoding", err)
	}
	return enc, nil
}

func invalidField(field string, err error) error {
	return errors.WrapWithContext(
		err,
		errors.CodeInvalidConfig,
		"invalid configuration value",
		map[string]interface{}{"field": field},
	)
}
