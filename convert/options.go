package convert

import (
	"log/slog"

	"github.com/tapiab/open-space-toolkit-physics/time"
)

// converterOptions holds configuration options for a Converter.
type converterOptions struct {
	logger       *slog.Logger
	inputFormat  time.Format
	outputFormat time.Format
}

// Option is a functional option for configuring the Converter.
type Option func(*converterOptions)

// WithLogger configures the converter with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *converterOptions) {
		opts.logger = logger
	}
}

// WithInputFormat restricts text inputs to a single format.
// The zero Format restores auto-detection.
func WithInputFormat(f time.Format) Option {
	return func(opts *converterOptions) {
		opts.inputFormat = f
	}
}

// WithOutputFormat selects the rendering written by EncodingText.
func WithOutputFormat(f time.Format) Option {
	return func(opts *converterOptions) {
		opts.outputFormat = f
	}
}

func defaultOptions() *converterOptions {
	return &converterOptions{
		logger:       nil, // No default logger
		inputFormat:  "",  // Auto-detect
		outputFormat: time.FormatStandard,
	}
}

func applyOptions(opts *converterOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
