// Command ostk-time converts date-times between the Standard, ISO 8601 and STK
// formats and Julian or Modified Julian Dates.
//
// Usage:
//
//	ostk-time [-config file] [-from format] [-to format] [-encoding text|json|yaml]
//	          [-log-level level] VALUE...
//
// A VALUE is date-time text or a day count written as jd:<days> or mjd:<days>.
// Flags override the configuration file, which overrides the built-in defaults.
// Without -config, ostk-time/config.cue is looked up in the XDG configuration
// directories and used when present.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tapiab/open-space-toolkit-physics/config"
	"github.com/tapiab/open-space-toolkit-physics/convert"
	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// userConfigFile is the configuration path relative to the XDG config directories.
const userConfigFile = "ostk-time/config.cue"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], osfs.New("."), os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

type options struct {
	configPath string
	from       string
	to         string
	encoding   string
	logLevel   string
	values     []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	flags := flag.NewFlagSet("ostk-time", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "CUE configuration `file`")
	flags.StringVar(&opts.from, "from", "", "input `format`: auto, Standard, ISO8601 or STK")
	flags.StringVar(&opts.to, "to", "", "output `format` for text encoding: Standard, ISO8601 or STK")
	flags.StringVar(&opts.encoding, "encoding", "", "result encoding: text, json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log `level`: debug, info, warn or error")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: ostk-time [flags] VALUE...")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid command line")
	}
	opts.values = flags.Args()
	if len(opts.values) == 0 {
		flags.Usage()
		return nil, errors.New(errors.CodeInvalidInput, "no values to convert")
	}

	return opts, nil
}

// run executes one invocation. Configuration files are read from filesystem.
func run(ctx context.Context, args []string, filesystem billy.Filesystem, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		fmt.Fprintf(stderr, "invalid -log-level %q: %v\n", opts.logLevel, err)
		return errors.Wrap(err, errors.CodeInvalidInput, "invalid log level")
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	err = convertValues(ctx, logger, filesystem, opts, stdout)
	if err != nil {
		logger.ErrorContext(ctx, "ostk-time failed",
			"code", errors.GetCode(err),
			"error", err,
		)
	}
	return err
}

func convertValues(ctx context.Context, logger *slog.Logger, filesystem billy.Filesystem, opts *options, stdout io.Writer) error {
	cfg, err := loadConfig(ctx, logger, filesystem, opts.configPath)
	if err != nil {
		return err
	}

	// Flags win over the file.
	if opts.from != "" {
		cfg.InputFormat = opts.from
	}
	if opts.to != "" {
		cfg.OutputFormat = opts.to
	}
	if opts.encoding != "" {
		cfg.Encoding = opts.encoding
	}

	converterOpts, err := cfg.ConverterOptions()
	if err != nil {
		return err
	}
	enc, err := cfg.ResultEncoding()
	if err != nil {
		return err
	}

	converter, err := convert.New(append(converterOpts, convert.WithLogger(logger))...)
	if err != nil {
		return err
	}

	results, err := converter.ConvertAll(ctx, opts.values)
	if err != nil {
		return err
	}

	return converter.Encode(stdout, results, enc)
}

// loadConfig reads path from filesystem. An empty path falls back to the user
// configuration file, then to the built-in defaults.
func loadConfig(ctx context.Context, logger *slog.Logger, filesystem billy.Filesystem, path string) (*config.Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(userConfigFile)
		if err != nil {
			logger.DebugContext(ctx, "no user configuration", "file", userConfigFile)
			return config.Default(), nil
		}
		filesystem, path = osfs.New(filepath.Dir(found)), filepath.Base(found)
		logger.DebugContext(ctx, "found user configuration", "path", found)
	}

	cfg, err := config.Load(ctx, filesystem, path)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "loaded configuration", "path", path, "version", cfg.Version)
	return cfg, nil
}
