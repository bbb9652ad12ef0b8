package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/modpoet/internal/logging"
)

// Environment variables consulted for flag defaults.
const (
	EnvLogLevel  = "MODPOET_LOG_LEVEL"
	EnvLogFormat = "MODPOET_LOG_FORMAT"
)

// OutputFormats are the accepted --format values.
var OutputFormats = []string{"text", "json", "yaml", "hcl"}

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	// Path is the project file to load.
	Path string
	// Format is the output format: text, json, yaml or hcl.
	Format string
	// Order requests a dependencies-first build order in the output.
	Order bool
	// Strict rejects explicit dependencies on unknown modules.
	Strict bool
	// Closure names a module whose transitive dependencies are reported.
	Closure string
	// LogLevel and LogFormat configure the logger on stderr.
	LogLevel  string
	LogFormat string
}

// Env returns a lookup that prefers the process environment and falls back
// to values read from the given dotenv files. Missing files are ignored; the
// first file defining a key wins.
func Env(files ...string) func(string) string {
	vals := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			continue
		}
		for k, v := range m {
			if _, ok := vals[k]; !ok {
				vals[k] = v
			}
		}
	}
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vals[key]
	}
}

// Parse processes command-line arguments. It returns the populated Config, a
// boolean telling the caller to exit cleanly (help was shown), or an
// *ExitError with code 2 for usage problems. env supplies flag defaults and
// may be nil.
func Parse(args []string, output io.Writer, env func(string) string) (*Config, bool, error) {
	if env == nil {
		env = func(string) string { return "" }
	}

	flagSet := flag.NewFlagSet("modpoet", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modpoet - resolves the module dependency graph of a synthetic project.

Usage:
  modpoet [options] CONFIG

Arguments:
  CONFIG
    Project file (.hcl, .yaml, .yml or .json).

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text', 'json', 'yaml' or 'hcl' (project file with the resolved edges).")
	orderFlag := flagSet.Bool("order", false, "Include a dependencies-first build order.")
	closureFlag := flagSet.String("closure", "", "Report the transitive dependencies of this module.")
	strictFlag := flagSet.Bool("strict", false, "Reject explicit dependencies on modules outside the project.")
	logLevelFlag := flagSet.String("log-level", withDefault(env(EnvLogLevel), "info"),
		"Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", withDefault(env(EnvLogFormat), "text"),
		"Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing CONFIG argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one CONFIG argument, got %d", flagSet.NArg())}
	}

	format := strings.ToLower(*formatFlag)
	if !logging.Valid(format, OutputFormats) {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text', 'json', 'yaml' or 'hcl'"}
	}
	logFormat := strings.ToLower(*logFormatFlag)
	if !logging.Valid(logFormat, logging.Formats) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if !logging.Valid(logLevel, logging.Levels) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		Path:      flagSet.Arg(0),
		Format:    format,
		Order:     *orderFlag,
		Strict:    *strictFlag,
		Closure:   strings.TrimSpace(*closureFlag),
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
