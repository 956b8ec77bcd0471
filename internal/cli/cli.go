package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/wirekit/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("wirekit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
wirekit - service discovery and method resolution for wired components.

Usage:
  wirekit [options] CAPABILITY

Arguments:
  CAPABILITY
    Name of the capability to discover implementations of. Declarations are
    read from services/CAPABILITY under every configured root.

Options:
`)
		flagSet.PrintDefaults()
	}

	capabilityFlag := flagSet.String("capability", "", "Capability name to discover.")
	cFlag := flagSet.String("c", "", "Capability name to discover (shorthand).")
	rootsFlag := flagSet.String("roots", ".", "Comma-separated list of service search roots.")
	manifestsFlag := flagSet.String("manifests", "", "Path to the directory containing component manifests.")
	loadFlag := flagSet.Bool("load", false, "Instantiate every present implementation after discovery.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 10, "Number of concurrent workers for source parsing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	capability := ""
	if *capabilityFlag != "" {
		capability = *capabilityFlag
	} else if *cFlag != "" {
		capability = *cFlag
	} else if flagSet.NArg() > 0 {
		capability = flagSet.Arg(0)
	}

	if capability == "" {
		slog.Debug("No capability provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var roots []string
	for _, root := range strings.Split(*rootsFlag, ",") {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Capability:    capability,
		ServiceRoots:  roots,
		ManifestsPath: *manifestsFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
		Load:          *loadFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
