package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/botflow/internal/app"
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
	flagSet := flag.NewFlagSet("botflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
botflow - a flow orchestration substrate for bot platforms.

Usage:
  botflow [options] FLOW

Arguments:
  FLOW
    Name of the flow to execute.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "config", "Path to a .hcl config file or a directory containing them.")
	flowFlag := flagSet.String("flow", "", "Name of the flow to execute.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	timeoutFlag := flagSet.Duration("module-timeout", 0, "Deadline applied to each module handler. 0 disables it.")
	watchFlag := flagSet.Bool("watch", false, "Reload the config when its files change.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flowName := *flowFlag
	if flowName == "" && flagSet.NArg() > 0 {
		flowName = flagSet.Arg(0)
	}
	if flowName == "" {
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

	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid module-timeout: must not be negative"}
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath:      *configFlag,
		Flow:            flowName,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
		ModuleTimeout:   *timeoutFlag,
		Watch:           *watchFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
