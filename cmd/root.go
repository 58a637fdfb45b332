// Package cmd implements the tripsched command line interface.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tripsched/app"
	"github.com/kilianp07/tripsched/config"
	"github.com/kilianp07/tripsched/core/schedule"
	"github.com/kilianp07/tripsched/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "tripsched",
	Short:         "Plan trips and day itineraries across Jharkhand",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "tripsched.yaml", "configuration file")
}

// Execute runs the CLI and returns the error of the selected command.
func Execute() error { return rootCmd.Execute() }

// ExitCode maps a command error to the process exit code: 0 for success,
// 2 for not-found errors, 1 for validation and any other failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, schedule.ErrNotFound):
		return 2
	default:
		return 1
	}
}

// withService loads the configuration, builds the app service, and hands it
// to fn, closing everything afterwards. Journal and state failures on close
// are logged, not swallowed silently, but do not mask fn's error.
func withService(fn func(*app.Service) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			logger.New("cli").Errorf("service close: %v", cerr)
		}
	}()
	return fn(svc)
}
