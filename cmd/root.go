package cmd

import (
	"errors"
	"fmt"
	"os"

	"record-reconciler/core/logger"
	"record-reconciler/core/reconcile"
	"record-reconciler/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitReadError = 2
	ExitEmptyNew  = 3
	ExitMalformed = 4
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "record-reconciler",
	Short: "Reconcile two snapshots of a keyed record set",
	Long: `Record Reconciler compares an old and a new snapshot of delimited records keyed
by their first column. It reports matched, missing, corrupted and newly created
records and spot-checks one sample of each category.

Snapshots can be local files, S3/MinIO objects (s3://bucket/key) or database
tables (db://table).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with a code describing the failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, source.ErrReadFailure):
		return ExitReadError
	case errors.Is(err, reconcile.ErrEmptyNew):
		return ExitEmptyNew
	case errors.Is(err, reconcile.ErrMalformedRow):
		return ExitMalformed
	default:
		return ExitFailure
	}
}
