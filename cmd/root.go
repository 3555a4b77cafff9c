package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/run"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

var (
	// Global flags
	debug     bool
	dryRun    bool
	operation string
	drive     string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "winsweep",
	Short: "Triage and reclaim disk space on a Windows volume",
	Long: `WinSweep - Triage and reclaim disk space on a Windows volume.

Reports used/free capacity on the target drive, measures reclaimable
space across the well-known temp and cache locations, and optionally
purges them. Requires an elevated prompt.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Debug = debug

		// Pre-flight gate: elevation and argument validation happen
		// before any volume or filesystem access. A gate failure is the
		// only non-zero exit.
		if !core.IsElevated() {
			return errors.New("administrator privileges are required; re-run from an elevated prompt")
		}

		op, err := config.ParseOperation(operation)
		if err != nil {
			return err
		}

		target := drive
		if target == "" {
			target = config.DefaultDrive()
		}
		target, err = config.ValidateDrive(target)
		if err != nil {
			return err
		}

		if !core.IsWindows10OrAbove() {
			ui.Warnf("running on %s; versions below Windows 10 are untested", core.WindowsVersionString())
		}

		run.New(target, op, dryRun).Run()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the run without deleting anything")
	rootCmd.Flags().StringVar(&operation, "operation", "All",
		"Operation to perform: All, TempFiles, WindowsUpdate, RecycleBin, SystemCleanup, or Analyze")
	rootCmd.Flags().StringVar(&drive, "drive", "", "Target drive letter (default: system drive)")

	rootCmd.AddCommand(versionCmd)
}
