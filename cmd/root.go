package cmd

import (
	"fmt"
	"os"

	"xcstrings-drift/core/config"
	"xcstrings-drift/core/logger"
	"xcstrings-drift/core/reconcile"
	"xcstrings-drift/feature/localization"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. The tool is a single one-shot check, so
// the root command runs the pipeline directly instead of dispatching to
// subcommands.
var RootCmd = &cobra.Command{
	Use:   "xcstrings-drift <swift_root> <xcstrings_path>",
	Short: "Cross-check NSLocalizedString keys against an .xcstrings catalog",
	Long: `xcstrings-drift scans a Swift source tree for NSLocalizedString keys and
compares them against the keys declared in an .xcstrings catalog (Xcode 15+).

It reports keys used in Swift but missing from the catalog, and catalog keys
never referenced in Swift. Drift is advisory: the exit status is 0 even when
drift is found. Only an unreadable or invalid catalog fails the run.`,
	Args:          cobra.ExactArgs(2),
	RunE:          runDriftCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// runDriftCheck is the linear pipeline: scan source, load catalog, diff, report.
// Drift never returns an error; only config and catalog failures do. Source
// scanning degrades to warnings, never to a non-zero exit.
func runDriftCheck(cmd *cobra.Command, args []string) error {
	swiftRoot, catalogPath := args[0], args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	sourceKeys := localization.CollectSourceKeys(swiftRoot, cfg.Scan, l)

	catalogKeys, err := localization.CollectCatalogKeys(catalogPath)
	if err != nil {
		return err
	}

	drift := reconcile.Diff(sourceKeys, catalogKeys)

	report := localization.Report{
		SwiftRoot:   swiftRoot,
		CatalogPath: catalogPath,
		Drift:       drift,
	}
	report.Write(cmd.OutOrStdout())

	return nil
}
