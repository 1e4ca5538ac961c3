// =============================================================================
// SQL File Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The tool has a single
// job, so the root command carries the two positionals and runs the
// generation directly; there are no subcommands.
//
// COMMAND USAGE:
//   generate-sql-files [--location <dataset-location>] [--dataset <dataset-name>] <project> <output-directory>
//
// FLAGS:
//   --location     : Substituted for <dataset-region> (default "region-us")
//   --dataset      : Substituted for <dataset> (default "doitintl-cmp-bq")
//   --config       : Optional YAML file with defaults for the flags below
//   --source-root  : Directory containing audit_log/ and information_schema/
//   --manifest     : Write a run manifest (.xlsx or .yaml)
//   --dry-run      : Process everything, write nothing
//   --verbose, -v  : Per-file debug logging
//   --version      : Print version information
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doitintl/cmp-bq-sql-generator/internal/config"
)

// ErrUsage marks argument errors; the usage text is printed alongside them.
var ErrUsage = errors.New("invalid arguments")

// =============================================================================
// COMMAND OPTIONS
// =============================================================================

// options holds the raw flag values before they are folded into a Config.
type options struct {
	cfgFile    string
	location   string
	dataset    string
	sourceRoot string
	manifest   string
	dryRun     bool
	verbose    bool
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCommand builds the generate-sql-files command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "generate-sql-files [--location <dataset-location>] [--dataset <dataset-name>] <project> <output-directory>",
		Short: "Generate SQL files for specific projects and/or datasets into output directory",
		Long: `Generate SQL files for specific projects and/or datasets into output directory.

Every file whose name contains ".sql" under audit_log/ and information_schema/
is copied to <output-directory>/audit_log/ and <output-directory>/information_schema/
with these placeholders replaced:

  <project-name>    the <project> argument
  <dataset-region>  --location (default "region-us")
  <dataset>         --dataset  (default "doitintl-cmp-bq")

Example Usage:
  generate-sql-files my-project ./out
  generate-sql-files --location us-east1 --dataset billing my-project ./out
  generate-sql-files --manifest run.xlsx my-project ./out`,

		Version: Version,

		// Argument errors print usage; everything after that does not.
		Args:          requireProjectAndOutput,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, opts, args)
		},
	}

	cmd.SetVersionTemplate(versionTemplate())

	// ==========================================================================
	// FLAGS
	// ==========================================================================

	flags := cmd.Flags()
	flags.StringVar(&opts.location, "location", config.DefaultLocation, "Dataset location")
	flags.StringVar(&opts.dataset, "dataset", config.DefaultDataset, "Dataset name for audit logs")
	flags.StringVar(&opts.cfgFile, "config", "", "Optional YAML configuration file")
	flags.StringVar(&opts.sourceRoot, "source-root", config.DefaultSourceRoot, "Directory containing audit_log/ and information_schema/")
	flags.StringVar(&opts.manifest, "manifest", "", "Write a run manifest to this path (.xlsx, .yaml or .yml)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Process templates without writing any output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// requireProjectAndOutput checks for exactly the two positionals.
func requireProjectAndOutput(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: requires <project> and <output-directory>, received %d argument(s)", ErrUsage, len(args))
	}
	return nil
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
