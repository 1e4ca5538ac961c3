// =============================================================================
// SQL File Generator - Generate Pipeline
// =============================================================================
//
// This file folds the command-line values into a Config and runs the
// generator.
//
// PROCESSING PIPELINE:
//   1. Build the configuration (defaults < --config file < flags)
//   2. Validate it
//   3. Generate the mirrored SQL tree
//   4. Write the manifest, if requested
//   5. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doitintl/cmp-bq-sql-generator/internal/config"
	"github.com/doitintl/cmp-bq-sql-generator/internal/generator"
	"github.com/doitintl/cmp-bq-sql-generator/internal/manifest"
	"github.com/doitintl/cmp-bq-sql-generator/internal/types"
)

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate is the body of the root command.
func runGenerate(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	// =========================================================================
	// STEP 1: BUILD CONFIGURATION
	// =========================================================================

	cfg, err := buildConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: GENERATE
	// =========================================================================

	logger := generator.NewLogger(out, cfg.Verbose)
	summary, err := generator.New(cfg, generator.WithLogger(logger)).Run()
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 3: MANIFEST
	// =========================================================================

	if cfg.ManifestPath != "" {
		if cfg.DryRun {
			logger.Info("Dry run: manifest %s not written", cfg.ManifestPath)
		} else {
			if err := manifest.Write(cfg.ManifestPath, summary); err != nil {
				return err
			}
			logger.Info("Manifest written to %s", cfg.ManifestPath)
		}
	}

	// =========================================================================
	// STEP 4: SUMMARY
	// =========================================================================

	printSummary(out, summary, cfg.Verbose)
	return nil
}

// buildConfig merges defaults, the optional config file, flags and positionals.
// A flag only overrides when it was passed; its value is then used verbatim,
// so --location "" substitutes an empty string.
func buildConfig(cmd *cobra.Command, opts *options, args []string) (*config.Config, error) {
	cfg := config.Default()

	if opts.cfgFile != "" {
		if err := config.LoadFile(opts.cfgFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("location") {
		cfg.Location = opts.location
	}
	if flags.Changed("dataset") {
		cfg.Dataset = opts.dataset
	}
	if flags.Changed("source-root") {
		cfg.SourceRoot = opts.sourceRoot
	}
	if flags.Changed("manifest") {
		cfg.ManifestPath = opts.manifest
	}
	cfg.DryRun = cfg.DryRun || opts.dryRun
	cfg.Verbose = cfg.Verbose || opts.verbose

	cfg.Project = args[0]
	cfg.OutputDir = args[1]

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// printSummary writes one line per generated file (verbose only) and totals.
func printSummary(out io.Writer, summary *types.Summary, verbose bool) {
	ok := color.New(color.FgGreen).SprintFunc()

	if verbose {
		for _, f := range summary.Files {
			fmt.Fprintf(out, "  %s %s -> %s\n", ok("✓"), filepath.Join(f.Directory, f.Name), f.OutputPath)
		}
	}

	verb := "Generated"
	if summary.DryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(out, "%s %d file(s) into %s (%d replacement(s), %s)\n",
		verb,
		len(summary.Files),
		summary.OutputDir,
		summary.TotalReplacements(),
		summary.EndTime.Sub(summary.StartTime).Round(time.Millisecond))
}
