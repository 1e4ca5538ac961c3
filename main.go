// =============================================================================
// SQL File Generator - Main Entry Point
// =============================================================================
//
// generate-sql-files prepares the BigQuery SQL templates under audit_log/ and
// information_schema/ for one deployment target by substituting the project,
// dataset location and dataset name placeholders.
//
// USAGE:
//   generate-sql-files [--location <dataset-location>] [--dataset <dataset-name>] <project> <output-directory>
//
// ARCHITECTURE:
//   - cmd/       : Cobra command definition and flag handling
//   - internal/  : Configuration, placeholder substitution, generator, manifest
//   - pkg/       : Filesystem helpers
//
// =============================================================================

package main

import (
	"github.com/doitintl/cmp-bq-sql-generator/cmd"
)

func main() {
	cmd.Execute()
}
