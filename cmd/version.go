// =============================================================================
// SQL File Generator - Version Information
// =============================================================================
//
// Version information is printed by the --version flag.
//
// OUTPUT:
//   SQL File Generator
//   Version:    1.0.0
//   Build Date: 2024-01-01
//   Go Version: go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/doitintl/cmp-bq-sql-generator/cmd.Version=1.0.0' -X 'github.com/doitintl/cmp-bq-sql-generator/cmd.BuildDate=2024-01-01'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionTemplate renders the --version output.
func versionTemplate() string {
	return fmt.Sprintf("SQL File Generator\nVersion:    {{.Version}}\nBuild Date: %s\nGo Version: %s\n",
		BuildDate, runtime.Version())
}
