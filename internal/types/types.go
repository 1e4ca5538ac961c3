// =============================================================================
// SQL File Generator - Shared Types
// =============================================================================
//
// This package contains types shared by the generator, the manifest writer
// and the CLI to avoid import cycles.
//
// =============================================================================

package types

import "time"

// =============================================================================
// FILE RESULTS
// =============================================================================

// FileResult describes one generated output file.
type FileResult struct {
	// Directory is the source directory name (e.g. "audit_log").
	Directory string `yaml:"directory"`

	// Name is the file name, identical for source and output.
	Name string `yaml:"name"`

	// SourcePath is the path the template was read from.
	SourcePath string `yaml:"source"`

	// OutputPath is the path the substituted text was written to.
	OutputPath string `yaml:"output"`

	// BytesIn and BytesOut are the sizes before and after substitution.
	BytesIn  int `yaml:"bytes_in"`
	BytesOut int `yaml:"bytes_out"`

	// Replacements maps each placeholder token to the number of
	// occurrences replaced in this file.
	Replacements map[string]int `yaml:"replacements"`
}

// SkippedEntry is a directory entry that did not qualify for generation.
type SkippedEntry struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// Summary is the outcome of a full generation run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Project    string    `yaml:"project"`
	Location   string    `yaml:"location"`
	Dataset    string    `yaml:"dataset"`
	SourceRoot string    `yaml:"source_root"`
	OutputDir  string    `yaml:"output_dir"`
	DryRun     bool      `yaml:"dry_run"`
	StartTime  time.Time `yaml:"started_at"`
	EndTime    time.Time `yaml:"finished_at"`

	Files   []FileResult   `yaml:"files"`
	Skipped []SkippedEntry `yaml:"skipped,omitempty"`
}

// TotalReplacements sums the replacement counts of every file.
func (s *Summary) TotalReplacements() int {
	total := 0
	for _, f := range s.Files {
		for _, n := range f.Replacements {
			total += n
		}
	}
	return total
}
