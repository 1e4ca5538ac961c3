// =============================================================================
// SQL File Generator - Run Manifest
// =============================================================================
//
// This module writes an optional manifest describing a generation run. The
// format is picked from the file extension:
//
//   .xlsx        Workbook with a "Run" sheet (key/value) and a "Files" sheet
//                (one row per generated file).
//   .yaml/.yml   The run summary as a YAML document.
//
// FILES SHEET LAYOUT:
//
//   | Directory | File    | Source            | Output                | Bytes In | Bytes Out | <project-name> | <dataset-region> | <dataset> |
//   |-----------|---------|-------------------|-----------------------|----------|-----------|----------------|------------------|-----------|
//   | audit_log | log.sql | audit_log/log.sql | out/audit_log/log.sql | 72       | 58        | 1              | 1                | 1         |
//
// =============================================================================

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/doitintl/cmp-bq-sql-generator/internal/placeholder"
	"github.com/doitintl/cmp-bq-sql-generator/internal/types"
)

// Sheet names of the XLSX manifest.
const (
	RunSheet   = "Run"
	FilesSheet = "Files"
)

// ErrUnsupportedFormat is returned for manifest paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// FilesHeader is the header row of the Files sheet.
var FilesHeader = append(
	[]string{"Directory", "File", "Source", "Output", "Bytes In", "Bytes Out"},
	placeholder.Tokens...,
)

// Write stores summary at path in the format implied by its extension.
func Write(path string, summary *types.Summary) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, summary)
	case ".yaml", ".yml":
		return WriteYAML(path, summary)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// =============================================================================
// YAML
// =============================================================================

// WriteYAML writes summary as a YAML document.
func WriteYAML(path string, summary *types.Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ReadYAML loads a summary previously written by WriteYAML.
func ReadYAML(path string) (*types.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var summary types.Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &summary, nil
}

// =============================================================================
// XLSX
// =============================================================================

// WriteXLSX writes summary as an Excel workbook.
func WriteXLSX(path string, summary *types.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the Run sheet.
	if err := f.SetSheetName(f.GetSheetName(0), RunSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	runRows := [][]interface{}{
		{"Run ID", summary.RunID},
		{"Project", summary.Project},
		{"Location", summary.Location},
		{"Dataset", summary.Dataset},
		{"Source Root", summary.SourceRoot},
		{"Output", summary.OutputDir},
		{"Dry Run", summary.DryRun},
		{"Started", summary.StartTime.Format(time.RFC3339)},
		{"Finished", summary.EndTime.Format(time.RFC3339)},
		{"Files", len(summary.Files)},
		{"Skipped", len(summary.Skipped)},
	}
	for i, row := range runRows {
		if err := setRow(f, RunSheet, i+1, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(FilesSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", FilesSheet, err)
	}

	header := make([]interface{}, len(FilesHeader))
	for i, h := range FilesHeader {
		header[i] = h
	}
	if err := setRow(f, FilesSheet, 1, header); err != nil {
		return err
	}

	for i, file := range summary.Files {
		row := []interface{}{
			file.Directory,
			file.Name,
			file.SourcePath,
			file.OutputPath,
			file.BytesIn,
			file.BytesOut,
		}
		for _, tok := range placeholder.Tokens {
			row = append(row, file.Replacements[tok])
		}
		if err := setRow(f, FilesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// setRow writes values starting at column A of the given 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
