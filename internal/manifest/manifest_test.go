package manifest_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/doitintl/cmp-bq-sql-generator/internal/manifest"
	"github.com/doitintl/cmp-bq-sql-generator/internal/placeholder"
	"github.com/doitintl/cmp-bq-sql-generator/internal/types"
)

func sampleSummary() *types.Summary {
	start := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	return &types.Summary{
		RunID:      "3f2c1e8a-0000-4000-8000-000000000001",
		Project:    "acme",
		Location:   "us-east1",
		Dataset:    "billing",
		SourceRoot: ".",
		OutputDir:  "out",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Second),
		Files: []types.FileResult{
			{
				Directory:  "audit_log",
				Name:       "log.sql",
				SourcePath: "audit_log/log.sql",
				OutputPath: "out/audit_log/log.sql",
				BytesIn:    78,
				BytesOut:   58,
				Replacements: map[string]int{
					placeholder.ProjectToken: 1,
					placeholder.RegionToken:  1,
					placeholder.DatasetToken: 1,
				},
			},
		},
		Skipped: []types.SkippedEntry{{Path: "audit_log/notes.txt", Reason: "name does not contain .sql"}},
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.yaml")
	want := sampleSummary()

	if err := manifest.Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := manifest.ReadYAML(path)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}

	if got.RunID != want.RunID || got.Project != want.Project || got.Dataset != want.Dataset {
		t.Errorf("run fields differ: got %+v", got)
	}
	if !got.StartTime.Equal(want.StartTime) {
		t.Errorf("expected start %v, got %v", want.StartTime, got.StartTime)
	}
	if len(got.Files) != 1 || got.Files[0].Replacements[placeholder.DatasetToken] != 1 {
		t.Errorf("unexpected files %+v", got.Files)
	}
	if len(got.Skipped) != 1 {
		t.Errorf("unexpected skipped %+v", got.Skipped)
	}
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.xlsx")
	if err := manifest.Write(path, sampleSummary()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	project, err := f.GetCellValue(manifest.RunSheet, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if project != "acme" {
		t.Errorf("expected project acme in Run!B2, got %q", project)
	}

	rows, err := f.GetRows(manifest.FilesSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if len(rows[0]) != len(manifest.FilesHeader) || rows[0][6] != placeholder.ProjectToken {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "log.sql" || rows[1][4] != "78" || rows[1][8] != "1" {
		t.Errorf("unexpected data row %v", rows[1])
	}
}

func TestWriteUnsupported(t *testing.T) {
	t.Parallel()

	err := manifest.Write(filepath.Join(t.TempDir(), "run.csv"), sampleSummary())
	if !errors.Is(err, manifest.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
