// =============================================================================
// SQL File Generator - Generator Module
// =============================================================================
//
// This module contains the core generation logic. It walks the two fixed
// source directories and writes a substituted copy of every SQL template into
// the mirrored output tree.
//
// GENERATION PIPELINE:
//   1. Ensure the output root exists
//   2. For each source directory (audit_log, then information_schema):
//      a. List the directory entries
//      b. Keep regular files whose relative path contains ".sql"
//      c. Read the template
//      d. Replace the placeholder tokens
//      e. Ensure <output>/<source directory> exists
//      f. Write <output>/<source directory>/<file name>, overwriting
//   3. Return a summary of the run
//
// The whole pipeline is sequential. The first I/O error aborts the run;
// files already written are left in place.
//
// =============================================================================

package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doitintl/cmp-bq-sql-generator/internal/config"
	"github.com/doitintl/cmp-bq-sql-generator/internal/placeholder"
	"github.com/doitintl/cmp-bq-sql-generator/internal/types"
	"github.com/doitintl/cmp-bq-sql-generator/pkg/utils"
)

// =============================================================================
// SOURCE DIRECTORIES
// =============================================================================

const (
	AuditLogDirectory          = "audit_log"
	InformationSchemaDirectory = "information_schema"

	// sqlMarker is matched anywhere in the relative path, not only as a suffix.
	sqlMarker = ".sql"
)

// SourceDirectories are scanned in this order.
var SourceDirectories = []string{AuditLogDirectory, InformationSchemaDirectory}

// Skip reasons recorded in the summary.
const (
	reasonNotRegular = "not a regular file"
	reasonNotSQL     = "name does not contain .sql"
)

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator produces the substituted SQL tree for one configuration.
type Generator struct {
	cfg         *config.Config
	substitutor *placeholder.Substitutor
	files       *utils.FileManager
	logger      Logger
}

// Option customises a Generator.
type Option func(*Generator)

// WithLogger replaces the default logger.
func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l == nil {
			l = nopLogger{}
		}
		g.logger = l
	}
}

// New creates a Generator for cfg. cfg must already be validated.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:         cfg,
		substitutor: placeholder.New(cfg.Project, cfg.Location, cfg.Dataset),
		files:       utils.NewFileManager(cfg.DryRun),
		logger:      NewLogger(nil, cfg.Verbose),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the generation pipeline.
//
// RETURNS:
//   - A Summary of every generated file and every skipped entry.
//   - The first error encountered; the summary is nil in that case.
func (g *Generator) Run() (*types.Summary, error) {
	summary := &types.Summary{
		RunID:      uuid.New().String(),
		Project:    g.cfg.Project,
		Location:   g.cfg.Location,
		Dataset:    g.cfg.Dataset,
		SourceRoot: g.cfg.SourceRoot,
		OutputDir:  g.cfg.OutputDir,
		DryRun:     g.cfg.DryRun,
		StartTime:  time.Now(),
	}

	g.logger.Debug("Run %s: project=%s location=%s dataset=%s",
		summary.RunID, g.cfg.Project, g.cfg.Location, g.cfg.Dataset)

	// =========================================================================
	// STEP 1: OUTPUT ROOT
	// =========================================================================

	created, err := g.files.EnsureDir(g.cfg.OutputDir)
	if err != nil {
		return nil, err
	}
	if created {
		g.logger.Debug("Created output directory %s", g.cfg.OutputDir)
	}

	// =========================================================================
	// STEP 2: SOURCE DIRECTORIES
	// =========================================================================

	for _, dir := range SourceDirectories {
		if err := g.processDirectory(dir, summary); err != nil {
			return nil, err
		}
	}

	summary.EndTime = time.Now()
	return summary, nil
}

// processDirectory generates every matching file of one source directory.
func (g *Generator) processDirectory(dir string, summary *types.Summary) error {
	sourceDir := g.cfg.SourcePath(dir)
	outputDir := g.cfg.OutputPath(dir)

	entries, err := g.files.ReadDir(sourceDir)
	if err != nil {
		return err
	}

	g.logger.Debug("Scanning %s (%d entries)", sourceDir, len(entries))

	outputReady := false
	for _, entry := range entries {
		relPath := filepath.Join(dir, entry.Name())
		sourcePath := filepath.Join(sourceDir, entry.Name())

		if !g.files.IsRegularFile(sourcePath) {
			g.skip(summary, relPath, reasonNotRegular)
			continue
		}
		if !MatchesSQL(relPath) {
			g.skip(summary, relPath, reasonNotSQL)
			continue
		}

		if !outputReady {
			created, err := g.files.EnsureDir(outputDir)
			if err != nil {
				return err
			}
			if created {
				g.logger.Debug("Created output directory %s", outputDir)
			}
			outputReady = true
		}

		result, err := g.processFile(dir, entry.Name(), sourcePath, outputDir)
		if err != nil {
			return err
		}
		summary.Files = append(summary.Files, *result)
	}

	return nil
}

// processFile reads, substitutes and writes a single template.
func (g *Generator) processFile(dir, name, sourcePath, outputDir string) (*types.FileResult, error) {
	contents, err := g.files.ReadText(sourcePath)
	if err != nil {
		return nil, err
	}

	substituted, counts := g.substitutor.Apply(contents)

	outputPath := filepath.Join(outputDir, name)
	if err := g.files.WriteText(outputPath, substituted); err != nil {
		return nil, err
	}

	g.logger.Debug("Generated %s -> %s (%s)", sourcePath, outputPath, formatCounts(counts))
	if left := placeholder.Remaining(substituted); len(left) > 0 {
		g.logger.Warn("%s still contains %s after substitution", outputPath, strings.Join(left, ", "))
	}

	return &types.FileResult{
		Directory:    dir,
		Name:         name,
		SourcePath:   sourcePath,
		OutputPath:   outputPath,
		BytesIn:      len(contents),
		BytesOut:     len(substituted),
		Replacements: counts,
	}, nil
}

func (g *Generator) skip(summary *types.Summary, relPath, reason string) {
	g.logger.Debug("Skipping %s: %s", relPath, reason)
	summary.Skipped = append(summary.Skipped, types.SkippedEntry{Path: relPath, Reason: reason})
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// MatchesSQL reports whether a source entry qualifies as a SQL template.
// The check is a substring match on the relative path, so "readme.sql.md"
// and "q.sql.bak" qualify as well as "q.sql".
func MatchesSQL(relPath string) bool {
	return strings.Contains(relPath, sqlMarker)
}

func formatCounts(counts placeholder.Counts) string {
	parts := make([]string, 0, len(placeholder.Tokens))
	for _, tok := range placeholder.Tokens {
		parts = append(parts, fmt.Sprintf("%s=%d", tok, counts[tok]))
	}
	return strings.Join(parts, " ")
}
