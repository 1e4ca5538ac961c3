// =============================================================================
// SQL File Generator - File Manager Utility
// =============================================================================
//
// This module provides the filesystem helpers used by the generator:
//   - Directory management (create-if-absent)
//   - Regular file detection (symlinks are followed)
//   - Whole-file text reads and overwriting writes
//
// All operations are synchronous. Errors are returned wrapped with the path
// that failed so the caller can surface them without extra context.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// DefaultDirMode is the permission used for every directory the generator creates.
const DefaultDirMode fs.FileMode = 0o755

// DefaultFileMode is the permission used for every generated file.
const DefaultFileMode fs.FileMode = 0o644

// FileManager handles file operations for the generator.
type FileManager struct {
	// DirMode is the mode used when creating directories.
	DirMode fs.FileMode

	// FileMode is the mode used when creating files.
	FileMode fs.FileMode

	// DryRun turns every mutating operation into a no-op.
	// Reads are still performed.
	DryRun bool
}

// NewFileManager creates a new FileManager with the default modes.
func NewFileManager(dryRun bool) *FileManager {
	return &FileManager{
		DirMode:  DefaultDirMode,
		FileMode: DefaultFileMode,
		DryRun:   dryRun,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates dir (and any missing parents) if it does not exist.
//
// RETURNS:
//   - true if the directory was created by this call.
//   - An error if the path exists but is not a directory, or creation fails.
func (fm *FileManager) EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}

	if fm.DryRun {
		return true, nil
	}

	if err := os.MkdirAll(dir, fm.DirMode); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return true, nil
}

// ReadDir lists a directory in the order reported by os.ReadDir.
func (fm *FileManager) ReadDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	return entries, nil
}

// =============================================================================
// FILE I/O
// =============================================================================

// IsRegularFile reports whether path is a regular file, following symlinks.
// A dangling symlink is not a regular file.
func (fm *FileManager) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadText reads the whole file at path.
func (fm *FileManager) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText writes contents to path, truncating any existing file.
func (fm *FileManager) WriteText(path, contents string) error {
	if fm.DryRun {
		return nil
	}
	if err := os.WriteFile(path, []byte(contents), fm.FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
