// =============================================================================
// Customs Describer - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the describer:
//   - Output path resolution (derived or explicit)
//   - Existence checks against an afero filesystem
//
// OUTPUT NAMING:
//   With no explicit output, "catalog.csv" becomes
//   "catalog-with-descriptions.csv". If that exists, a counter is appended:
//   "catalog-with-descriptions-0.csv", "-1", ... until a free name is found.
//
// =============================================================================

package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/customs-describer/internal/types"
	"github.com/spf13/afero"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager resolves and checks paths on a filesystem.
type FileManager struct {
	// Fs is the filesystem all checks run against.
	Fs afero.Fs

	// OutputSuffix is inserted before the extension of derived output paths.
	OutputSuffix string
}

// NewFileManager creates a FileManager.
func NewFileManager(fs afero.Fs, outputSuffix string) *FileManager {
	return &FileManager{
		Fs:           fs,
		OutputSuffix: outputSuffix,
	}
}

// =============================================================================
// OUTPUT PATH RESOLUTION
// =============================================================================

// ResolveOutputPath picks the path the augmented catalog is written to.
//
// PARAMETERS:
//   - inputPath: The catalog being described.
//   - outputPath: The requested output path, or "" to derive one.
//   - overwrite: Whether an existing explicit output may be replaced.
//
// RETURNS:
//   - The output path.
//   - A *types.Error of kind OutputExists when outputPath exists and
//     overwrite is false. Nothing is read or written in that case.
func (fm *FileManager) ResolveOutputPath(inputPath, outputPath string, overwrite bool) (string, error) {
	if outputPath != "" {
		exists, err := fm.FileExists(outputPath)
		if err != nil {
			return "", err
		}
		if exists && !overwrite {
			return "", &types.Error{Kind: types.KindOutputExists, Path: outputPath}
		}
		return outputPath, nil
	}

	return fm.DeriveOutputPath(inputPath)
}

// DeriveOutputPath returns the first free "<stem><suffix>[-n]<ext>" path next
// to inputPath.
func (fm *FileManager) DeriveOutputPath(inputPath string) (string, error) {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)

	candidate := filepath.Join(dir, stem+fm.OutputSuffix+ext)
	for n := 0; ; n++ {
		exists, err := fm.FileExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s%s-%d%s", stem, fm.OutputSuffix, n, ext))
	}
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a path exists.
func (fm *FileManager) FileExists(path string) (bool, error) {
	exists, err := afero.Exists(fm.Fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return exists, nil
}
