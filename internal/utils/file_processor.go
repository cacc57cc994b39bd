package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GeneratedFilePrefix names the files this tool writes
const GeneratedFilePrefix = "scopegen_"

// FileProcessor provides utilities for common file processing operations
type FileProcessor struct {
	fileReader *FileReader
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		fileReader: NewFileReader(),
	}
}

// NewFileProcessorWithReader creates a file processor with an existing FileReader
func NewFileProcessorWithReader(reader *FileReader) *FileProcessor {
	return &FileProcessor{
		fileReader: reader,
	}
}

// FileFilter determines whether a file should be processed
type FileFilter func(path string, entry os.DirEntry) bool

// DirectoryFilter determines whether a directory should be descended into
type DirectoryFilter func(path string, entry os.DirEntry) bool

// SourceGoFileFilter selects .go files, excluding tests and generated output
func SourceGoFileFilter() FileFilter {
	return func(path string, entry os.DirEntry) bool {
		if entry.IsDir() {
			return false
		}

		name := entry.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			!strings.HasPrefix(name, GeneratedFilePrefix)
	}
}

// GeneratedFileFilter selects the files this tool wrote
func GeneratedFileFilter() FileFilter {
	return func(path string, entry os.DirEntry) bool {
		if entry.IsDir() {
			return false
		}

		name := entry.Name()
		return strings.HasPrefix(name, GeneratedFilePrefix) && strings.HasSuffix(name, ".go")
	}
}

// DefaultDirectoryFilter skips directories that never hold scanned source
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		".git":         true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
	}

	return func(path string, entry os.DirEntry) bool {
		if !entry.IsDir() {
			return true
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// ScanDirectoriesWithGoFiles returns every directory under the roots that
// contains annotatable Go source.
func (fp *FileProcessor) ScanDirectoriesWithGoFiles(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		dirs, err := fp.scanDirectoryRecursive(rootDir, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, dirs...)
	}

	return packageDirs, nil
}

// scanDirectoryRecursive recursively scans a directory for Go files
func (fp *FileProcessor) scanDirectoryRecursive(dir string, visited map[string]bool) ([]string, error) {
	// Resolve absolute path to handle symlinks and avoid cycles
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("path resolution %s", dir), err)
	}

	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	var packageDirs []string

	hasGoFiles, err := fp.HasGoFiles(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("Go file check in %s", dir), err)
	}
	if hasGoFiles {
		packageDirs = append(packageDirs, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("directory read %s", dir), err)
	}

	directoryFilter := DefaultDirectoryFilter()

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		entryPath := filepath.Join(dir, entry.Name())
		if !directoryFilter(entryPath, entry) {
			continue
		}

		subDirs, err := fp.scanDirectoryRecursive(entryPath, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, subDirs...)
	}

	return packageDirs, nil
}

// HasGoFiles checks if a directory contains any annotatable .go files
func (fp *FileProcessor) HasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	fileFilter := SourceGoFileFilter()

	for _, entry := range entries {
		if fileFilter(filepath.Join(dir, entry.Name()), entry) {
			return true, nil
		}
	}

	return false, nil
}

// CleanDirectories removes generated scopegen files from the trees rooted
// at baseDirs and returns the removed paths.
func (fp *FileProcessor) CleanDirectories(baseDirs []string) ([]string, error) {
	var removedFiles []string

	for _, baseDir := range baseDirs {
		startDir := "."
		if baseDir != "" {
			startDir = baseDir
		}

		generatedFilter := GeneratedFileFilter()
		directoryFilter := DefaultDirectoryFilter()

		err := filepath.WalkDir(startDir, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				// Skip directories that cannot be accessed
				return nil
			}

			if entry.IsDir() {
				if !directoryFilter(path, entry) {
					return filepath.SkipDir
				}
				return nil
			}

			if generatedFilter(path, entry) {
				if removeErr := os.Remove(path); removeErr != nil {
					return WrapProcessError(fmt.Sprintf("file removal %s", path), removeErr)
				}
				removedFiles = append(removedFiles, path)
			}

			return nil
		})
		if err != nil {
			return removedFiles, WrapProcessError(fmt.Sprintf("directory clean %s", baseDir), err)
		}
	}

	return removedFiles, nil
}

// GetFileReader returns the underlying FileReader for advanced operations
func (fp *FileProcessor) GetFileReader() *FileReader {
	return fp.fileReader
}
