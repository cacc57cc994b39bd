package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scopekit/scopegen/internal/utils"
)

// DirectoryScanner handles recursive directory scanning for Go files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return NewDirectoryScannerWithProcessor(utils.NewFileProcessor())
}

// NewDirectoryScannerWithProcessor creates a scanner over an existing file
// processor so its reader cache is shared.
func NewDirectoryScannerWithProcessor(fileProcessor *utils.FileProcessor) *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: fileProcessor,
	}
}

// ScanDirectories recursively scans the provided directories and returns
// those containing Go files. Go-style "./..." patterns are supported.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var cleanDirs []string

	for _, rootDir := range rootDirs {
		baseDir := rootDir
		if strings.HasSuffix(rootDir, "/...") {
			baseDir = strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
		}

		cleanPath, err := filepath.Abs(baseDir)
		if err != nil {
			return nil, utils.WrapProcessError(fmt.Sprintf("path resolution %s", baseDir), err)
		}
		cleanDirs = append(cleanDirs, cleanPath)
	}

	return s.fileProcessor.ScanDirectoriesWithGoFiles(cleanDirs)
}
