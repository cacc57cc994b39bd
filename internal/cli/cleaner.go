package cli

import (
	"fmt"
	"strings"

	"github.com/scopekit/scopegen/internal/utils"
)

// Cleaner removes generated scopegen files
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// CleanGeneratedFiles removes all scopegen_*.go files under the specified
// directories and returns the removed paths. "./..." patterns are
// supported.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	baseDirs := make([]string, 0, len(directories))
	for _, dir := range directories {
		if strings.HasSuffix(dir, "/...") {
			dir = strings.TrimSuffix(dir, "/...")
		}
		if dir == "" {
			dir = "."
		}
		baseDirs = append(baseDirs, dir)
	}

	removed, err := c.fileProcessor.CleanDirectories(baseDirs)
	if err != nil {
		return removed, fmt.Errorf("failed to clean generated files: %w", err)
	}
	return removed, nil
}
