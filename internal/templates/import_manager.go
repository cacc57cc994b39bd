package templates

import (
	"fmt"
	"sort"
	"strings"
)

// ImportManager collects and deduplicates imports for a generated file
type ImportManager struct {
	imports map[string]string // path -> alias, empty alias means default
}

// NewImportManager creates a new import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make(map[string]string),
	}
}

// Add records an import path
func (im *ImportManager) Add(path string) {
	if path != "" {
		if _, exists := im.imports[path]; !exists {
			im.imports[path] = ""
		}
	}
}

// AddAliased records an import path with an explicit alias
func (im *ImportManager) AddAliased(alias, path string) {
	if path != "" {
		im.imports[path] = alias
	}
}

// Generate renders the import block, empty when nothing was added
func (im *ImportManager) Generate() string {
	if len(im.imports) == 0 {
		return ""
	}

	paths := make([]string, 0, len(im.imports))
	for path := range im.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if len(paths) == 1 {
		return fmt.Sprintf("import %s\n", im.spec(paths[0]))
	}

	var sb strings.Builder
	sb.WriteString("import (\n")
	for _, path := range paths {
		fmt.Fprintf(&sb, "\t%s\n", im.spec(path))
	}
	sb.WriteString(")\n")
	return sb.String()
}

func (im *ImportManager) spec(path string) string {
	if alias := im.imports[path]; alias != "" {
		return fmt.Sprintf("%s %q", alias, path)
	}
	return fmt.Sprintf("%q", path)
}
