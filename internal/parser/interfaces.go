package parser

import (
	"go/ast"

	"github.com/scopekit/scopegen/internal/models"
)

// AnnotationParser defines the interface for scanning Go source files and
// extracting flow, module and service metadata
type AnnotationParser interface {
	ParseDirectory(path string) (*models.PackageMetadata, error)
	ParseSource(filename, source string) (*models.PackageMetadata, error)
	ExtractAnnotations(file *ast.File, fileName string) (*FileAnnotations, error)
}
