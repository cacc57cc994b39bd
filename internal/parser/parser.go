package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"

	"github.com/scopekit/scopegen/internal/annotations"
	"github.com/scopekit/scopegen/internal/models"
	"github.com/scopekit/scopegen/internal/utils"
)

// Parser scans Go packages for scope:: annotations
type Parser struct {
	fileReader  *utils.FileReader
	annotations *annotations.Parser
}

// NewParser creates a new annotation scanner backed by the default schema
// registry.
func NewParser() *Parser {
	return NewParserWithReader(utils.NewFileReader())
}

// NewParserWithReader creates a scanner over an existing file reader, so
// parsed ASTs are cached and shared with other components.
func NewParserWithReader(reader *utils.FileReader) *Parser {
	return &Parser{
		fileReader:  reader,
		annotations: annotations.NewParser(annotations.DefaultRegistry()),
	}
}

// FileAnnotations collects everything extracted from one file
type FileAnnotations struct {
	Flows    []models.FlowMetadata
	Modules  []models.ProviderModuleMetadata
	Services []models.ServiceMetadata
}

// ParseSource parses source code from a string, used by tests
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, error) {
	file, err := p.fileReader.ParseGoSource(filename, source)
	if err != nil {
		return nil, err
	}

	metadata := &models.PackageMetadata{
		PackageName: file.Name.Name,
		PackagePath: "./",
	}

	extracted, err := p.ExtractAnnotations(file, filename)
	if err != nil {
		return nil, err
	}
	p.mergeInto(metadata, extracted)

	return metadata, nil
}

// ParseDirectory scans a single directory for annotated declarations.
// Generated output and test files are skipped, and parsed ASTs come from
// the reader's cache when the files are unchanged.
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, utils.WrapParseError(fmt.Sprintf("directory %s", path), err)
	}

	fileFilter := utils.SourceGoFileFilter()
	metadata := &models.PackageMetadata{
		PackagePath: path,
	}

	for _, entry := range entries {
		filePath := filepath.Join(path, entry.Name())
		if !fileFilter(filePath, entry) {
			continue
		}

		file, err := p.fileReader.ParseGoFile(filePath)
		if err != nil {
			return nil, utils.WrapParseError(fmt.Sprintf("directory %s", path), err)
		}

		switch metadata.PackageName {
		case "":
			metadata.PackageName = file.Name.Name
		case file.Name.Name:
		default:
			return nil, fmt.Errorf("multiple packages found in directory %s", path)
		}

		extracted, err := p.ExtractAnnotations(file, filePath)
		if err != nil {
			return nil, err
		}
		p.mergeInto(metadata, extracted)
	}

	if metadata.PackageName == "" {
		return nil, fmt.Errorf("no Go packages found in directory %s", path)
	}

	return metadata, nil
}

// ExtractAnnotations walks the AST and extracts scope:: annotations from
// type declaration comments.
func (p *Parser) ExtractAnnotations(file *ast.File, fileName string) (*FileAnnotations, error) {
	extracted := &FileAnnotations{}
	var walkErr error

	ast.Inspect(file, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}

		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			if doc == nil {
				continue
			}

			for _, comment := range doc.List {
				if !annotations.IsAnnotation(comment.Text) {
					continue
				}

				position := p.fileReader.GetFileSet().Position(comment.Pos())
				location := annotations.SourceLocation{
					File:   fileName,
					Line:   position.Line,
					Column: position.Column,
				}

				parsed, err := p.annotations.ParseAnnotation(comment.Text, location)
				if err != nil {
					walkErr = err
					return false
				}
				parsed.Target = typeSpec.Name.Name

				if err := p.collect(extracted, parsed, typeSpec, file.Name.Name, fileName, position.Line); err != nil {
					walkErr = err
					return false
				}
			}
		}

		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return extracted, nil
}

// collect turns a parsed annotation plus its target type into metadata
func (p *Parser) collect(extracted *FileAnnotations, parsed *annotations.ParsedAnnotation, typeSpec *ast.TypeSpec, packageName, fileName string, line int) error {
	switch parsed.Type {
	case annotations.FlowAnnotation:
		if _, ok := typeSpec.Type.(*ast.StructType); !ok {
			return p.targetError("flow", parsed.Target, "a struct", fileName, line)
		}
		extracted.Flows = append(extracted.Flows, models.FlowMetadata{
			Name:        parsed.GetString("Name"),
			StructName:  typeSpec.Name.Name,
			Services:    parsed.GetStringSlice("Services"),
			ModuleRef:   parsed.GetString("Module"),
			FromApp:     parsed.GetBool("FromApp"),
			Bind:        parsed.GetBool("Bind"),
			PackageName: packageName,
			FileName:    fileName,
			Line:        line,
		})

	case annotations.ModuleAnnotation:
		if _, ok := typeSpec.Type.(*ast.StructType); !ok {
			return p.targetError("module", parsed.Target, "a struct", fileName, line)
		}
		name := parsed.GetString("Name")
		if name == "" {
			name = typeSpec.Name.Name
		}
		extracted.Modules = append(extracted.Modules, models.ProviderModuleMetadata{
			Name:        name,
			StructName:  typeSpec.Name.Name,
			PackageName: packageName,
			FileName:    fileName,
			Line:        line,
		})

	case annotations.ServiceAnnotation:
		kind, err := serviceKind(typeSpec)
		if err != nil {
			return p.targetError("service", parsed.Target, "a struct or interface", fileName, line)
		}
		name := parsed.GetString("Name")
		if name == "" {
			name = typeSpec.Name.Name
		}
		extracted.Services = append(extracted.Services, models.ServiceMetadata{
			Name:        name,
			TypeName:    typeSpec.Name.Name,
			Kind:        kind,
			PackageName: packageName,
			FileName:    fileName,
			Line:        line,
		})
	}

	return nil
}

// serviceKind distinguishes interface services from struct services, which
// the generator injects by pointer.
func serviceKind(typeSpec *ast.TypeSpec) (models.ServiceKind, error) {
	switch typeSpec.Type.(type) {
	case *ast.InterfaceType:
		return models.ServiceKindInterface, nil
	case *ast.StructType:
		return models.ServiceKindStruct, nil
	default:
		return 0, fmt.Errorf("unsupported service type")
	}
}

func (p *Parser) targetError(kind, target, expected, fileName string, line int) error {
	return &models.GeneratorError{
		Type:    models.ErrorTypeAnnotationSyntax,
		File:    fileName,
		Line:    line,
		Message: fmt.Sprintf("%s annotation on %s must be attached to %s", kind, target, expected),
	}
}

// mergeInto folds one file's extractions into the package metadata,
// stamping each entry with the package path.
func (p *Parser) mergeInto(metadata *models.PackageMetadata, extracted *FileAnnotations) {
	for _, flow := range extracted.Flows {
		flow.PackagePath = metadata.PackagePath
		metadata.Flows = append(metadata.Flows, flow)
	}
	for _, module := range extracted.Modules {
		module.PackagePath = metadata.PackagePath
		metadata.Modules = append(metadata.Modules, module)
	}
	for _, service := range extracted.Services {
		service.PackagePath = metadata.PackagePath
		metadata.Services = append(metadata.Services, service)
	}
}
