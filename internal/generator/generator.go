package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scopekit/scopegen/internal/models"
	"github.com/scopekit/scopegen/internal/templates"
)

// Generator implements the CodeGenerator interface. It expects flows whose
// service and module references were already resolved against the
// registries.
type Generator struct{}

// NewGenerator creates a new code generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateFlow produces the base screen and flow module files for one flow.
// Both files land in the package of the marker struct.
func (g *Generator) GenerateFlow(flow *models.FlowMetadata) (*models.FlowOutput, error) {
	if flow == nil {
		return nil, fmt.Errorf("flow metadata cannot be nil")
	}
	if flow.Name == "" {
		return nil, fmt.Errorf("flow name cannot be empty")
	}

	screen, err := g.generateScreenFile(flow)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			File:    flow.FileName,
			Line:    flow.Line,
			Message: fmt.Sprintf("failed to generate screen for flow %s", flow.Name),
			Cause:   err,
		}
	}

	module, err := g.generateModuleFile(flow)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			File:    flow.FileName,
			Line:    flow.Line,
			Message: fmt.Sprintf("failed to generate module for flow %s", flow.Name),
			Cause:   err,
		}
	}

	return &models.FlowOutput{
		Flow:       flow,
		ScreenFile: screen,
		ModuleFile: module,
	}, nil
}

// generateScreenFile renders the Base<Flow>Screen file
func (g *Generator) generateScreenFile(flow *models.FlowMetadata) (*models.GeneratedFile, error) {
	imports := templates.NewImportManager()
	imports.Add(templates.ScopesImportPath)

	fields := make([]templates.ScreenField, 0, len(flow.ResolvedServices))
	for _, service := range flow.ResolvedServices {
		if service.PackageName != flow.PackageName && service.ImportPath != "" {
			imports.Add(service.ImportPath)
		}
		fields = append(fields, templates.ScreenField{
			Name: service.Name,
			Type: service.FieldType(flow.PackageName),
		})
	}

	content, err := templates.RenderScreen(templates.ScreenTemplateData{
		PackageName: flow.PackageName,
		FlowName:    flow.Name,
		StructName:  ScreenStructName(flow.Name),
		ModuleFunc:  ModuleFuncName(flow.Name),
		Imports:     imports.Generate(),
		Fields:      fields,
		Bind:        flow.Bind,
	})
	if err != nil {
		return nil, err
	}

	return &models.GeneratedFile{
		FlowName:    flow.Name,
		PackageName: flow.PackageName,
		FilePath:    filepath.Join(flow.PackagePath, ScreenFileName(flow.Name)),
		Content:     content,
	}, nil
}

// generateModuleFile renders the <Flow>Module file
func (g *Generator) generateModuleFile(flow *models.FlowMetadata) (*models.GeneratedFile, error) {
	imports := templates.NewImportManager()
	imports.Add(templates.ScopesImportPath)

	var userModule string
	if flow.ResolvedModule != nil {
		if flow.ResolvedModule.PackageName != flow.PackageName && flow.ResolvedModule.ImportPath != "" {
			imports.Add(flow.ResolvedModule.ImportPath)
		}
		userModule = flow.ResolvedModule.StructRef(flow.PackageName)
	}

	content, err := templates.RenderModule(templates.ModuleTemplateData{
		PackageName: flow.PackageName,
		FlowName:    flow.Name,
		ModuleFunc:  ModuleFuncName(flow.Name),
		Imports:     imports.Generate(),
		UserModule:  userModule,
	})
	if err != nil {
		return nil, err
	}

	return &models.GeneratedFile{
		FlowName:    flow.Name,
		PackageName: flow.PackageName,
		FilePath:    filepath.Join(flow.PackagePath, ModuleFileName(flow.Name)),
		Content:     content,
	}, nil
}

// ScreenStructName returns the generated base screen type name for a flow
func ScreenStructName(flowName string) string {
	return "Base" + flowName + "Screen"
}

// ModuleFuncName returns the generated module constructor name for a flow
func ModuleFuncName(flowName string) string {
	return flowName + "Module"
}

// ScreenFileName returns the file name of the generated screen
func ScreenFileName(flowName string) string {
	return fmt.Sprintf("scopegen_%s_screen.go", strings.ToLower(flowName))
}

// ModuleFileName returns the file name of the generated module
func ModuleFileName(flowName string) string {
	return fmt.Sprintf("scopegen_%s_module.go", strings.ToLower(flowName))
}
