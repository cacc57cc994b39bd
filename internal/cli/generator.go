package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/scopekit/scopegen/internal/generator"
	"github.com/scopekit/scopegen/internal/models"
	"github.com/scopekit/scopegen/internal/parser"
	"github.com/scopekit/scopegen/internal/registry"
	"github.com/scopekit/scopegen/internal/utils"
)

// GenerationSummary collects statistics about one generation run
type GenerationSummary struct {
	PackagesProcessed int
	FlowsGenerated    int
	GeneratedFiles    []string
	Duration          time.Duration
}

// Generator coordinates the CLI generation process: scan, register,
// resolve, generate, write.
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	parser         parser.AnnotationParser
	codeGenerator  generator.CodeGenerator
	diagnostics    *utils.DiagnosticSystem
	customModule   string
	summary        GenerationSummary

	// writeFile is swappable for tests
	writeFile func(path, content string) error
}

// NewGenerator creates a new CLI generator. One file reader backs the
// scanner, the module resolver, and the annotation parser, so a source file
// is read and parsed at most once per run.
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	fileProcessor := utils.NewFileProcessorWithReader(utils.NewFileReader())
	reader := fileProcessor.GetFileReader()

	return &Generator{
		scanner:        NewDirectoryScannerWithProcessor(fileProcessor),
		moduleResolver: NewModuleResolverWithReader(reader),
		parser:         parser.NewParserWithReader(reader),
		codeGenerator:  generator.NewGenerator(),
		diagnostics:    diagnostics,
		summary:        GenerationSummary{GeneratedFiles: make([]string, 0)},
		writeFile:      utils.FormatAndWriteGoFile,
	}
}

// SetCustomModule sets a custom module path for import resolution
func (g *Generator) SetCustomModule(moduleName string) {
	g.customModule = moduleName
}

// GetSummary returns the generation summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Generate executes the generation process for the given directories
func (g *Generator) Generate(directories []string) error {
	return g.Run(Config{
		Directories: directories,
		ModuleName:  g.customModule,
	})
}

// Run executes the complete generation process
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: fmt.Sprintf("Failed to resolve module name: %v", err),
			Suggestions: []string{
				"Check your go.mod file exists and is valid",
				"Try specifying --module flag explicitly",
			},
			Cause: err,
		}
	}
	g.diagnostics.Debug("Resolved module name: %s", moduleName)

	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to scan directories: %v", err),
			Suggestions: []string{
				"Check that the specified directories exist",
				"Ensure you have read permissions for the directories",
			},
			Cause: err,
		}
	}
	if len(packageDirs) == 0 {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: "No Go packages found in specified directories",
			Suggestions: []string{
				"Ensure the directories contain Go files",
				"Try scanning parent directories or use './...' pattern",
			},
		}
	}

	g.diagnostics.PhaseHeader("Discovery")
	g.summary.PackagesProcessed = len(packageDirs)

	flows := registry.NewFlowRegistry()
	modules := registry.NewModuleRegistry()
	services := registry.NewServiceRegistry()

	for _, packageDir := range packageDirs {
		g.diagnostics.Verbose("Parsing package %s", packageDir)

		metadata, err := g.parser.ParseDirectory(packageDir)
		if err != nil {
			return err
		}
		if metadata.IsEmpty() {
			continue
		}

		importPath, err := g.moduleResolver.BuildPackagePath(moduleName, packageDir)
		if err != nil {
			return utils.WrapProcessError(fmt.Sprintf("import path for %s", packageDir), err)
		}

		if err := g.register(metadata, importPath, flows, modules, services); err != nil {
			return err
		}

		for _, flow := range metadata.Flows {
			g.diagnostics.PhaseItem("Found flow %s (%s)", flow.Name, flow.FileName)
		}
	}

	g.diagnostics.PhaseHeader("Validation")
	if err := g.resolveFlows(flows, modules, services); err != nil {
		return err
	}

	g.diagnostics.PhaseHeader("Generation")
	for _, flow := range flows.All() {
		output, err := g.codeGenerator.GenerateFlow(flow)
		if err != nil {
			return err
		}

		for _, file := range output.Files() {
			g.diagnostics.PhaseProgress("Writing %s", file.FilePath)
			if err := g.writeFile(file.FilePath, file.Content); err != nil {
				return &models.GeneratorError{
					Type:    models.ErrorTypeFileSystem,
					File:    file.FilePath,
					Message: fmt.Sprintf("failed to write generated file: %v", err),
					Cause:   err,
				}
			}
			g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, file.FilePath)
		}
		g.summary.FlowsGenerated++
	}

	g.summary.Duration = time.Since(startTime)
	g.diagnostics.Summary("Generation summary", map[string]interface{}{
		"packages": g.summary.PackagesProcessed,
		"flows":    g.summary.FlowsGenerated,
		"files":    len(g.summary.GeneratedFiles),
		"duration": g.summary.Duration.Round(time.Millisecond),
	})

	return nil
}

// register adds one package's declarations to the global registries,
// stamping import paths for cross-package references.
func (g *Generator) register(metadata *models.PackageMetadata, importPath string, flows registry.FlowRegistry, modules registry.ModuleRegistry, services registry.ServiceRegistry) error {
	for i := range metadata.Flows {
		if err := flows.Register(&metadata.Flows[i]); err != nil {
			return err
		}
	}
	for i := range metadata.Modules {
		metadata.Modules[i].ImportPath = importPath
		if err := modules.Register(&metadata.Modules[i]); err != nil {
			return err
		}
	}
	for i := range metadata.Services {
		metadata.Services[i].ImportPath = importPath
		if err := services.Register(&metadata.Services[i]); err != nil {
			return err
		}
	}
	return nil
}

// resolveFlows binds every flow's module and service references against
// the global registries.
func (g *Generator) resolveFlows(flows registry.FlowRegistry, modules registry.ModuleRegistry, services registry.ServiceRegistry) error {
	for _, flow := range flows.All() {
		if flow.ModuleRef != "" {
			module, ok := modules.Resolve(flow.ModuleRef)
			if !ok {
				return &models.GeneratorError{
					Type:    models.ErrorTypeValidation,
					File:    flow.FileName,
					Line:    flow.Line,
					Message: fmt.Sprintf("flow %s references unknown module %q", flow.Name, flow.ModuleRef),
					Suggestions: []string{
						fmt.Sprintf("Declare a //scope::module named %s", flow.ModuleRef),
						knownNamesHint("modules", moduleNames(modules)),
					},
				}
			}
			flow.ResolvedModule = module
		}

		if err := services.Validate(flow.Services); err != nil {
			return &models.GeneratorError{
				Type:    models.ErrorTypeValidation,
				File:    flow.FileName,
				Line:    flow.Line,
				Message: fmt.Sprintf("flow %s references %v", flow.Name, err),
				Suggestions: []string{
					"Annotate the service type with //scope::service",
					knownNamesHint("services", serviceNames(services)),
				},
			}
		}

		flow.ResolvedServices = flow.ResolvedServices[:0]
		for _, name := range flow.Services {
			service, _ := services.Resolve(name)
			flow.ResolvedServices = append(flow.ResolvedServices, *service)
		}

		g.diagnostics.PhaseItem("Validated flow %s", flow.Name)
	}

	return nil
}

func moduleNames(modules registry.ModuleRegistry) []string {
	all := modules.All()
	names := make([]string, 0, len(all))
	for _, module := range all {
		names = append(names, module.Name)
	}
	return names
}

func serviceNames(services registry.ServiceRegistry) []string {
	all := services.All()
	names := make([]string, 0, len(all))
	for _, service := range all {
		names = append(names, service.Name)
	}
	return names
}

func knownNamesHint(kind string, names []string) string {
	if len(names) == 0 {
		return fmt.Sprintf("No %s were found in the scanned directories", kind)
	}
	return fmt.Sprintf("Known %s: %s", kind, strings.Join(names, ", "))
}
