package registry

import (
	"fmt"
	"sort"

	"github.com/scopekit/scopegen/internal/models"
)

// moduleRegistry implements the ModuleRegistry interface
type moduleRegistry struct {
	modules map[string]*models.ProviderModuleMetadata
}

// NewModuleRegistry creates a new provider module registry
func NewModuleRegistry() ModuleRegistry {
	return &moduleRegistry{
		modules: make(map[string]*models.ProviderModuleMetadata),
	}
}

// Register adds a provider module to the registry
func (r *moduleRegistry) Register(module *models.ProviderModuleMetadata) error {
	if module == nil {
		return fmt.Errorf("module metadata cannot be nil")
	}
	if module.Name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	if existing, exists := r.modules[module.Name]; exists {
		return models.NewConflictError("module", module.Name, existing.Ref(), module.Ref())
	}

	r.modules[module.Name] = module
	return nil
}

// Resolve retrieves a provider module by name
func (r *moduleRegistry) Resolve(name string) (*models.ProviderModuleMetadata, bool) {
	module, exists := r.modules[name]
	return module, exists
}

// All returns every registered module sorted by name
func (r *moduleRegistry) All() []*models.ProviderModuleMetadata {
	modules := make([]*models.ProviderModuleMetadata, 0, len(r.modules))
	for _, module := range r.modules {
		modules = append(modules, module)
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})
	return modules
}
