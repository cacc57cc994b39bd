package registry

import "github.com/scopekit/scopegen/internal/models"

// FlowRegistry tracks flow declarations and rejects name conflicts across packages
type FlowRegistry interface {
	Register(flow *models.FlowMetadata) error
	Get(name string) (*models.FlowMetadata, bool)
	All() []*models.FlowMetadata
}

// ModuleRegistry tracks provider module declarations across packages
type ModuleRegistry interface {
	Register(module *models.ProviderModuleMetadata) error
	Resolve(name string) (*models.ProviderModuleMetadata, bool)
	All() []*models.ProviderModuleMetadata
}

// ServiceRegistry tracks service declarations across packages
type ServiceRegistry interface {
	Register(service *models.ServiceMetadata) error
	Resolve(name string) (*models.ServiceMetadata, bool)
	Validate(serviceNames []string) error
	All() []*models.ServiceMetadata
}
