package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scopekit/scopegen/internal/models"
)

// serviceRegistry implements the ServiceRegistry interface
type serviceRegistry struct {
	services map[string]*models.ServiceMetadata
}

// NewServiceRegistry creates a new service registry
func NewServiceRegistry() ServiceRegistry {
	return &serviceRegistry{
		services: make(map[string]*models.ServiceMetadata),
	}
}

// Register adds a service to the registry
func (r *serviceRegistry) Register(service *models.ServiceMetadata) error {
	if service == nil {
		return fmt.Errorf("service metadata cannot be nil")
	}
	if service.Name == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	if existing, exists := r.services[service.Name]; exists {
		return models.NewConflictError("service", service.Name, existing.Ref(), service.Ref())
	}

	r.services[service.Name] = service
	return nil
}

// Resolve retrieves a service by name
func (r *serviceRegistry) Resolve(name string) (*models.ServiceMetadata, bool) {
	service, exists := r.services[name]
	return service, exists
}

// Validate checks that every referenced service name is registered
func (r *serviceRegistry) Validate(serviceNames []string) error {
	var missing []string

	for _, name := range serviceNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := r.services[name]; !exists {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("unknown service(s): %s", strings.Join(missing, ", "))
	}

	return nil
}

// All returns every registered service sorted by name
func (r *serviceRegistry) All() []*models.ServiceMetadata {
	services := make([]*models.ServiceMetadata, 0, len(r.services))
	for _, service := range r.services {
		services = append(services, service)
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].Name < services[j].Name
	})
	return services
}
