package registry

import (
	"fmt"
	"sort"

	"github.com/scopekit/scopegen/internal/models"
)

// flowRegistry implements the FlowRegistry interface
type flowRegistry struct {
	flows map[string]*models.FlowMetadata
}

// NewFlowRegistry creates a new flow registry
func NewFlowRegistry() FlowRegistry {
	return &flowRegistry{
		flows: make(map[string]*models.FlowMetadata),
	}
}

// Register adds a flow to the registry. Flow names seed generated type
// names, so two flows with the same name anywhere in the scanned tree are
// a conflict even when they live in different packages.
func (r *flowRegistry) Register(flow *models.FlowMetadata) error {
	if flow == nil {
		return fmt.Errorf("flow metadata cannot be nil")
	}
	if flow.Name == "" {
		return fmt.Errorf("flow name cannot be empty")
	}

	if existing, exists := r.flows[flow.Name]; exists {
		return models.NewConflictError("flow", flow.Name, existing.Ref(), flow.Ref())
	}

	r.flows[flow.Name] = flow
	return nil
}

// Get retrieves a flow by name
func (r *flowRegistry) Get(name string) (*models.FlowMetadata, bool) {
	flow, exists := r.flows[name]
	return flow, exists
}

// All returns every registered flow sorted by name for stable output
func (r *flowRegistry) All() []*models.FlowMetadata {
	flows := make([]*models.FlowMetadata, 0, len(r.flows))
	for _, flow := range r.flows {
		flows = append(flows, flow)
	}
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Name < flows[j].Name
	})
	return flows
}
