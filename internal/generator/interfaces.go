package generator

import "github.com/scopekit/scopegen/internal/models"

// CodeGenerator defines the interface for generating flow output files
type CodeGenerator interface {
	GenerateFlow(flow *models.FlowMetadata) (*models.FlowOutput, error)
}
