package models

// PackageMetadata represents all scope annotations found in a package
type PackageMetadata struct {
	PackageName string                   // name of the Go package
	PackagePath string                   // file system path to the package
	Flows       []FlowMetadata           // all flow markers found in the package
	Modules     []ProviderModuleMetadata // all provider modules found in the package
	Services    []ServiceMetadata        // all service declarations found in the package
}

// IsEmpty reports whether the package carries no scope annotations at all.
func (m *PackageMetadata) IsEmpty() bool {
	return len(m.Flows) == 0 && len(m.Modules) == 0 && len(m.Services) == 0
}
