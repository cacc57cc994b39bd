package models

// FlowMetadata represents a //scope::flow marker declaration
type FlowMetadata struct {
	Name       string   // flow name, seeds the Base<Name>Screen type
	StructName string   // marker struct the annotation was attached to
	Services   []string // service identifiers injected into the base screen
	ModuleRef  string   // provider module name from -Module, empty when absent
	FromApp    bool     // services resolve from the application graph
	Bind       bool     // emit view-binding glue in the base screen

	PackageName string // Go package of the marker declaration
	PackagePath string // file system path to the package
	FileName    string // file containing the marker
	Line        int    // line of the annotation

	// Resolved against the global registries during validation
	ResolvedServices []ServiceMetadata
	ResolvedModule   *ProviderModuleMetadata
}

// Ref returns the source location of the marker for error reporting.
func (f FlowMetadata) Ref() SourceRef {
	return SourceRef{FileName: f.FileName, Line: f.Line}
}

// ProviderModuleMetadata represents a //scope::module declaration
type ProviderModuleMetadata struct {
	Name        string // module name, defaults to the struct name
	StructName  string // annotated struct
	PackageName string // Go package of the declaration
	PackagePath string // file system path to the package
	ImportPath  string // full import path, resolved by the CLI driver
	FileName    string // file containing the declaration
	Line        int    // line of the annotation
}

// Ref returns the source location of the declaration for error reporting.
func (m ProviderModuleMetadata) Ref() SourceRef {
	return SourceRef{FileName: m.FileName, Line: m.Line}
}

// StructRef returns the module struct expression, package-qualified when
// referenced from a different package.
func (m ProviderModuleMetadata) StructRef(usePackage string) string {
	if m.PackageName != "" && m.PackageName != usePackage {
		return m.PackageName + "." + m.StructName
	}
	return m.StructName
}

// ServiceMetadata represents a //scope::service declaration
type ServiceMetadata struct {
	Name        string      // service identifier, defaults to the type name
	TypeName    string      // declared Go type name
	Kind        ServiceKind // interface or struct
	PackageName string      // Go package of the declaration
	PackagePath string      // file system path to the package
	ImportPath  string      // full import path, resolved by the CLI driver
	FileName    string      // file containing the declaration
	Line        int         // line of the annotation
}

// Ref returns the source location of the declaration for error reporting.
func (s ServiceMetadata) Ref() SourceRef {
	return SourceRef{FileName: s.FileName, Line: s.Line}
}

// FieldType returns the Go type expression for the injected screen field,
// qualified with the service's package when it differs from usePackage.
// Struct services are injected by pointer, interfaces by value.
func (s ServiceMetadata) FieldType(usePackage string) string {
	name := s.TypeName
	if s.PackageName != "" && s.PackageName != usePackage {
		name = s.PackageName + "." + name
	}
	if s.Kind == ServiceKindStruct {
		return "*" + name
	}
	return name
}
