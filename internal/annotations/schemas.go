package annotations

import (
	"fmt"
	"strings"
	"unicode"
)

// validateExportedName checks that a value is a valid exported Go identifier,
// since flow and module names seed generated type names.
func validateExportedName(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return fmt.Errorf("name %q must start with an uppercase letter", name)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("name %q may only contain letters and digits", name)
		}
	}
	return nil
}

// validateServiceList checks each entry of a -Services list
func validateServiceList(value interface{}) error {
	services, ok := value.([]string)
	if !ok {
		return fmt.Errorf("expected []string, got %T", value)
	}
	seen := make(map[string]bool, len(services))
	for _, svc := range services {
		if strings.TrimSpace(svc) == "" {
			return fmt.Errorf("service list contains an empty entry")
		}
		if seen[svc] {
			return fmt.Errorf("service %q listed more than once", svc)
		}
		seen[svc] = true
	}
	return nil
}

// validateFlowProvisioning enforces that every requested service has a source:
// either a provider module or the application graph.
func validateFlowProvisioning(annotation *ParsedAnnotation) error {
	services := annotation.GetStringSlice("Services")
	if len(services) == 0 {
		return nil
	}
	if annotation.GetString("Module") != "" || annotation.GetBool("FromApp") {
		return nil
	}
	return &SchemaError{
		Msg:  fmt.Sprintf("flow %q requests services but declares no provider", annotation.GetString("Name")),
		Loc:  annotation.Location,
		Hint: "add -Module=<ModuleName> or -FromApp to say where the services come from",
	}
}

// FlowAnnotationSchema returns the schema for //scope::flow annotations
func FlowAnnotationSchema() AnnotationSchema {
	return AnnotationSchema{
		Type:        FlowAnnotation,
		Description: "Declares a scoped flow and generates its base screen and module",
		Parameters: map[string]ParameterSpec{
			"Name": {
				Type:        StringType,
				Required:    true,
				Description: "Flow name, seeds the Base<Name>Screen and <Name>Module types",
				Validator:   validateExportedName,
			},
			"Services": {
				Type:         StringSliceType,
				Required:     false,
				DefaultValue: []string{},
				Description:  "Services injected into the generated base screen",
				Validator:    validateServiceList,
			},
			"Module": {
				Type:        StringType,
				Required:    false,
				Description: "Provider module supplying the flow's services",
			},
			"FromApp": {
				Type:         BoolType,
				Required:     false,
				DefaultValue: false,
				Description:  "Resolve services from the application graph",
			},
			"Bind": {
				Type:         BoolType,
				Required:     false,
				DefaultValue: false,
				Description:  "Emit view-binding glue in the generated screen",
			},
		},
		Validators: []CustomValidator{validateFlowProvisioning},
		Examples: []string{
			"//scope::flow Login -Services=AccountService -Module=LoginModule",
			"//scope::flow Settings -Services=Prefs -FromApp",
			"//scope::flow Splash",
			"//scope::flow Checkout -Services=Cart,Payments -Module=CheckoutModule -Bind",
		},
	}
}

// ModuleAnnotationSchema returns the schema for //scope::module annotations
func ModuleAnnotationSchema() AnnotationSchema {
	return AnnotationSchema{
		Type:        ModuleAnnotation,
		Description: "Marks a struct as a provider module referenced by flows",
		Parameters: map[string]ParameterSpec{
			"Name": {
				Type:        StringType,
				Required:    false,
				Description: "Module name, defaults to the struct name",
				Validator:   validateExportedName,
			},
		},
		Examples: []string{
			"//scope::module",
			"//scope::module LoginModule",
		},
	}
}

// ServiceAnnotationSchema returns the schema for //scope::service annotations
func ServiceAnnotationSchema() AnnotationSchema {
	return AnnotationSchema{
		Type:        ServiceAnnotation,
		Description: "Registers a type as an injectable service",
		Parameters: map[string]ParameterSpec{
			"Name": {
				Type:        StringType,
				Required:    false,
				Description: "Service identifier, defaults to the type name",
				Validator:   validateExportedName,
			},
		},
		Examples: []string{
			"//scope::service",
			"//scope::service -Name=AccountService",
		},
	}
}

// RegisterBuiltinSchemas registers every built-in annotation schema
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		FlowAnnotationSchema(),
		ModuleAnnotationSchema(),
		ServiceAnnotationSchema(),
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type.String(), err)
		}
	}

	return nil
}
