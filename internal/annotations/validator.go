package annotations

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaValidator validates parsed annotations against their registered schema
type SchemaValidator struct {
	registry AnnotationRegistry
}

// NewSchemaValidator creates a validator backed by the given registry
func NewSchemaValidator(registry AnnotationRegistry) *SchemaValidator {
	return &SchemaValidator{registry: registry}
}

// Validate checks a parsed annotation against its schema: required
// parameters, types, per-parameter validators, then annotation-level
// validators. All failures are collected before returning.
func (v *SchemaValidator) Validate(annotation *ParsedAnnotation) error {
	schema, err := v.registry.GetSchema(annotation.Type)
	if err != nil {
		return &SchemaError{
			Msg: fmt.Sprintf("no schema registered for annotation type %s", annotation.Type.String()),
			Loc: annotation.Location,
		}
	}

	var errs []error

	for paramName, spec := range schema.Parameters {
		value, provided := annotation.Parameters[paramName]

		if !provided {
			if spec.Required {
				errs = append(errs, &SchemaError{
					Msg:  fmt.Sprintf("missing required parameter %q", paramName),
					Loc:  annotation.Location,
					Hint: spec.Description,
				})
			}
			continue
		}

		if err := v.checkType(paramName, spec.Type, value, annotation.Location); err != nil {
			errs = append(errs, err)
			continue
		}

		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				errs = append(errs, &ValidationError{
					Parameter: paramName,
					Expected:  spec.Type.String(),
					Actual:    fmt.Sprintf("%v", value),
					Loc:       annotation.Location,
					Hint:      err.Error(),
				})
			}
		}
	}

	for paramName := range annotation.Parameters {
		if _, known := schema.Parameters[paramName]; !known {
			errs = append(errs, &SchemaError{
				Msg:  fmt.Sprintf("unknown parameter %q for %s annotation", paramName, annotation.Type.String()),
				Loc:  annotation.Location,
				Hint: fmt.Sprintf("valid parameters: %s", parameterNames(schema)),
			})
		}
	}

	// Annotation-level validators only run on structurally sound input
	if len(errs) == 0 {
		for _, validator := range schema.Validators {
			if err := validator(annotation); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return &MultipleValidationErrors{Errors: errs}
	}
	return nil
}

// ApplyDefaults fills in schema defaults for parameters the user omitted
func (v *SchemaValidator) ApplyDefaults(annotation *ParsedAnnotation) error {
	schema, err := v.registry.GetSchema(annotation.Type)
	if err != nil {
		return err
	}

	if annotation.Parameters == nil {
		annotation.Parameters = make(map[string]interface{})
	}

	for paramName, spec := range schema.Parameters {
		if _, provided := annotation.Parameters[paramName]; !provided && spec.DefaultValue != nil {
			annotation.Parameters[paramName] = spec.DefaultValue
		}
	}

	return nil
}

// TransformParameters coerces raw string parameter values into their
// schema-declared types.
func (v *SchemaValidator) TransformParameters(annotation *ParsedAnnotation) error {
	schema, err := v.registry.GetSchema(annotation.Type)
	if err != nil {
		return err
	}

	for paramName, spec := range schema.Parameters {
		value, provided := annotation.Parameters[paramName]
		if !provided {
			continue
		}

		switch spec.Type {
		case BoolType:
			converted, err := ConvertToBool(value)
			if err != nil {
				return &ValidationError{
					Parameter: paramName,
					Expected:  "bool",
					Actual:    fmt.Sprintf("%v", value),
					Loc:       annotation.Location,
				}
			}
			annotation.Parameters[paramName] = converted
		case StringSliceType:
			converted, err := ConvertToStringSlice(value)
			if err != nil {
				return &ValidationError{
					Parameter: paramName,
					Expected:  "[]string",
					Actual:    fmt.Sprintf("%v", value),
					Loc:       annotation.Location,
				}
			}
			annotation.Parameters[paramName] = converted
		}
	}

	return nil
}

// checkType verifies that a parameter value matches its declared type
func (v *SchemaValidator) checkType(paramName string, expected ParameterType, value interface{}, loc SourceLocation) error {
	var ok bool
	switch expected {
	case StringType:
		_, ok = value.(string)
	case BoolType:
		_, ok = value.(bool)
	case StringSliceType:
		_, ok = value.([]string)
	}
	if !ok {
		return &ValidationError{
			Parameter: paramName,
			Expected:  expected.String(),
			Actual:    fmt.Sprintf("%T", value),
			Loc:       loc,
		}
	}
	return nil
}

func parameterNames(schema AnnotationSchema) string {
	names := make([]string, 0, len(schema.Parameters))
	for name := range schema.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
