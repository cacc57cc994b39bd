package scopes

import (
	"fmt"
	"reflect"
)

// ViewRegistry maps view identifiers to view objects. Hosts populate it from
// whatever UI toolkit they use; the binder only cares about assignability.
type ViewRegistry map[string]interface{}

// Bind fills the exported fields of target tagged `view:"<id>"` from the
// registry. Target must be a non-nil pointer to a struct. A tagged field with
// no matching registry entry is an error, as is a registered view that is not
// assignable to the field's type.
func Bind(target interface{}, views ViewRegistry) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return fmt.Errorf("scopes: bind target must be a non-nil pointer to a struct, got %T", target)
	}

	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("scopes: bind target must point to a struct, got %T", target)
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		id, ok := field.Tag.Lookup("view")
		if !ok || id == "" {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("scopes: view field %s.%s must be exported", structType.Name(), field.Name)
		}

		view, ok := views[id]
		if !ok {
			return fmt.Errorf("scopes: no view registered for id %q (field %s.%s)", id, structType.Name(), field.Name)
		}

		viewValue := reflect.ValueOf(view)
		if !viewValue.IsValid() {
			return fmt.Errorf("scopes: view registered for id %q is nil (field %s.%s)", id, structType.Name(), field.Name)
		}
		if !viewValue.Type().AssignableTo(field.Type) {
			return fmt.Errorf("scopes: view %q has type %s, not assignable to field %s.%s (%s)",
				id, viewValue.Type(), structType.Name(), field.Name, field.Type)
		}

		value.Field(i).Set(viewValue)
	}

	return nil
}
