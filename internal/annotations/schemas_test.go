package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExportedName(t *testing.T) {
	assert.NoError(t, validateExportedName("Login"))
	assert.NoError(t, validateExportedName("Checkout2"))

	assert.Error(t, validateExportedName("login"))
	assert.Error(t, validateExportedName(""))
	assert.Error(t, validateExportedName("Log-in"))
	assert.Error(t, validateExportedName(42))
}

func TestValidateServiceList(t *testing.T) {
	assert.NoError(t, validateServiceList([]string{"Cart", "Payments"}))
	assert.NoError(t, validateServiceList([]string{}))

	assert.Error(t, validateServiceList([]string{"Cart", "Cart"}))
	assert.Error(t, validateServiceList([]string{""}))
	assert.Error(t, validateServiceList("Cart"))
}

func TestFlowProvisioningValidator(t *testing.T) {
	cases := []struct {
		name    string
		params  map[string]interface{}
		wantErr bool
	}{
		{
			name:    "module provider",
			params:  map[string]interface{}{"Name": "Login", "Services": []string{"Svc"}, "Module": "LoginModule"},
			wantErr: false,
		},
		{
			name:    "app provider",
			params:  map[string]interface{}{"Name": "Login", "Services": []string{"Svc"}, "FromApp": true},
			wantErr: false,
		},
		{
			name:    "no services",
			params:  map[string]interface{}{"Name": "Splash"},
			wantErr: false,
		},
		{
			name:    "services without provider",
			params:  map[string]interface{}{"Name": "Login", "Services": []string{"Svc"}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			annotation := &ParsedAnnotation{
				Type:       FlowAnnotation,
				Parameters: tc.params,
				Location:   testLocation(),
			}
			err := validateFlowProvisioning(annotation)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatorCollectsAllErrors(t *testing.T) {
	validator := NewSchemaValidator(DefaultRegistry())

	annotation := &ParsedAnnotation{
		Type: FlowAnnotation,
		Parameters: map[string]interface{}{
			"Services": []string{"Cart", "Cart"},
			"Retained": true,
		},
		Location: testLocation(),
	}

	err := validator.Validate(annotation)
	require.Error(t, err)

	var multi *MultipleValidationErrors
	require.ErrorAs(t, err, &multi)
	// Missing Name, duplicate service, unknown parameter
	assert.Len(t, multi.Errors, 3)
}

func TestValidatorApplyDefaults(t *testing.T) {
	validator := NewSchemaValidator(DefaultRegistry())

	annotation := &ParsedAnnotation{
		Type:       FlowAnnotation,
		Parameters: map[string]interface{}{"Name": "Splash"},
		Location:   testLocation(),
	}

	require.NoError(t, validator.ApplyDefaults(annotation))
	assert.Equal(t, []string{}, annotation.GetStringSlice("Services"))
	assert.False(t, annotation.GetBool("FromApp"))
	assert.False(t, annotation.GetBool("Bind"))
	// No default for Module, absence means no provider module
	assert.False(t, annotation.HasParameter("Module"))
}

func TestValidatorTransformParameters(t *testing.T) {
	validator := NewSchemaValidator(DefaultRegistry())

	annotation := &ParsedAnnotation{
		Type: FlowAnnotation,
		Parameters: map[string]interface{}{
			"Name":     "Login",
			"Services": "Cart, Payments",
			"FromApp":  "true",
		},
		Location: testLocation(),
	}

	require.NoError(t, validator.TransformParameters(annotation))
	assert.Equal(t, []string{"Cart", "Payments"}, annotation.GetStringSlice("Services"))
	assert.True(t, annotation.GetBool("FromApp"))
}
