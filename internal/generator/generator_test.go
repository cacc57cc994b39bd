package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopekit/scopegen/internal/models"
)

func loginFlow() *models.FlowMetadata {
	return &models.FlowMetadata{
		Name:        "Login",
		StructName:  "LoginFlow",
		Services:    []string{"AccountService", "SessionStore"},
		ModuleRef:   "LoginModule",
		PackageName: "login",
		PackagePath: "internal/login",
		FileName:    "internal/login/flows.go",
		Line:        3,
		ResolvedServices: []models.ServiceMetadata{
			{Name: "AccountService", TypeName: "AccountService", Kind: models.ServiceKindInterface, PackageName: "login"},
			{Name: "SessionStore", TypeName: "SessionStore", Kind: models.ServiceKindStruct, PackageName: "login"},
		},
		ResolvedModule: &models.ProviderModuleMetadata{
			Name: "LoginModule", StructName: "LoginProviders", PackageName: "login",
		},
	}
}

func TestGenerateFlow(t *testing.T) {
	output, err := NewGenerator().GenerateFlow(loginFlow())
	require.NoError(t, err)

	require.NotNil(t, output.ScreenFile)
	require.NotNil(t, output.ModuleFile)
	assert.Len(t, output.Files(), 2)

	assert.Equal(t, "internal/login/scopegen_login_screen.go", output.ScreenFile.FilePath)
	assert.Equal(t, "internal/login/scopegen_login_module.go", output.ModuleFile.FilePath)

	screen := output.ScreenFile.Content
	assert.Contains(t, screen, "// Code generated by scopegen. DO NOT EDIT.")
	assert.Contains(t, screen, "package login")
	assert.Contains(t, screen, "type BaseLoginScreen struct {")
	assert.Contains(t, screen, "AccountService AccountService")
	assert.Contains(t, screen, "SessionStore *SessionStore")
	assert.Contains(t, screen, "LoginModule()")

	module := output.ModuleFile.Content
	assert.Contains(t, module, "func LoginModule() scopes.Module {")
	assert.Contains(t, module, "scopes.Combine(&LoginProviders{})")
}

func TestGenerateFlowFromApp(t *testing.T) {
	flow := &models.FlowMetadata{
		Name:        "Settings",
		StructName:  "SettingsFlow",
		Services:    []string{"Prefs"},
		FromApp:     true,
		PackageName: "settings",
		PackagePath: "internal/settings",
		ResolvedServices: []models.ServiceMetadata{
			{Name: "Prefs", TypeName: "Prefs", Kind: models.ServiceKindInterface, PackageName: "settings"},
		},
	}

	output, err := NewGenerator().GenerateFlow(flow)
	require.NoError(t, err)

	// No provider module, the flow scope falls through to the app graph
	assert.Contains(t, output.ModuleFile.Content, "scopes.ModuleFunc(func(*scopes.FlowGraph) error { return nil })")
	assert.NotContains(t, output.ModuleFile.Content, "Combine")
}

func TestGenerateFlowCrossPackageService(t *testing.T) {
	flow := loginFlow()
	flow.ResolvedServices = []models.ServiceMetadata{
		{
			Name:       "Analytics",
			TypeName:   "Tracker",
			Kind:       models.ServiceKindInterface,
			PackageName: "metrics",
			ImportPath: "example.com/app/internal/metrics",
		},
	}

	output, err := NewGenerator().GenerateFlow(flow)
	require.NoError(t, err)

	screen := output.ScreenFile.Content
	assert.Contains(t, screen, `"example.com/app/internal/metrics"`)
	assert.Contains(t, screen, "Analytics metrics.Tracker")
}

func TestGenerateFlowBind(t *testing.T) {
	flow := loginFlow()
	flow.Bind = true

	output, err := NewGenerator().GenerateFlow(flow)
	require.NoError(t, err)
	assert.Contains(t, output.ScreenFile.Content, "scopes.Bind(s.host, provider.Views())")
}

func TestGenerateFlowRejectsInvalid(t *testing.T) {
	_, err := NewGenerator().GenerateFlow(nil)
	assert.Error(t, err)

	_, err = NewGenerator().GenerateFlow(&models.FlowMetadata{})
	assert.Error(t, err)
}

func TestNamingHelpers(t *testing.T) {
	assert.Equal(t, "BaseCheckoutScreen", ScreenStructName("Checkout"))
	assert.Equal(t, "CheckoutModule", ModuleFuncName("Checkout"))
	assert.Equal(t, "scopegen_checkout_screen.go", ScreenFileName("Checkout"))
	assert.Equal(t, "scopegen_checkout_module.go", ModuleFileName("Checkout"))
}
