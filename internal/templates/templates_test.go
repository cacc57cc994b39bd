package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScreen(t *testing.T) {
	imports := NewImportManager()
	imports.Add(ScopesImportPath)

	content, err := RenderScreen(ScreenTemplateData{
		PackageName: "login",
		FlowName:    "Login",
		StructName:  "BaseLoginScreen",
		ModuleFunc:  "LoginModule",
		Imports:     imports.Generate(),
		Fields: []ScreenField{
			{Name: "AccountService", Type: "AccountService"},
			{Name: "Store", Type: "*SessionStore"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, content, "// Code generated by scopegen. DO NOT EDIT.")
	assert.Contains(t, content, "package login")
	assert.Contains(t, content, `import "github.com/scopekit/scopegen/pkg/scopes"`)
	assert.Contains(t, content, "type BaseLoginScreen struct {")
	assert.Contains(t, content, "AccountService AccountService")
	assert.Contains(t, content, "Store *SessionStore")
	assert.Contains(t, content, "func (s *BaseLoginScreen) OnCreate(app *scopes.AppGraph) error {")
	assert.Contains(t, content, "LoginModule()")
	assert.Contains(t, content, "graph.Invoke(func(svc AccountService) { s.AccountService = svc })")
	assert.Contains(t, content, "graph.Invoke(func(svc *SessionStore) { s.Store = svc })")
	assert.Contains(t, content, "func (s *BaseLoginScreen) OnDestroy() {")
	assert.Contains(t, content, "func (s *BaseLoginScreen) Graph() *scopes.FlowGraph {")

	// Bind glue only appears when requested
	assert.NotContains(t, content, "scopes.Bind")
}

func TestRenderScreenWithBind(t *testing.T) {
	content, err := RenderScreen(ScreenTemplateData{
		PackageName: "checkout",
		FlowName:    "Checkout",
		StructName:  "BaseCheckoutScreen",
		ModuleFunc:  "CheckoutModule",
		Bind:        true,
	})
	require.NoError(t, err)

	assert.Contains(t, content, "scopes.ViewProvider")
	assert.Contains(t, content, "scopes.Bind(s.host, provider.Views())")
}

func TestRenderModuleWithUserModule(t *testing.T) {
	content, err := RenderModule(ModuleTemplateData{
		PackageName: "login",
		FlowName:    "Login",
		ModuleFunc:  "LoginModule",
		UserModule:  "LoginProviders",
	})
	require.NoError(t, err)

	assert.Contains(t, content, "func LoginModule() scopes.Module {")
	assert.Contains(t, content, "return scopes.Combine(&LoginProviders{})")
	assert.NotContains(t, content, "falls through")
}

func TestRenderModuleFromApp(t *testing.T) {
	content, err := RenderModule(ModuleTemplateData{
		PackageName: "settings",
		FlowName:    "Settings",
		ModuleFunc:  "SettingsModule",
	})
	require.NoError(t, err)

	assert.Contains(t, content, "falls through")
	assert.Contains(t, content, "return scopes.ModuleFunc(func(*scopes.FlowGraph) error { return nil })")
}

func TestImportManager(t *testing.T) {
	im := NewImportManager()
	assert.Empty(t, im.Generate())

	im.Add(ScopesImportPath)
	assert.Equal(t, "import \"github.com/scopekit/scopegen/pkg/scopes\"\n", im.Generate())

	im.Add("example.com/app/services")
	im.Add("example.com/app/services") // duplicates collapse
	im.AddAliased("svc2", "example.com/other/services")

	block := im.Generate()
	assert.Contains(t, block, "import (\n")
	assert.Contains(t, block, "\t\"example.com/app/services\"\n")
	assert.Contains(t, block, "\tsvc2 \"example.com/other/services\"\n")
	assert.Contains(t, block, "\t\"github.com/scopekit/scopegen/pkg/scopes\"\n")
}
