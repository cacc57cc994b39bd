package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopekit/scopegen/internal/models"
	"github.com/scopekit/scopegen/internal/utils"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testGenerator returns a generator that records writes instead of
// touching the filesystem.
func testGenerator() (*Generator, map[string]string) {
	written := make(map[string]string)
	g := NewGenerator(utils.NewQuietDiagnostics())
	g.writeFile = func(path, content string) error {
		written[path] = content
		return nil
	}
	return g, written
}

func TestRunGeneratesFlowFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "login/flows.go", `package login

//scope::flow Login -Services=AccountService -Module=LoginModule
type LoginFlow struct{}

//scope::module
type LoginModule struct{}

//scope::service
type AccountService interface {
	Account() string
}
`)

	g, written := testGenerator()
	err := g.Run(Config{
		Directories: []string{dir},
		ModuleName:  "example.com/app",
	})
	require.NoError(t, err)

	summary := g.GetSummary()
	assert.Equal(t, 1, summary.PackagesProcessed)
	assert.Equal(t, 1, summary.FlowsGenerated)
	require.Len(t, summary.GeneratedFiles, 2)

	screenPath := filepath.Join(dir, "login", "scopegen_login_screen.go")
	modulePath := filepath.Join(dir, "login", "scopegen_login_module.go")
	require.Contains(t, written, screenPath)
	require.Contains(t, written, modulePath)

	assert.Contains(t, written[screenPath], "type BaseLoginScreen struct {")
	assert.Contains(t, written[screenPath], "AccountService AccountService")
	assert.Contains(t, written[modulePath], "scopes.Combine(&LoginModule{})")

	for path, content := range written {
		require.NoError(t, utils.ValidateGoCode(content), "generated file %s must be valid Go", path)
	}
}

func TestRunResolvesAcrossPackages(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "flows/markers.go", `package flows

//scope::flow Checkout -Services=Cart -Module=CheckoutModule
type CheckoutFlow struct{}
`)
	writeSource(t, dir, "providers/module.go", `package providers

//scope::module CheckoutModule
type CheckoutProviders struct{}

//scope::service
type Cart struct{}
`)

	g, written := testGenerator()
	err := g.Run(Config{
		Directories: []string{dir},
		ModuleName:  "example.com/app",
	})
	require.NoError(t, err)

	screenPath := filepath.Join(dir, "flows", "scopegen_checkout_screen.go")
	modulePath := filepath.Join(dir, "flows", "scopegen_checkout_module.go")

	// Cross-package references get package-qualified
	assert.Contains(t, written[screenPath], "Cart *providers.Cart")
	assert.Contains(t, written[modulePath], "scopes.Combine(&providers.CheckoutProviders{})")
}

func TestRunRejectsUnknownModule(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "login/flows.go", `package login

//scope::flow Login -Services=AccountService -Module=MissingModule
type LoginFlow struct{}

//scope::service
type AccountService interface{ Account() string }
`)

	g, _ := testGenerator()
	err := g.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "unknown module")
	assert.Contains(t, genErr.Message, "MissingModule")
}

func TestRunRejectsUnknownService(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "login/flows.go", `package login

//scope::flow Login -Services=Ghost -FromApp
type LoginFlow struct{}
`)

	g, _ := testGenerator()
	err := g.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service")
	assert.Contains(t, err.Error(), "Ghost")
}

func TestRunRejectsDuplicateFlowAcrossPackages(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a/flows.go", `package a

//scope::flow Login -FromApp
type LoginFlow struct{}
`)
	writeSource(t, dir, "b/flows.go", `package b

//scope::flow Login -FromApp
type OtherLoginFlow struct{}
`)

	g, _ := testGenerator()
	err := g.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flow name conflict")
	// Both declaration sites are reported
	assert.Contains(t, err.Error(), "flows.go")
}

func TestRunNoPackages(t *testing.T) {
	dir := t.TempDir()

	g, _ := testGenerator()
	err := g.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No Go packages found")
}

func TestRunFromAppFlow(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "settings/flows.go", `package settings

//scope::flow Settings -Services=Prefs -FromApp
type SettingsFlow struct{}

//scope::service
type Prefs interface{ Get(key string) string }
`)

	g, written := testGenerator()
	err := g.Run(Config{Directories: []string{dir}, ModuleName: "example.com/app"})
	require.NoError(t, err)

	modulePath := filepath.Join(dir, "settings", "scopegen_settings_module.go")
	assert.Contains(t, written[modulePath], "scopes.ModuleFunc(func(*scopes.FlowGraph) error { return nil })")
}
