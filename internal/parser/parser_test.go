package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopekit/scopegen/internal/models"
)

func TestParseSourceFlowMarker(t *testing.T) {
	source := `package login

//scope::flow Login -Services=AccountService -Module=LoginModule -Bind
type LoginFlow struct{}
`
	metadata, err := NewParser().ParseSource("flows.go", source)
	require.NoError(t, err)

	require.Len(t, metadata.Flows, 1)
	flow := metadata.Flows[0]
	assert.Equal(t, "Login", flow.Name)
	assert.Equal(t, "LoginFlow", flow.StructName)
	assert.Equal(t, []string{"AccountService"}, flow.Services)
	assert.Equal(t, "LoginModule", flow.ModuleRef)
	assert.True(t, flow.Bind)
	assert.False(t, flow.FromApp)
	assert.Equal(t, "login", flow.PackageName)
	assert.Equal(t, "flows.go", flow.FileName)
	assert.Equal(t, 3, flow.Line)
}

func TestParseSourceModuleAndService(t *testing.T) {
	source := `package login

//scope::module
type LoginModule struct{}

//scope::service
type AccountService interface {
	Account() string
}

//scope::service -Name=Store
type SessionStore struct{}
`
	metadata, err := NewParser().ParseSource("login.go", source)
	require.NoError(t, err)

	require.Len(t, metadata.Modules, 1)
	assert.Equal(t, "LoginModule", metadata.Modules[0].Name)
	assert.Equal(t, "LoginModule", metadata.Modules[0].StructName)

	require.Len(t, metadata.Services, 2)
	assert.Equal(t, "AccountService", metadata.Services[0].Name)
	assert.Equal(t, models.ServiceKindInterface, metadata.Services[0].Kind)
	assert.Equal(t, "Store", metadata.Services[1].Name)
	assert.Equal(t, "SessionStore", metadata.Services[1].TypeName)
	assert.Equal(t, models.ServiceKindStruct, metadata.Services[1].Kind)
}

func TestParseSourceGroupedTypeDecl(t *testing.T) {
	source := `package app

type (
	//scope::service
	Prefs struct{}
)
`
	metadata, err := NewParser().ParseSource("app.go", source)
	require.NoError(t, err)
	require.Len(t, metadata.Services, 1)
	assert.Equal(t, "Prefs", metadata.Services[0].Name)
}

func TestParseSourceIgnoresPlainComments(t *testing.T) {
	source := `package app

// Login drives the login scopes.
type Login struct{}

// scoped helpers live here
func helper() {}
`
	metadata, err := NewParser().ParseSource("app.go", source)
	require.NoError(t, err)
	assert.True(t, metadata.IsEmpty())
}

func TestParseSourceRejectsFlowOnInterface(t *testing.T) {
	source := `package app

//scope::flow Login -FromApp
type LoginFlow interface{}
`
	_, err := NewParser().ParseSource("app.go", source)
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrorTypeAnnotationSyntax, genErr.Type)
	assert.Contains(t, genErr.Message, "must be attached to a struct")
}

func TestParseSourceRejectsBadAnnotation(t *testing.T) {
	source := `package app

//scope::flow Login -Services=AccountService
type LoginFlow struct{}
`
	_, err := NewParser().ParseSource("app.go", source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no provider")
}

func TestParseDirectory(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "flows.go", `package checkout

//scope::flow Checkout -Services=Cart -Module=CheckoutModule
type CheckoutFlow struct{}
`)
	writeFile(t, dir, "module.go", `package checkout

//scope::module
type CheckoutModule struct{}

//scope::service
type Cart struct{}
`)
	// Generated output and tests must not be rescanned
	writeFile(t, dir, "scopegen_checkout_screen.go", `package checkout

//scope::flow Stale -FromApp
type staleMarker struct{}
`)
	writeFile(t, dir, "checkout_test.go", `package checkout

//scope::service
type testOnly struct{}
`)

	metadata, err := NewParser().ParseDirectory(dir)
	require.NoError(t, err)

	require.Len(t, metadata.Flows, 1)
	assert.Equal(t, "Checkout", metadata.Flows[0].Name)
	assert.Equal(t, dir, metadata.Flows[0].PackagePath)
	require.Len(t, metadata.Modules, 1)
	require.Len(t, metadata.Services, 1)
}

func TestParseDirectoryReparsesChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flows.go")
	writeFile(t, dir, "flows.go", `package login

//scope::flow Login -FromApp
type LoginFlow struct{}
`)

	p := NewParser()

	metadata, err := p.ParseDirectory(dir)
	require.NoError(t, err)
	require.Len(t, metadata.Flows, 1)
	assert.Equal(t, "Login", metadata.Flows[0].Name)

	// Unchanged rescan hits the reader cache
	metadata, err = p.ParseDirectory(dir)
	require.NoError(t, err)
	require.Len(t, metadata.Flows, 1)
	assert.Equal(t, "Login", metadata.Flows[0].Name)

	writeFile(t, dir, "flows.go", `package login

//scope::flow Signup -FromApp
type SignupFlow struct{}
`)
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	metadata, err = p.ParseDirectory(dir)
	require.NoError(t, err)
	require.Len(t, metadata.Flows, 1)
	assert.Equal(t, "Signup", metadata.Flows[0].Name)
}

func TestParseDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := NewParser().ParseDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Go packages")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
