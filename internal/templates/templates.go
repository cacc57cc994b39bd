package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// ScopesImportPath is the runtime package every generated file depends on
const ScopesImportPath = "github.com/scopekit/scopegen/pkg/scopes"

// ScreenField is one injected service field of a generated base screen
type ScreenField struct {
	Name string // field name, the service identifier
	Type string // Go type expression, pointer for struct services
}

// ScreenTemplateData feeds the screen-file template
type ScreenTemplateData struct {
	PackageName string
	FlowName    string
	StructName  string // Base<Flow>Screen
	ModuleFunc  string // <Flow>Module
	Imports     string // rendered import block
	Fields      []ScreenField
	Bind        bool
}

// ModuleTemplateData feeds the module-file template
type ModuleTemplateData struct {
	PackageName string
	FlowName    string
	ModuleFunc  string // <Flow>Module
	Imports     string // rendered import block
	UserModule  string // provider struct expression, empty when none
}

// RenderScreen renders the base screen file for a flow
func RenderScreen(data ScreenTemplateData) (string, error) {
	return render("screen-file", data)
}

// RenderModule renders the flow module file
func RenderModule(data ModuleTemplateData) (string, error) {
	return render("module-file", data)
}

// render executes a named template with the shared header attached
func render(name string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(DefaultTemplateRegistry.MustGet(name))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	if _, err := tmpl.New("header").Parse(DefaultTemplateRegistry.MustGet("header")); err != nil {
		return "", fmt.Errorf("failed to parse header template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
