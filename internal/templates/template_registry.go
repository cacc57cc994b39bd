package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerScreenTemplates()
	registry.registerModuleTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerScreenTemplates registers the generated base screen templates
func (tr *TemplateRegistry) registerScreenTemplates() {
	tr.templates["screen-file"] = `{{template "header" .}}

package {{.PackageName}}

{{.Imports}}
// {{.StructName}} is the generated base screen for the {{.FlowName}} flow.
// Embed it in your screen type and drive it from the host lifecycle.
type {{.StructName}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}
	host  scopes.Host
	graph *scopes.FlowGraph
}

// SetHost attaches the host whose modules extend the {{.FlowName}} flow graph.
func (s *{{.StructName}}) SetHost(host scopes.Host) {
	s.host = host
}

// OnCreate builds the {{.FlowName}} flow graph and injects the screen's services.
func (s *{{.StructName}}) OnCreate(app *scopes.AppGraph) error {
	mods := []scopes.Module{ {{.ModuleFunc}}() }
	if s.host != nil {
		mods = append(mods, s.host.Modules()...)
	}

	graph, err := app.Plus(mods...)
	if err != nil {
		return err
	}
	s.graph = graph
{{range .Fields}}
	if err := graph.Invoke(func(svc {{.Type}}) { s.{{.Name}} = svc }); err != nil {
		s.releaseGraph()
		return err
	}
{{end}}{{if .Bind}}
	if provider, ok := s.host.(scopes.ViewProvider); ok {
		if err := scopes.Bind(s.host, provider.Views()); err != nil {
			s.releaseGraph()
			return err
		}
	}
{{end}}
	return nil
}

// OnDestroy releases the {{.FlowName}} flow graph.
func (s *{{.StructName}}) OnDestroy() {
	s.releaseGraph()
}

// Graph returns the live flow graph, nil before OnCreate.
func (s *{{.StructName}}) Graph() *scopes.FlowGraph {
	return s.graph
}

func (s *{{.StructName}}) releaseGraph() {
	if s.graph != nil {
		s.graph.Release()
		s.graph = nil
	}
}
`
}

// registerModuleTemplates registers the generated flow module templates
func (tr *TemplateRegistry) registerModuleTemplates() {
	tr.templates["header"] = `// Code generated by scopegen. DO NOT EDIT.`

	tr.templates["module-file"] = `{{template "header" .}}

package {{.PackageName}}

{{.Imports}}
// {{.ModuleFunc}} returns the module wiring the {{.FlowName}} flow's services.
func {{.ModuleFunc}}() scopes.Module {
{{if .UserModule}}	return scopes.Combine(&{{.UserModule}}{})
{{else}}	// Services resolve from the application graph, the flow scope
	// falls through to its parent.
	return scopes.ModuleFunc(func(*scopes.FlowGraph) error { return nil })
{{end}}}
`
}

// DefaultTemplateRegistry is the global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
