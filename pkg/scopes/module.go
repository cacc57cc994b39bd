package scopes

// Module installs providers into a flow graph. Flow modules are typically
// generated by scopegen; applications hand-write adapter-provider modules and
// reference them from a //scope::flow marker, or contribute extras through a
// host's Modules hook.
type Module interface {
	Apply(*FlowGraph) error
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(*FlowGraph) error

// Apply implements Module.
func (f ModuleFunc) Apply(g *FlowGraph) error {
	return f(g)
}

// Combine merges several modules into one. Modules are applied in order and
// the first failure aborts the rest.
func Combine(mods ...Module) Module {
	return ModuleFunc(func(g *FlowGraph) error {
		for _, m := range mods {
			if m == nil {
				continue
			}
			if err := m.Apply(g); err != nil {
				return err
			}
		}
		return nil
	})
}
