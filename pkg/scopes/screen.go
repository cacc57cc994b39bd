package scopes

import "fmt"

// Screen is the lifecycle contract satisfied by the generated base screens.
// OnCreate builds the flow's scoped subgraph and fills the injected service
// fields; OnDestroy releases the subgraph.
type Screen interface {
	OnCreate(app *AppGraph) error
	OnDestroy()
}

// Host is the concrete screen embedding a generated base screen. Its Modules
// are merged into the flow graph during OnCreate, after the generated flow
// module.
type Host interface {
	Modules() []Module
}

// ViewProvider is implemented by hosts that expose a view registry. Flows
// declared with -Bind run the view binder against it during OnCreate.
type ViewProvider interface {
	Views() ViewRegistry
}

// Manager drives screen lifecycle against a single application graph. It is
// a minimal stand-in for a platform lifecycle owner: Start corresponds to
// screen creation, Finish to destruction.
type Manager struct {
	app    *AppGraph
	active []Screen
}

// NewManager creates a manager bound to the given application graph.
func NewManager(app *AppGraph) *Manager {
	return &Manager{app: app}
}

// Start runs the screen's OnCreate against the application graph and tracks
// it as active.
func (m *Manager) Start(s Screen) error {
	if err := s.OnCreate(m.app); err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	m.active = append(m.active, s)
	return nil
}

// Finish destroys the screen and stops tracking it. Finishing a screen that
// was never started is a no-op.
func (m *Manager) Finish(s Screen) {
	for i, candidate := range m.active {
		if candidate == s {
			m.active = append(m.active[:i], m.active[i+1:]...)
			s.OnDestroy()
			return
		}
	}
}

// FinishAll destroys all active screens in reverse start order.
func (m *Manager) FinishAll() {
	for i := len(m.active) - 1; i >= 0; i-- {
		m.active[i].OnDestroy()
	}
	m.active = nil
}

// Active returns the number of screens currently started.
func (m *Manager) Active() int {
	return len(m.active)
}
