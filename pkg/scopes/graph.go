package scopes

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/dig"
)

// ErrGraphReleased is returned when a flow graph is used after Release.
var ErrGraphReleased = errors.New("scopes: flow graph has been released")

// AppGraph is the application-level dependency graph. Screens derive scoped
// flow graphs from it with Plus; constructors registered on the application
// graph are visible to every flow subgraph.
type AppGraph struct {
	container *dig.Container
}

// NewAppGraph creates an empty application graph.
func NewAppGraph(opts ...dig.Option) *AppGraph {
	return &AppGraph{
		container: dig.New(opts...),
	}
}

// Provide registers a constructor on the application graph.
func (a *AppGraph) Provide(constructor interface{}, opts ...dig.ProvideOption) error {
	return a.container.Provide(constructor, opts...)
}

// Invoke runs fn with its arguments resolved from the application graph.
func (a *AppGraph) Invoke(fn interface{}) error {
	return a.container.Invoke(fn)
}

// Plus derives a scoped subgraph from the application graph and applies the
// given modules to it. Anything the subgraph does not provide itself resolves
// from the application graph. Scoped instances live only as long as the flow
// graph; dropping the graph with Release drops them too.
func (a *AppGraph) Plus(mods ...Module) (*FlowGraph, error) {
	id := uuid.NewString()
	flow := &FlowGraph{
		id:    id,
		scope: a.container.Scope("flow-" + id),
	}

	for _, m := range mods {
		if m == nil {
			continue
		}
		if err := m.Apply(flow); err != nil {
			return nil, fmt.Errorf("failed to apply module to flow graph %s: %w", id, err)
		}
	}

	return flow, nil
}

// FlowGraph is a scoped dependency subgraph derived from an AppGraph. The
// generated base screens create one in OnCreate and release it in OnDestroy.
type FlowGraph struct {
	id       string
	scope    *dig.Scope
	released bool
}

// ID returns the unique identity of this flow graph instance.
func (g *FlowGraph) ID() string {
	return g.id
}

// Provide registers a constructor scoped to this flow graph.
func (g *FlowGraph) Provide(constructor interface{}, opts ...dig.ProvideOption) error {
	if g.released {
		return ErrGraphReleased
	}
	return g.scope.Provide(constructor, opts...)
}

// Invoke runs fn with its arguments resolved from the flow graph, falling
// through to the parent application graph for anything not provided here.
func (g *FlowGraph) Invoke(fn interface{}) error {
	if g.released {
		return ErrGraphReleased
	}
	return g.scope.Invoke(fn)
}

// Release drops the scoped subgraph. The graph is unusable afterwards; any
// Provide or Invoke returns ErrGraphReleased.
func (g *FlowGraph) Release() {
	g.released = true
	g.scope = nil
}

// Released reports whether Release has been called.
func (g *FlowGraph) Released() bool {
	return g.released
}
