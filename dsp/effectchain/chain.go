package effectchain

import (
	"errors"
	"fmt"
)

// ErrUnknownEffect is returned when a node references an unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

type nodeRuntime struct {
	params  Params
	runtime Runtime
}

// Chain runs a list of effect nodes in series on mono blocks. It is
// independent of any host application.
type Chain struct {
	ctx      Context
	registry *Registry
	nodes    []nodeRuntime
}

// New creates a Chain with the given context and registry.
func New(ctx Context, registry *Registry) *Chain {
	return &Chain{ctx: ctx, registry: registry}
}

// SetContext updates the chain context and reconfigures every node with its
// current parameters.
func (c *Chain) SetContext(ctx Context) error {
	c.ctx = ctx

	for _, n := range c.nodes {
		if err := n.runtime.Configure(ctx, n.params); err != nil {
			return fmt.Errorf("effectchain: configure node %q (%s): %w", n.params.ID, n.params.Type, err)
		}
	}

	return nil
}

// Context returns the current chain context.
func (c *Chain) Context() Context {
	return c.ctx
}

// Len returns the number of loaded nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Load parses a JSON chain description and synchronizes node runtimes.
// Runtimes whose node ID and type are unchanged are kept and reconfigured so
// their signal history survives parameter edits. On error the node list is
// unchanged, though kept runtimes may already hold the new parameters. An
// empty string clears the chain.
func (c *Chain) Load(jsonChain string) error {
	params, err := parseChain(jsonChain)
	if err != nil {
		return err
	}

	existing := make(map[string]Runtime, len(c.nodes))
	for _, n := range c.nodes {
		existing[n.params.ID+"\x00"+n.params.Type] = n.runtime
	}

	next := make([]nodeRuntime, 0, len(params))
	for _, p := range params {
		rt := existing[p.ID+"\x00"+p.Type]
		if rt == nil {
			rt, err = c.newRuntime(p.Type)
			if err != nil {
				return fmt.Errorf("effectchain: node %q: %w", p.ID, err)
			}
		}

		if err := rt.Configure(c.ctx, p); err != nil {
			return fmt.Errorf("effectchain: configure node %q (%s): %w", p.ID, p.Type, err)
		}

		next = append(next, nodeRuntime{params: p, runtime: rt})
	}

	c.nodes = next

	return nil
}

// Process applies every non-bypassed node to block in place, in order.
func (c *Chain) Process(block []float64) {
	if len(block) == 0 {
		return
	}

	for _, n := range c.nodes {
		if n.params.Bypassed {
			continue
		}
		n.runtime.Process(block)
	}
}

// Reset clears the signal history of every node that keeps one.
func (c *Chain) Reset() {
	for _, n := range c.nodes {
		if r, ok := n.runtime.(Resetter); ok {
			r.Reset()
		}
	}
}

// Clear removes all nodes.
func (c *Chain) Clear() {
	c.nodes = nil
}

// NodeRuntime returns the Runtime for the given node ID, or nil.
func (c *Chain) NodeRuntime(nodeID string) Runtime {
	for _, n := range c.nodes {
		if n.params.ID == nodeID {
			return n.runtime
		}
	}

	return nil
}

func (c *Chain) newRuntime(effectType string) (Runtime, error) {
	factory := c.registry.Lookup(effectType)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, effectType)
	}

	rt, err := factory(c.ctx)
	if err != nil {
		return nil, err
	}

	if rt == nil {
		return nil, fmt.Errorf("effectchain: factory for %s returned nil runtime", effectType)
	}

	return rt, nil
}
