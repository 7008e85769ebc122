package value

// Context is the mutable mapping from identifier name to Value that a
// compiled expression is evaluated against. A Context is flat, with no
// parent chaining: the language has no user-defined functions or block
// scoping, only a single context plus, during filter evaluation, a
// second "relative" value representing the current element.
type Context struct {
	vars  map[string]Value
	dirty map[string]bool
}

// NewContext builds a Context from an initial set of bindings. The map is
// copied; later mutation of the source map does not affect the Context.
func NewContext(initial map[string]Value) *Context {
	vars := make(map[string]Value, len(initial))
	for k, v := range initial {
		vars[k] = v
	}
	return &Context{vars: vars, dirty: make(map[string]bool)}
}

// Get looks up name, returning Undefined{} when absent.
func (c *Context) Get(name string) Value {
	if v, ok := c.vars[name]; ok {
		return v
	}
	return Undefined{}
}

// Set binds name to v, overwriting any prior binding, and marks name as
// mutated for Mutations.
func (c *Context) Set(name string, v Value) {
	c.vars[name] = v
	c.dirty[name] = true
}

// Mutations returns the bindings written by Set since the Context was
// built, so a caller can propagate an expression's assignments back
// into the mapping it supplied.
func (c *Context) Mutations() map[string]Value {
	out := make(map[string]Value, len(c.dirty))
	for name := range c.dirty {
		out[name] = c.vars[name]
	}
	return out
}

// Snapshot returns the current bindings as a map, for returning the
// mutated context back through the public facade.
func (c *Context) Snapshot() map[string]Value {
	out := make(map[string]Value, len(c.vars))
	for k, v := range c.vars {
		out[k] = v
	}
	return out
}
