package object

// Environment is a lexical scope: a name-to-value mapping plus an
// optional parent link. Lookups walk the parent chain; Set always
// binds in the current frame (spec.md §3 — there is no assignment to
// an outer frame, only shadowing). A Function captures the
// Environment live at its definition site by shared reference, so
// writes made to that environment after the function's creation but
// before a call remain visible to the closure (spec.md §8's closure-
// capture invariant).
type Environment struct {
	store  map[string]Object
	parent *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child environment parented to
// outer, as used for each function-call frame.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), parent: outer}
}

// Get looks up name in this frame, then recursively in parent frames,
// returning ok=false if it is bound nowhere in the chain.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.parent != nil {
		return e.parent.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this frame only.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
