//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package lispy

import "sync"

// DefaultGlobalSize is the base size of a freshly created global environment.
const DefaultGlobalSize = 128

// Environment maps symbol names to Values, chaining to a parent for lexical
// scope lookup. A Lambda owns its own Environment (its captured closure
// frame); when called, its parent is set to the caller's environment for
// the duration of lookups, then persists for further partial application.
type Environment struct {
	mu     sync.RWMutex
	parent *Environment
	vars   map[string]*Value
}

// NewEnvironment creates a new, parentless (global/root) environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*Value, DefaultGlobalSize)}
}

// NewChildEnvironment creates a new environment with the given parent.
// parent may be nil; SetParent can attach one later (used by lambda calls).
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[string]*Value, 8)}
}

// Parent returns the environment's parent, or nil at the root.
func (e *Environment) Parent() *Environment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.parent
}

// SetParent rebinds the environment's parent link. Used by a Lambda call to
// point its frame at the calling environment for the duration of the call.
func (e *Environment) SetParent(parent *Environment) {
	e.mu.Lock()
	e.parent = parent
	e.mu.Unlock()
}

// Get searches the current frame, then recurses into the parent chain. At
// the root, a miss returns an Unbound Symbol Error Value.
//
// The returned Value is a fresh copy of the stored binding, never the
// stored Value itself: a lookup hands the caller its own independent
// owned Value (mirroring spec.md's "the original symbol Value is
// consumed"), so that later mutation — most importantly a Lambda call
// binding further arguments into its formals/environment during partial
// application — can never reach back and corrupt the environment's
// binding, or a second, unrelated lookup of the same name.
func (e *Environment) Get(name string) *Value {
	e.mu.RLock()
	val, found := e.vars[name]
	parent := e.parent
	e.mu.RUnlock()
	if found {
		return val.Copy()
	}
	if parent != nil {
		return parent.Get(name)
	}
	return Errorf("Unbound Symbol: '%s'", name)
}

// SetLocal binds name to a deep copy of val in the current frame only,
// overwriting any existing local binding.
func (e *Environment) SetLocal(name string, val *Value) {
	e.mu.Lock()
	e.vars[name] = val.Copy()
	e.mu.Unlock()
}

// DefGlobal walks to the root of the environment chain and binds name there.
func (e *Environment) DefGlobal(name string, val *Value) {
	root := e
	for {
		root.mu.RLock()
		parent := root.parent
		root.mu.RUnlock()
		if parent == nil {
			break
		}
		root = parent
	}
	root.SetLocal(name, val)
}

// Copy produces an independent frame with the same parent reference and
// deep-copied entries. Used when duplicating a Lambda.
func (e *Environment) Copy() *Environment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := &Environment{parent: e.parent, vars: make(map[string]*Value, len(e.vars))}
	for k, v := range e.vars {
		cp.vars[k] = v.Copy()
	}
	return cp
}

// Bindings returns a Q-expression of (symbol value) Q-expression pairs for
// every local binding, in unspecified order.
func (e *Environment) Bindings() *Value {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := QExpr()
	for k, v := range e.vars {
		pair := QExpr()
		pair.Append(Symbol(k))
		pair.Append(v.Copy())
		out.Append(pair)
	}
	return out
}

// Destroy releases this frame's bindings. It does not recurse into parent,
// matching spec.md's environment lifecycle: Go's garbage collector, not
// this method, is what actually reclaims memory; Destroy exists so a large
// map can be dropped eagerly and so the API mirrors the reference model.
func (e *Environment) Destroy() {
	e.mu.Lock()
	e.vars = nil
	e.mu.Unlock()
}
