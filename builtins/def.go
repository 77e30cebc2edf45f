//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package builtins

import lispy "github.com/sheep42/go-lispy"

// bindVars implements the shared shape of `def` and `=`: args[0] is a
// Q-expression of Symbols, and the remaining args are the values to bind to
// them pairwise, in order; bind is called once per (symbol, value) pair.
func bindVars(name string, args []*lispy.Value, bind func(sym string, val *lispy.Value)) *lispy.Value {
	if v := firstErr(checkArity(name, args, 1, -1), checkKind(name, args, 0, lispy.KindQExpr)); v != nil {
		return v
	}

	syms := args[0]
	for _, s := range syms.Cells {
		if !s.IsSymbol() {
			return lispy.Errorf(
				"Function '%s' cannot define non-symbol. Got %s, Expected %s",
				name, s.Kind, lispy.KindSymbol)
		}
	}

	values := args[1:]
	if len(syms.Cells) != len(values) {
		return lispy.Errorf(
			"Function '%s' passed too many arguments for symbols. Got %d, Expected %d",
			name, len(values), len(syms.Cells))
	}

	for i, s := range syms.Cells {
		bind(s.Sym, values[i])
	}
	return lispy.SExpr()
}

// Def implements `def`: binds one or more symbols in the global environment.
var Def = lispy.Builtin("def", func(env *lispy.Environment, args []*lispy.Value) *lispy.Value {
	return bindVars("def", args, func(sym string, val *lispy.Value) {
		env.DefGlobal(sym, val)
	})
})

// Put implements `=`: binds one or more symbols in the local environment.
var Put = lispy.Builtin("=", func(env *lispy.Environment, args []*lispy.Value) *lispy.Value {
	return bindVars("=", args, func(sym string, val *lispy.Value) {
		env.SetLocal(sym, val)
	})
})
