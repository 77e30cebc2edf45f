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

// Lambda implements `\ {formals} {body}`, constructing a user-defined
// function. formals must be a Q-expression of Symbols (the variadic marker
// `&` is accepted as an ordinary symbol, per the evaluator's documented
// choice not to special-case it); body is stored unevaluated.
var Lambda = lispy.Builtin("\\", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(
		checkArity("\\", args, 2, 2),
		checkKind("\\", args, 0, lispy.KindQExpr),
		checkKind("\\", args, 1, lispy.KindQExpr),
	); v != nil {
		return v
	}

	for _, s := range args[0].Cells {
		if !s.IsSymbol() {
			return lispy.Errorf(
				"Cannot define lambda. Got %s, Expected %s", s.Kind, lispy.KindSymbol)
		}
	}

	return lispy.NewLambda(args[0].Copy(), args[1].Copy(), nil)
})
