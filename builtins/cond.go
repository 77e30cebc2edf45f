//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package builtins

import (
	lispy "github.com/sheep42/go-lispy"
	"github.com/sheep42/go-lispy/eval"
)

// If implements `if cond then else`: cond must be a Number, then and else
// must be Q-expressions. Only the taken branch is retyped to an
// S-expression and evaluated; the other is discarded unevaluated.
var If = lispy.Builtin("if", func(env *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(
		checkArity("if", args, 3, 3),
		checkKind("if", args, 0, lispy.KindNumber),
		checkKind("if", args, 1, lispy.KindQExpr),
		checkKind("if", args, 2, lispy.KindQExpr),
	); v != nil {
		return v
	}

	if truthy(args[0]) {
		return eval.EvalSExpr(env, args[1].AsSExpr())
	}
	return eval.EvalSExpr(env, args[2].AsSExpr())
})
