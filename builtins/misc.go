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

// PrintEnv implements `print-env`, returning a Q-expression of (symbol
// value) pairs for every binding visible in the current environment's local
// frame — a debugging aid, grounded on the reference implementation's own
// environment dump.
var PrintEnv = lispy.Builtin("print-env", func(env *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("print-env", args, 0, 0)); v != nil {
		return v
	}
	return env.Bindings()
})

// UserError implements `error`, letting a Lispy program raise its own Error
// Value carrying an arbitrary message.
var UserError = lispy.Builtin("error", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("error", args, 1, 1), checkKind("error", args, 0, lispy.KindQExpr)); v != nil {
		return v
	}
	return lispy.Errorf("%s", args[0].String())
})
