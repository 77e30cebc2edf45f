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

// Eq implements `==`, structural equality over any two Values.
var Eq = lispy.Builtin("==", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("==", args, 2, 2)); v != nil {
		return v
	}
	return boolNumber(lispy.Equal(args[0], args[1]))
})

// Neq implements `!=`, the negation of `==`.
var Neq = lispy.Builtin("!=", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("!=", args, 2, 2)); v != nil {
		return v
	}
	return boolNumber(!lispy.Equal(args[0], args[1]))
})
