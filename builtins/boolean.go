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

// truthy treats any non-zero Number as true, matching the `if` builtin's
// reading of its condition argument.
func truthy(v *lispy.Value) bool { return v.Num != 0 }

// And implements `&&`: every argument must be a Number; the result is a
// boolean Number, true only if every argument is non-zero. All arguments
// are already evaluated by the time a builtin sees them, so this does not
// short-circuit evaluation — only the result.
var And = lispy.Builtin("&&", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("&&", args, 1, -1), checkNumbers("&&", args)); v != nil {
		return v
	}
	for _, a := range args {
		if !truthy(a) {
			return lispy.Number(0)
		}
	}
	return lispy.Number(1)
})

// Or implements `||`: a boolean Number, true if any argument is non-zero.
var Or = lispy.Builtin("||", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("||", args, 1, -1), checkNumbers("||", args)); v != nil {
		return v
	}
	for _, a := range args {
		if truthy(a) {
			return lispy.Number(1)
		}
	}
	return lispy.Number(0)
})

// Not implements `!`: the boolean negation of its single Number argument.
var Not = lispy.Builtin("!", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("!", args, 1, 1), checkNumbers("!", args)); v != nil {
		return v
	}
	return boolNumber(!truthy(args[0]))
})
