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

// boolNumber converts a Go bool to the Number 1 (true) or 0 (false) that
// Lispy uses in place of a dedicated boolean type.
func boolNumber(b bool) *lispy.Value {
	if b {
		return lispy.Number(1)
	}
	return lispy.Number(0)
}

// newCmp builds a Builtin Value named name that takes exactly two Numbers
// and reports cmp(a, b) as a boolean Number.
func newCmp(name string, cmp func(a, b int64) bool) *lispy.Value {
	return lispy.Builtin(name, func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
		if v := firstErr(checkArity(name, args, 2, 2), checkNumbers(name, args)); v != nil {
			return v
		}
		return boolNumber(cmp(args[0].Num, args[1].Num))
	})
}

// Greater implements `>`.
var Greater = newCmp(">", func(a, b int64) bool { return a > b })

// GreaterEqual implements `>=`.
var GreaterEqual = newCmp(">=", func(a, b int64) bool { return a >= b })

// Less implements `<`.
var Less = newCmp("<", func(a, b int64) bool { return a < b })

// LessEqual implements `<=`.
var LessEqual = newCmp("<=", func(a, b int64) bool { return a <= b })
