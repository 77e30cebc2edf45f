//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package lispy

// Equal compares two Values structurally: Numbers by value, Symbols and
// Errors by string, Builtins by name and native-pointer identity, Lambdas by
// equality of formals and body (the closure frame is not compared), and
// collections elementwise.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.Num == b.Num
	case KindSymbol:
		return a.Sym == b.Sym
	case KindError:
		return a.Err == b.Err
	case KindSExpr, KindQExpr:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case KindBuiltin:
		return a.BuiltinName == b.BuiltinName &&
			builtinPointer(a.BuiltinFn) == builtinPointer(b.BuiltinFn)
	case KindLambda:
		return Equal(a.Fn.Formals, b.Fn.Formals) && Equal(a.Fn.Body, b.Fn.Body)
	default:
		return false
	}
}
