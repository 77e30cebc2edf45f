//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package lispy

// Append adds child as the last element of the list Value v (an S- or
// Q-expression) and returns v.
func (v *Value) Append(child *Value) *Value {
	v.Cells = append(v.Cells, child)
	return v
}

// Pop removes and returns the child at index i, shifting trailing children
// left. It panics if v is not a list or i is out of range — callers check
// arity and type before calling Pop.
func (v *Value) Pop(i int) *Value {
	child := v.Cells[i]
	v.Cells = append(v.Cells[:i], v.Cells[i+1:]...)
	return child
}

// Take pops the child at index i and discards the rest of v. It is used
// when a single-element list is reduced to that element.
func (v *Value) Take(i int) *Value {
	child := v.Pop(i)
	v.Cells = nil
	return child
}

// Copy produces a structurally independent clone of v. Lambdas clone their
// formals, body, and entire captured environment, preserving any
// partial-application state.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindNumber:
		return Number(v.Num)
	case KindSymbol:
		return Symbol(v.Sym)
	case KindError:
		return &Value{Kind: KindError, Err: v.Err}
	case KindSExpr, KindQExpr:
		cp := &Value{Kind: v.Kind, Cells: make([]*Value, len(v.Cells))}
		for i, c := range v.Cells {
			cp.Cells[i] = c.Copy()
		}
		return cp
	case KindBuiltin:
		return &Value{Kind: KindBuiltin, BuiltinName: v.BuiltinName, BuiltinFn: v.BuiltinFn}
	case KindLambda:
		return &Value{Kind: KindLambda, Fn: &Lambda{
			Formals: v.Fn.Formals.Copy(),
			Body:    v.Fn.Body.Copy(),
			Env:     v.Fn.Env.Copy(),
		}}
	default:
		return v
	}
}

// Join concatenates the cells of other onto the end of v, preserving order,
// and returns v. Both must be Q-expressions; callers enforce that.
func (v *Value) Join(other *Value) *Value {
	v.Cells = append(v.Cells, other.Cells...)
	return v
}
