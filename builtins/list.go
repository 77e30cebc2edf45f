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

// List retypes its (already evaluated) arguments into a Q-expression:
// (list 1 2 3) => {1 2 3}.
var List = lispy.Builtin("list", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	out := lispy.QExpr()
	for _, a := range args {
		out.Append(a)
	}
	return out
})

// Head returns a Q-expression containing only the first element of its
// single, non-empty Q-expression argument.
var Head = lispy.Builtin("head", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("head", args, 1, 1)); v != nil {
		return v
	}
	if v := checkNonEmptyQExpr("head", args, 0); v != nil {
		return v
	}
	return lispy.QExpr().Append(args[0].Cells[0])
})

// Tail returns a Q-expression containing all but the first element of its
// single, non-empty Q-expression argument.
var Tail = lispy.Builtin("tail", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("tail", args, 1, 1)); v != nil {
		return v
	}
	if v := checkNonEmptyQExpr("tail", args, 0); v != nil {
		return v
	}
	out := lispy.QExpr()
	for _, c := range args[0].Cells[1:] {
		out.Append(c)
	}
	return out
})

// Init returns a Q-expression containing all but the last element of its
// single, non-empty Q-expression argument — the companion to Head/Tail.
var Init = lispy.Builtin("init", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("init", args, 1, 1)); v != nil {
		return v
	}
	if v := checkNonEmptyQExpr("init", args, 0); v != nil {
		return v
	}
	out := lispy.QExpr()
	for _, c := range args[0].Cells[:len(args[0].Cells)-1] {
		out.Append(c)
	}
	return out
})

// Len counts the elements of its single Q-expression argument.
var Len = lispy.Builtin("len", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("len", args, 1, 1), checkKind("len", args, 0, lispy.KindQExpr)); v != nil {
		return v
	}
	return lispy.Number(int64(len(args[0].Cells)))
})

// Cons prepends x onto the Q-expression q: (cons 1 {2 3}) => {1 2 3}.
var Cons = lispy.Builtin("cons", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("cons", args, 2, 2), checkKind("cons", args, 1, lispy.KindQExpr)); v != nil {
		return v
	}
	out := lispy.QExpr().Append(args[0])
	out.Join(args[1])
	return out
})

// Join concatenates one or more Q-expressions into a single Q-expression,
// preserving order.
var Join = lispy.Builtin("join", func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("join", args, 1, -1)); v != nil {
		return v
	}
	out := lispy.QExpr()
	for i, a := range args {
		if v := checkKind("join", args, i, lispy.KindQExpr); v != nil {
			return v
		}
		out.Join(a)
	}
	return out
})

// Eval retypes its single Q-expression argument to an S-expression and
// evaluates it — the only way quoted data becomes applicable again.
var Eval = lispy.Builtin("eval", func(env *lispy.Environment, args []*lispy.Value) *lispy.Value {
	if v := firstErr(checkArity("eval", args, 1, 1), checkKind("eval", args, 0, lispy.KindQExpr)); v != nil {
		return v
	}
	return eval.EvalSExpr(env, args[0].AsSExpr())
})
