//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package eval implements the Lispy evaluator: symbol resolution,
// S-expression application, and lambda invocation with partial
// application. Errors are never Go errors — every path returns a Value,
// and an Error Value short-circuits any S-expression it appears in.
package eval

import lispy "github.com/sheep42/go-lispy"

// VariadicMarker would be the symbol that, in the customary Lisp rule,
// marks the formal after it as absorbing the remaining arguments. The
// final stage of this grammar admits '&' as an ordinary symbol character,
// and the reference implementation never special-cases it in Call; per
// spec this is the safe default, so it is not treated specially here.
const VariadicMarker = "&"

// Eval reduces v in env. A Symbol is looked up (consuming the original
// Value); an S-expression is reduced by EvalSExpr; every other variant
// (Number, Error, Q-expression, Function) is returned unchanged — in
// particular, a Q-expression is quoted data and evaluating it is a no-op.
func Eval(env *lispy.Environment, v *lispy.Value) *lispy.Value {
	if v.IsSymbol() {
		return env.Get(v.Sym)
	}
	if v.IsSExpr() {
		return EvalSExpr(env, v)
	}
	return v
}

// EvalSExpr reduces the S-expression s: every child is evaluated in order;
// if any child is an Error, that Error is returned immediately; an empty
// result stays the empty S-expression; a single remaining child is taken
// and *re-evaluated* (the final-stage behavior, which matters when that
// child is itself a symbol resolving to a function, or a further
// S-expression); otherwise the first child must be a Function, which is
// called with the rest as its argument list.
func EvalSExpr(env *lispy.Environment, s *lispy.Value) *lispy.Value {
	for i, child := range s.Cells {
		s.Cells[i] = Eval(env, child)
	}
	for _, child := range s.Cells {
		if child.IsError() {
			return child
		}
	}
	if len(s.Cells) == 0 {
		return s
	}
	if len(s.Cells) == 1 {
		return Eval(env, s.Take(0))
	}

	fn := s.Pop(0)
	if !fn.IsFunction() {
		return lispy.Errorf(
			"S-Expression starts with incorrect type. Got %s, Expected Function",
			fn.Kind)
	}
	return Call(env, fn, s.Cells)
}

// Call invokes fn with args, which are its already-evaluated arguments.
// A Builtin is invoked directly. A Lambda binds formals to args one at a
// time: if it runs out of formals before args are exhausted, it reports
// too many arguments; once every formal is bound, its body is evaluated
// with its environment's parent set to the caller's env; if args run out
// before every formal is bound, a *copy* of the partially applied Lambda
// is returned — so that two partial applications from the same source
// Lambda never share mutated state.
func Call(env *lispy.Environment, fn *lispy.Value, args []*lispy.Value) *lispy.Value {
	if fn.Kind == lispy.KindBuiltin {
		return fn.BuiltinFn(env, args)
	}

	// Bind into a copy so the caller's fn keeps its formals and frame.
	fn = fn.Copy()
	lambda := fn.Fn
	given, total := len(args), len(lambda.Formals.Cells)
	for len(args) > 0 {
		if len(lambda.Formals.Cells) == 0 {
			return lispy.Errorf(
				"Function passed too many arguments. Got %d, Expected %d", given, total)
		}

		formalSym := lambda.Formals.Pop(0)
		argVal := args[0]
		args = args[1:]
		lambda.Env.SetLocal(formalSym.Sym, argVal)
	}

	if len(lambda.Formals.Cells) == 0 {
		lambda.Env.SetParent(env)
		body := lispy.SExpr()
		for _, e := range lambda.Body.Cells {
			body.Append(e.Copy())
		}
		return EvalSExpr(lambda.Env, body)
	}

	// Partial application: return an independent copy of the Lambda so
	// that further calls from the original, unsaturated fn start fresh.
	return fn.Copy()
}
