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

// checkNumbers reports a type Error unless every argument is a Number.
func checkNumbers(name string, args []*lispy.Value) *lispy.Value {
	for i := range args {
		if v := checkKind(name, args, i, lispy.KindNumber); v != nil {
			return v
		}
	}
	return nil
}

// arithOp is a binary integer operation that may fail (division/modulo by
// zero), reported as the named Error Value.
type arithOp func(a, b int64) (int64, *lispy.Value)

// unaryOp gives a single-argument invocation its own meaning (e.g. `-`
// negates rather than passing its argument through unchanged).
type unaryOp func(a int64) int64

// newArith builds a Builtin Value named name that left-folds op over its
// (all-Number) arguments, starting from the first; a single argument goes
// through unop instead.
func newArith(name string, op arithOp, unop unaryOp) *lispy.Value {
	return lispy.Builtin(name, func(_ *lispy.Environment, args []*lispy.Value) *lispy.Value {
		if v := firstErr(checkArity(name, args, 1, -1), checkNumbers(name, args)); v != nil {
			return v
		}
		acc := args[0].Num
		if len(args) == 1 {
			return lispy.Number(unop(acc))
		}
		for _, a := range args[1:] {
			v, errv := op(acc, a.Num)
			if errv != nil {
				return errv
			}
			acc = v
		}
		return lispy.Number(acc)
	})
}

func identity(a int64) int64 { return a }
func negate(a int64) int64   { return -a }

func addOp(a, b int64) (int64, *lispy.Value) { return a + b, nil }
func subOp(a, b int64) (int64, *lispy.Value) { return a - b, nil }
func mulOp(a, b int64) (int64, *lispy.Value) { return a * b, nil }

func divOp(a, b int64) (int64, *lispy.Value) {
	if b == 0 {
		return 0, lispy.Errorf("Cannot Divide by Zero!")
	}
	return a / b, nil
}

func modOp(a, b int64) (int64, *lispy.Value) {
	if b == 0 {
		return 0, lispy.Errorf("Cannot Divide by Zero!")
	}
	return a % b, nil
}

func powOp(a, b int64) (int64, *lispy.Value) { return intPow(a, b), nil }

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// Add implements `+`.
var Add = newArith("+", addOp, identity)

// AddNamed implements `add`, the word alias of `+`.
var AddNamed = newArith("add", addOp, identity)

// Sub implements `-`; a single argument is negated.
var Sub = newArith("-", subOp, negate)

// SubNamed implements `sub`, the word alias of `-`.
var SubNamed = newArith("sub", subOp, negate)

// Mul implements `*`.
var Mul = newArith("*", mulOp, identity)

// MulNamed implements `mult`, the word alias of `*`.
var MulNamed = newArith("mult", mulOp, identity)

// Div implements `/`; division by zero is a DivideByZero Error.
var Div = newArith("/", divOp, identity)

// DivNamed implements `div`, the word alias of `/`.
var DivNamed = newArith("div", divOp, identity)

// Mod implements `%`; modulo by zero is a DivideByZero Error.
var Mod = newArith("%", modOp, identity)

// ModNamed implements `mod`, the word alias of `%`.
var ModNamed = newArith("mod", modOp, identity)

// Pow implements `^`, integer exponentiation.
var Pow = newArith("^", powOp, identity)

// PowNamed implements `pow`, the word alias of `^`.
var PowNamed = newArith("pow", powOp, identity)
