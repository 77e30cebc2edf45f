//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package builtins implements the native functions of the Lispy language:
// list primitives, arithmetic, comparison, equality, conditional branching,
// variable definition, and the lambda constructor. Every builtin is
// responsible for producing a Value — never a Go error — and for ceasing
// to reference its argument list once it returns.
package builtins

import (
	"strconv"

	lispy "github.com/sheep42/go-lispy"
)

// checkArity reports an arity Error unless len(args) is within [min, max].
// max < 0 means unbounded.
func checkArity(name string, args []*lispy.Value, min, max int) *lispy.Value {
	if len(args) < min || (max >= 0 && len(args) > max) {
		var expected string
		switch {
		case max < 0:
			expected = strconv.Itoa(min) + " or more"
		case max != min:
			expected = strconv.Itoa(max)
		default:
			expected = strconv.Itoa(min)
		}
		return lispy.Errorf(
			"Function '%s' passed incorrect number of arguments. Got %d, Expected %s",
			name, len(args), expected)
	}
	return nil
}

// checkKind reports a type Error unless args[i] has the given kind. A
// missing args[i] is not reported here; checkArity reports it.
func checkKind(name string, args []*lispy.Value, i int, kind lispy.Kind) *lispy.Value {
	if i >= len(args) {
		return nil
	}
	if args[i].Kind != kind {
		return lispy.Errorf(
			"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s",
			name, i, args[i].Kind, kind)
	}
	return nil
}

// checkNonEmptyQExpr reports an EmptyExpr Error unless args[i] is a
// non-empty Q-expression.
func checkNonEmptyQExpr(name string, args []*lispy.Value, i int) *lispy.Value {
	if v := checkKind(name, args, i, lispy.KindQExpr); v != nil {
		return v
	}
	if len(args[i].Cells) == 0 {
		return lispy.Errorf("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

// firstErr returns the first non-nil Value among checks, or nil.
func firstErr(checks ...*lispy.Value) *lispy.Value {
	for _, c := range checks {
		if c != nil {
			return c
		}
	}
	return nil
}
