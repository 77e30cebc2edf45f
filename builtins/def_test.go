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
	"testing"

	"github.com/stretchr/testify/assert"

	lispy "github.com/sheep42/go-lispy"
)

func TestDefBindsGlobal(t *testing.T) {
	root := lispy.NewEnvironment()
	child := lispy.NewChildEnvironment(root)

	syms := lispy.QExpr().Append(lispy.Symbol("x"))
	Def.BuiltinFn(child, []*lispy.Value{syms, lispy.Number(5)})

	assert.Equal(t, int64(5), root.Get("x").Num)
}

func TestPutBindsLocalOnly(t *testing.T) {
	root := lispy.NewEnvironment()
	child := lispy.NewChildEnvironment(root)

	syms := lispy.QExpr().Append(lispy.Symbol("x"))
	Put.BuiltinFn(child, []*lispy.Value{syms, lispy.Number(5)})

	assert.Equal(t, int64(5), child.Get("x").Num)
	assert.True(t, root.Get("x").IsError())
}

func TestDefMultipleSymbols(t *testing.T) {
	env := lispy.NewEnvironment()
	syms := lispy.QExpr().Append(lispy.Symbol("a")).Append(lispy.Symbol("b"))
	Def.BuiltinFn(env, []*lispy.Value{syms, lispy.Number(1), lispy.Number(2)})

	assert.Equal(t, int64(1), env.Get("a").Num)
	assert.Equal(t, int64(2), env.Get("b").Num)
}

func TestDefMismatchedCountErrors(t *testing.T) {
	env := lispy.NewEnvironment()
	syms := lispy.QExpr().Append(lispy.Symbol("a")).Append(lispy.Symbol("b"))
	r := Def.BuiltinFn(env, []*lispy.Value{syms, lispy.Number(1)})
	assert.True(t, r.IsError())
}

func TestDefNonSymbolErrors(t *testing.T) {
	env := lispy.NewEnvironment()
	syms := lispy.QExpr().Append(lispy.Number(1))
	r := Def.BuiltinFn(env, []*lispy.Value{syms, lispy.Number(1)})
	assert.True(t, r.IsError())
}
