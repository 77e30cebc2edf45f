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

func TestIfTakesTrueBranch(t *testing.T) {
	env := lispy.NewEnvironment()
	thenQ := lispy.QExpr().Append(lispy.Number(1))
	elseQ := lispy.QExpr().Append(lispy.Number(2))
	r := If.BuiltinFn(env, []*lispy.Value{lispy.Number(1), thenQ, elseQ})
	assert.Equal(t, int64(1), r.Num)
}

func TestIfTakesFalseBranch(t *testing.T) {
	env := lispy.NewEnvironment()
	thenQ := lispy.QExpr().Append(lispy.Number(1))
	elseQ := lispy.QExpr().Append(lispy.Number(2))
	r := If.BuiltinFn(env, []*lispy.Value{lispy.Number(0), thenQ, elseQ})
	assert.Equal(t, int64(2), r.Num)
}

func TestIfDoesNotEvaluateDiscardedBranch(t *testing.T) {
	env := lispy.NewEnvironment()
	thenQ := lispy.QExpr().Append(lispy.Number(1))
	badElse := lispy.QExpr().Append(lispy.Symbol("never-bound"))
	r := If.BuiltinFn(env, []*lispy.Value{lispy.Number(1), thenQ, badElse})
	assert.Equal(t, int64(1), r.Num)
}

func TestIfRejectsNonQExprBranches(t *testing.T) {
	env := lispy.NewEnvironment()
	r := If.BuiltinFn(env, []*lispy.Value{lispy.Number(1), lispy.Number(1), lispy.QExpr()})
	assert.True(t, r.IsError())
}
