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

func TestPrintEnvListsBindings(t *testing.T) {
	env := lispy.NewEnvironment()
	env.SetLocal("x", lispy.Number(1))

	r := PrintEnv.BuiltinFn(env, nil)
	assert.True(t, r.IsQExpr())
	assert.Len(t, r.Cells, 1)
}

func TestUserErrorCarriesMessage(t *testing.T) {
	msg := lispy.QExpr().Append(lispy.Symbol("custom")).Append(lispy.Symbol("failure"))
	r := UserError.BuiltinFn(lispy.NewEnvironment(), []*lispy.Value{msg})
	assert.True(t, r.IsError())
	assert.Contains(t, r.Err, "custom failure")
}
