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

func TestEqAndNeq(t *testing.T) {
	assert.Equal(t, int64(1), callBuiltin(t, Eq, lispy.Number(1), lispy.Number(1)).Num)
	assert.Equal(t, int64(0), callBuiltin(t, Eq, lispy.Number(1), lispy.Number(2)).Num)
	assert.Equal(t, int64(1), callBuiltin(t, Neq, lispy.Number(1), lispy.Number(2)).Num)
}

func TestEqOnLists(t *testing.T) {
	a := lispy.QExpr().Append(lispy.Number(1))
	b := lispy.QExpr().Append(lispy.Number(1))
	assert.Equal(t, int64(1), callBuiltin(t, Eq, a, b).Num)
}
