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

func TestAnd(t *testing.T) {
	assert.Equal(t, int64(1), callBuiltin(t, And, lispy.Number(1), lispy.Number(2)).Num)
	assert.Equal(t, int64(0), callBuiltin(t, And, lispy.Number(1), lispy.Number(0)).Num)
}

func TestOr(t *testing.T) {
	assert.Equal(t, int64(1), callBuiltin(t, Or, lispy.Number(0), lispy.Number(1)).Num)
	assert.Equal(t, int64(0), callBuiltin(t, Or, lispy.Number(0), lispy.Number(0)).Num)
}

func TestNot(t *testing.T) {
	assert.Equal(t, int64(0), callBuiltin(t, Not, lispy.Number(1)).Num)
	assert.Equal(t, int64(1), callBuiltin(t, Not, lispy.Number(0)).Num)
}
