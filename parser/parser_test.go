//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	root, err := Parse("t", "")
	require.NoError(t, err)
	assert.Equal(t, TagSExpr, root.Tag)
	assert.Empty(t, root.Children)
}

func TestParseNumberAndSymbol(t *testing.T) {
	root, err := Parse("t", "42 foo")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, TagNumber, root.Children[0].Tag)
	assert.Equal(t, "42", root.Children[0].Text)
	assert.Equal(t, TagSymbol, root.Children[1].Tag)
	assert.Equal(t, "foo", root.Children[1].Text)
}

func TestParseNegativeNumber(t *testing.T) {
	root, err := Parse("t", "-7")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, TagNumber, root.Children[0].Tag)
}

func TestParseSExprAndQExpr(t *testing.T) {
	root, err := Parse("t", "(+ 1 2) {1 2 3}")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	sexpr := root.Children[0]
	assert.Equal(t, TagSExpr, sexpr.Tag)
	require.Len(t, sexpr.Children, 3)
	assert.Equal(t, "+", sexpr.Children[0].Text)

	qexpr := root.Children[1]
	assert.Equal(t, TagQExpr, qexpr.Tag)
	assert.Len(t, qexpr.Children, 3)
}

func TestParseNested(t *testing.T) {
	root, err := Parse("t", "(+ 1 (* 2 3))")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	inner := root.Children[0].Children[2]
	assert.Equal(t, TagSExpr, inner.Tag)
	assert.Len(t, inner.Children, 3)
}

func TestParseUnmatchedParen(t *testing.T) {
	_, err := Parse("t", "(+ 1 2")
	require.Error(t, err)
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	_, err := Parse("t", ")")
	require.Error(t, err)
}

func TestParseWhitespaceIsIgnored(t *testing.T) {
	root, err := Parse("t", "  (  +   1  2 )  \n")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Len(t, root.Children[0].Children, 3)
}
