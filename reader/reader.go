//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package reader converts a parsed syntax tree (parser.Node) into a Value.
// It never evaluates.
package reader

import (
	"strconv"

	lispy "github.com/sheep42/go-lispy"
	"github.com/sheep42/go-lispy/parser"
)

// Read converts a parser.Node into a Value: a number node becomes a Number
// (an out-of-range literal becomes an Error("Invalid Number")), a symbol
// node becomes a Symbol, and an sexpr/qexpr node becomes the matching list
// Value populated by reading its children recursively.
func Read(n *parser.Node) *lispy.Value {
	switch n.Tag {
	case parser.TagNumber:
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return lispy.Errorf("Invalid Number")
		}
		return lispy.Number(i)
	case parser.TagSymbol:
		return lispy.Symbol(n.Text)
	case parser.TagSExpr:
		return readList(lispy.SExpr(), n)
	case parser.TagQExpr:
		return readList(lispy.QExpr(), n)
	default:
		return lispy.Errorf("unknown syntax node %q", n.Tag)
	}
}

func readList(v *lispy.Value, n *parser.Node) *lispy.Value {
	for _, c := range n.Children {
		v.Append(Read(c))
	}
	return v
}
