//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package lispy

import (
	"io"
	"strconv"
	"strings"
)

// String returns the printed representation of v.
func (v *Value) String() string {
	var sb strings.Builder
	v.Print(&sb)
	return sb.String()
}

// Print writes the printed representation of v to w: Number as decimal,
// Symbol as its text, Error as its text prefixed with "Error: ", SExpr as
// "(child … child)", QExpr as "{child … child}", Builtin as "<function>",
// Lambda as "(\ formals body)".
func (v *Value) Print(w io.Writer) {
	if v == nil {
		io.WriteString(w, "()")
		return
	}
	switch v.Kind {
	case KindNumber:
		io.WriteString(w, strconv.FormatInt(v.Num, 10))
	case KindSymbol:
		io.WriteString(w, v.Sym)
	case KindError:
		io.WriteString(w, "Error: ")
		io.WriteString(w, v.Err)
	case KindSExpr:
		printCells(w, '(', ')', v.Cells)
	case KindQExpr:
		printCells(w, '{', '}', v.Cells)
	case KindBuiltin:
		io.WriteString(w, "<function>")
	case KindLambda:
		io.WriteString(w, "(\\ ")
		v.Fn.Formals.Print(w)
		io.WriteString(w, " ")
		v.Fn.Body.Print(w)
		io.WriteString(w, ")")
	}
}

func printCells(w io.Writer, open, close byte, cells []*Value) {
	w.Write([]byte{open})
	for i, c := range cells {
		if i > 0 {
			io.WriteString(w, " ")
		}
		c.Print(w)
	}
	w.Write([]byte{close})
}
