//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

// Package interp ties the parser, reader, and evaluator together behind a
// single entry point. It exists because the root lispy package, which
// parser/reader/eval all import for Value and Environment, cannot import
// any of them back without creating a cycle.
package interp

import (
	lispy "github.com/sheep42/go-lispy"
	"github.com/sheep42/go-lispy/eval"
	"github.com/sheep42/go-lispy/parser"
	"github.com/sheep42/go-lispy/reader"
)

// Eval parses source (labelled name, for diagnostics), converts it to a
// Value tree, and evaluates the whole line as a single S-expression
// application against env. A parse error is reported as an Error Value
// rather than surfaced as a Go error, so callers can treat the return value
// uniformly with any other evaluation outcome.
func Eval(env *lispy.Environment, name, source string) *lispy.Value {
	root, err := parser.Parse(name, source)
	if err != nil {
		return lispy.Errorf("%s", err.Error())
	}

	program := reader.Read(root)
	return eval.EvalSExpr(env, program)
}
