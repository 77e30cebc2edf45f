//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package builtins

import lispy "github.com/sheep42/go-lispy"

// All is every builtin, keyed by the symbol it is bound under. Arithmetic
// and list operations that have both a symbolic and a word name appear
// twice, once per key, each copy reporting errors under the name it was
// actually invoked as.
var All = map[string]*lispy.Value{
	"list": List,
	"head": Head,
	"tail": Tail,
	"init": Init,
	"len":  Len,
	"cons": Cons,
	"join": Join,
	"eval": Eval,

	"+":   Add,
	"add": AddNamed,
	"-":   Sub,
	"sub": SubNamed,
	"*":   Mul,
	"mult": MulNamed,
	"/":   Div,
	"div": DivNamed,
	"%":   Mod,
	"mod": ModNamed,
	"^":   Pow,
	"pow": PowNamed,

	">":  Greater,
	">=": GreaterEqual,
	"<":  Less,
	"<=": LessEqual,

	"==": Eq,
	"!=": Neq,

	"&&": And,
	"||": Or,
	"!":  Not,

	"if":  If,
	"def": Def,
	"=":   Put,
	"\\":  Lambda,

	"print-env": PrintEnv,
	"error":     UserError,
}

// Register binds every builtin into env under its name, as a global
// definition.
func Register(env *lispy.Environment) {
	for name, fn := range All {
		env.DefGlobal(name, fn)
	}
}
