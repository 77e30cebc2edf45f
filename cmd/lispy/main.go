//-----------------------------------------------------------------------------
// This file is part of go-lispy.
//
// go-lispy is licensed under the MIT license. Please see file LICENSE for
// your rights and obligations under this license.
//
// SPDX-License-Identifier: MIT
//-----------------------------------------------------------------------------

package main

import (
	"bufio"
	"fmt"
	"os"

	lispy "github.com/sheep42/go-lispy"
	"github.com/sheep42/go-lispy/builtins"
	"github.com/sheep42/go-lispy/interp"
	"github.com/sheep42/go-lispy/internal/diag"
)

func main() {
	env := lispy.NewEnvironment()
	builtins.Register(env)

	fmt.Println("Lispy Version 0.1.0")
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	repl(env)
}

func repl(env *lispy.Environment) {
	trace := diag.TraceEnabled()
	scanner := bufio.NewScanner(os.Stdin)
	for i := 1; ; i++ {
		fmt.Print("lispy> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if trace {
			fmt.Printf(";< %s\n", line)
		}
		result := interp.Eval(env, fmt.Sprintf("repl:%d", i), line)
		result.Print(os.Stdout)
		fmt.Println()
	}
}
