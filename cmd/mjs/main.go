// Command mjs parses and evaluates source written in this ES1-era
// dialect, following the teacher's cmd/jsgo shape: -e for inline
// source, a file argument otherwise, -ast to dump the parsed program
// instead of running it, -trace to echo each top-level statement's
// completion as it runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ezhangle/mjs/ast"
	"github.com/ezhangle/mjs/driver"
	"github.com/ezhangle/mjs/runtime"
)

func main() {
	evalCode := flag.String("e", "", "evaluate inline source")
	dumpAST := flag.Bool("ast", false, "parse and print the program instead of running it")
	trace := flag.Bool("trace", false, "print each top-level statement's completion as it runs")
	flag.Parse()

	var source string
	switch {
	case *evalCode != "":
		source = *evalCode
	case flag.NArg() > 0:
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "mjs: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	default:
		fmt.Fprintf(os.Stderr, "usage: mjs [-ast] [-trace] [-e code] [file]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *dumpAST {
		program, err := driver.Parse(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mjs: %v\n", err)
			os.Exit(1)
		}
		for _, stmt := range program.Statements {
			fmt.Println(ast.PrintStatement(stmt))
		}
		return
	}

	var traceFn driver.Trace
	if *trace {
		traceFn = func(stmt ast.Statement, c runtime.Completion) {
			fmt.Printf("%s => %s\n", ast.PrintStatement(stmt), completionString(c))
		}
	}

	result, err := driver.Run(source, traceFn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mjs: %v\n", err)
		os.Exit(1)
	}
	if result != nil && result.Type != runtime.Undefined {
		s, err := runtime.ToString(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mjs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(s)
	}
}

func completionString(c runtime.Completion) string {
	switch c.Kind {
	case runtime.Break:
		return "break"
	case runtime.Continue:
		return "continue"
	case runtime.Return:
		s, err := runtime.ToString(c.Value)
		if err != nil {
			return "return <error>"
		}
		return "return " + s
	default:
		s, err := runtime.ToString(c.Value)
		if err != nil {
			return "<error>"
		}
		return s
	}
}
