/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Galach is a small free-text query language with forgiving parsing: anything
typed is a valid query, and anything wrong with it becomes a logged
correction rather than a rejected input.

Features:

- Free-text terms, quoted phrases and @user/#tag shorthand.

- Domain-qualified terms and groups (field:value, field:(a b)).

- AND/OR with AND binding tighter, textual NOT and symbolic "!" negation,
  "+"/"-" inclusivity prefixes.

- A synchronous tokenizer and a shift/reduce parser that never fails: it
  always produces a syntax tree, recording what it had to repair along the
  way.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/krotik/common/termutil"

	"github.com/krotik/galach/config"
	"github.com/krotik/galach/console"
)

func main() {

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s <command>", os.Args[0]))
		fmt.Println()
		fmt.Println("Galach query language tools")
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    console   Interactive galach console")
		fmt.Println("    parse     Parse a single query given on the command line")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	err := flag.CommandLine.Parse(os.Args[1:])

	if len(flag.Args()) > 0 {

		arg := flag.Args()[0]

		if arg == "console" {
			config.LoadConfigFile(config.DefaultConfigFile)
			runConsole()
		} else if arg == "parse" {
			config.LoadConfigFile(config.DefaultConfigFile)
			runParse()
		} else {
			flag.Usage()
		}

	} else if err == nil {
		flag.Usage()
	}
}

/*
runParse implements the "parse" subcommand: parse every remaining
command-line argument, joined with a space, as a single query and print
the result.
*/
func runParse() {
	parseFlags := flag.NewFlagSet("parse", flag.ExitOnError)
	parseFlags.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s parse <query>", os.Args[0]))
		fmt.Println()
	}
	parseFlags.Parse(os.Args[2:])

	query := strings.Join(parseFlags.Args(), " ")

	con := console.NewConsole(os.Stdout)
	if err := con.Run(query); err != nil {
		fmt.Println(err.Error())
	}
}

/*
runConsole runs the interactive galach console on the command line,
grounded on the teacher's RunCliConsole: the same -file/-exec/history
wiring, but driving console.Console instead of a server connection.
*/
func runConsole() {
	var err error

	cmdfile := flag.String("file", "", "Read queries from a file and exit")
	cmdline := flag.String("exec", "", "Execute a single query and exit")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s console [options]", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	flag.CommandLine.Parse(os.Args[2:])

	if *showHelp {
		flag.Usage()
		return
	}

	isExitLine := func(s string) bool {
		return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
	}

	var clt termutil.ConsoleLineTerminal

	clt, err = termutil.NewConsoleLineTerminal(os.Stdout)

	if *cmdfile != "" {
		var file *os.File

		file, err = os.Open(*cmdfile)
		if err == nil {
			defer file.Close()
			clt, err = termutil.AddFileReadingWrapper(clt, file, true)
		}

	} else if *cmdline != "" {
		var buf bytes.Buffer

		buf.WriteString(fmt.Sprintln(*cmdline))
		clt, err = termutil.AddFileReadingWrapper(clt, &buf, true)

	} else {
		histfile := filepath.Join(filepath.Dir(os.Args[0]), config.Str(config.HistoryFile))
		clt, err = termutil.AddHistoryMixin(clt, histfile, isExitLine)
	}

	if err == nil {
		con := console.NewConsole(os.Stdout)

		if err = clt.StartTerm(); err == nil {
			var line string

			defer clt.StopTerm()

			if *cmdfile == "" && *cmdline == "" {
				fmt.Println("Galach console - type 'q' or 'quit' to exit, 'help' for help")
			}

			line, err = clt.NextLine()
			for err == nil && !isExitLine(line) {

				if rerr := con.Run(line); rerr != nil {
					fmt.Fprintln(clt, rerr.Error())
				}

				line, err = clt.NextLine()
			}
		}
	}

	if err != nil {
		fmt.Println(err.Error())
	}
}
