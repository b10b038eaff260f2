/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package console

import (
	"fmt"
	"strings"

	"github.com/krotik/galach/lexer"
	"github.com/krotik/galach/parser"
)

/*
Command name constants.
*/
const (
	CommandHelp   = "help"
	CommandVer    = "ver"
	CommandTokens = "tokens"
	CommandRender = "render"
)

/*
Version is the galach version string reported by the ver command.
*/
var Version = "0.1.0"

// help
// ====

/*
CmdHelp lists all registered commands or describes a single one.
*/
type CmdHelp struct{}

func (c *CmdHelp) Name() string             { return CommandHelp }
func (c *CmdHelp) ShortDescription() string { return "Display this help message" }
func (c *CmdHelp) LongDescription() string {
	return "help lists every available command. help <command> shows that command's description."
}

func (c *CmdHelp) Run(args []string, con *Console) error {
	if len(args) > 0 {
		cmd, ok := con.CommandMap[args[0]]
		if !ok {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprintln(con.Out(), cmd.LongDescription())
		return nil
	}

	for _, cmd := range con.Commands() {
		fmt.Fprintf(con.Out(), "%-10s %s\n", cmd.Name(), cmd.ShortDescription())
	}
	fmt.Fprintln(con.Out(), "Anything else is tokenized and parsed as a galach query.")

	return nil
}

// ver
// ===

/*
CmdVer prints the galach version.
*/
type CmdVer struct{}

func (c *CmdVer) Name() string             { return CommandVer }
func (c *CmdVer) ShortDescription() string { return "Display the galach version" }
func (c *CmdVer) LongDescription() string  { return "ver prints the current galach version." }

func (c *CmdVer) Run(args []string, con *Console) error {
	fmt.Fprintln(con.Out(), "galach", Version)
	return nil
}

// tokens
// ======

/*
CmdTokens tokenizes its argument and prints the resulting token sequence,
or toggles whether query results also show token positions when called
with no arguments.
*/
type CmdTokens struct{}

func (c *CmdTokens) Name() string             { return CommandTokens }
func (c *CmdTokens) ShortDescription() string { return "Tokenize input, or toggle position display" }
func (c *CmdTokens) LongDescription() string {
	return "tokens <query> prints the token sequence for <query>. tokens with no " +
		"argument toggles whether source positions are shown."
}

func (c *CmdTokens) Run(args []string, con *Console) error {
	if len(args) == 0 {
		con.SetShowPositions(!con.ShowPositions())
		fmt.Fprintln(con.Out(), "show token positions:", con.ShowPositions())
		return nil
	}

	seq := lexer.Tokenize(strings.Join(args, " "))
	for _, t := range seq.Tokens {
		if con.ShowPositions() {
			fmt.Fprintln(con.Out(), t.String())
		} else {
			fmt.Fprintf(con.Out(), "%s(%q)\n", t.Type(), t.Lexeme())
		}
	}

	return nil
}

// render
// ======

/*
CmdRender parses its argument and prints the Native generator's
round-tripped rendering of the result.
*/
type CmdRender struct{}

func (c *CmdRender) Name() string             { return CommandRender }
func (c *CmdRender) ShortDescription() string { return "Parse input and render it back with Native" }
func (c *CmdRender) LongDescription() string {
	return "render <query> parses <query> and prints what the Native generator renders it back to."
}

func (c *CmdRender) Run(args []string, con *Console) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: render <query>")
	}

	query := strings.Join(args, " ")
	seq := lexer.Tokenize(query)
	tree := parser.Parse(seq)

	fmt.Fprintln(con.Out(), Render(tree))

	return nil
}
