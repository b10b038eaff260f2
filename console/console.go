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
Package console implements the interactive galach console: a line goes in,
a parsed syntax tree (or a named command's effect) comes out. The command
dispatch shape - a map of name to Command, a fallback when nothing
matches - mirrors eliasdb's console.CommandConsole/Command pair, stripped
of everything specific to talking to a running server (auth, HTTP
requests, export buffers): there is no server here, only a parser to
exercise.
*/
package console

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/krotik/galach/config"
	"github.com/krotik/galach/correction"
	"github.com/krotik/galach/generator/native"
	"github.com/krotik/galach/lexer"
	"github.com/krotik/galach/parser"
)

/*
Command describes a single named console command.
*/
type Command interface {

	/*
		Name returns the command name (as it should be typed).
	*/
	Name() string

	/*
		ShortDescription returns a short, single line description.
	*/
	ShortDescription() string

	/*
		LongDescription returns an extensive, possibly multi-line description.
	*/
	LongDescription() string

	/*
		Run executes the command.
	*/
	Run(args []string, c *Console) error
}

/*
Console is a single session of the galach console: it holds the registered
commands and the small amount of display state (whether to annotate
tokens with their source position) a user can toggle at runtime.
*/
type Console struct {
	out           io.Writer
	CommandMap    map[string]Command
	showPositions bool
}

/*
NewConsole creates a Console that writes to out.
*/
func NewConsole(out io.Writer) *Console {
	c := &Console{
		out:        out,
		CommandMap: make(map[string]Command),
	}

	c.CommandMap[CommandHelp] = &CmdHelp{}
	c.CommandMap[CommandVer] = &CmdVer{}
	c.CommandMap[CommandTokens] = &CmdTokens{}
	c.CommandMap[CommandRender] = &CmdRender{}

	if config.Config == nil {
		config.LoadDefaultConfig()
	}
	c.showPositions = config.Bool(config.ShowTokenPositions)

	return c
}

/*
Out returns the writer this console prints to.
*/
func (c *Console) Out() io.Writer {
	return c.out
}

/*
ShowPositions reports whether token dumps should include source offsets.
*/
func (c *Console) ShowPositions() bool {
	return c.showPositions
}

/*
SetShowPositions sets whether token dumps should include source offsets.
*/
func (c *Console) SetShowPositions(show bool) {
	c.showPositions = show
}

/*
Commands returns a sorted list of all registered commands.
*/
func (c *Console) Commands() []Command {
	var res []Command
	for _, cmd := range c.CommandMap {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}

/*
Run executes a single line of console input. A line whose first word
matches a registered command name runs that command; anything else is
treated as a Galach query and is tokenized, parsed and printed.
*/
func (c *Console) Run(line string) error {
	fields := strings.Fields(line)

	if len(fields) > 0 {
		name := fields[0]
		if name == "?" {
			name = CommandHelp
		}
		if cmd, ok := c.CommandMap[name]; ok {
			return cmd.Run(fields[1:], c)
		}
	}

	return c.runQuery(line)
}

/*
runQuery tokenizes and parses line as Galach and prints the resulting
syntax tree and any corrections the parser made.
*/
func (c *Console) runQuery(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	seq := lexer.Tokenize(line)
	tree := parser.Parse(seq)

	fmt.Fprint(c.out, tree.Root.String())

	max := config.Int(config.MaxCorrectionsShown)
	printCorrections(c.out, tree.Corrections, max)

	return nil
}

/*
printCorrections prints up to max corrections, noting how many were
omitted when the log is longer than that.
*/
func printCorrections(out io.Writer, log correction.Log, max int64) {
	if len(log) == 0 {
		return
	}

	fmt.Fprintln(out, "Corrections:")

	shown := int64(len(log))
	if max >= 0 && shown > max {
		shown = max
	}

	for _, cor := range log[:shown] {
		lexemes := make([]string, len(cor.Tokens))
		for i, t := range cor.Tokens {
			lexemes[i] = strconv.Quote(t.Lexeme())
		}
		fmt.Fprintf(out, "  %s %s\n", cor.Kind, strings.Join(lexemes, " "))
	}

	if shown < int64(len(log)) {
		fmt.Fprintf(out, "  ... %d more\n", int64(len(log))-shown)
	}
}

/*
Render renders tree's root with the Native generator.
*/
func Render(tree parser.SyntaxTree) string {
	gen := native.New()
	return gen.Visit(tree.Root, gen)
}
