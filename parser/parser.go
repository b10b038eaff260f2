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
Package parser implements the Galach shift/reduce parser. Parse never
fails on malformed input: every defect it encounters is recorded as a
correction.Correction and the offending tokens are discarded. The only
panic paths are internal-consistency assertions (the check at the end of
Parse and a few stack-shape checks during reduction), which signal a bug
in the parser itself rather than a problem with the input.
*/
package parser

import (
	"github.com/krotik/common/errorutil"

	"github.com/krotik/galach/ast"
	"github.com/krotik/galach/correction"
	"github.com/krotik/galach/token"
)

/*
SyntaxTree is the result of a parse: the root Query node, the full original
token sequence, and the list of corrections the parser made along the way.
*/
type SyntaxTree struct {
	Root        *ast.Query
	Tokens      token.Sequence
	Corrections correction.Log
}

/*
stackEntry is a single entry on the parse stack: either a token awaiting
an operand, or a completed node.
*/
type stackEntry struct {
	tok  token.Token
	node ast.Node
}

func tokenEntry(t token.Token) stackEntry { return stackEntry{tok: t} }
func nodeEntry(n ast.Node) stackEntry     { return stackEntry{node: n} }

func (e stackEntry) isToken() bool { return e.tok != nil }
func (e stackEntry) isNode() bool  { return e.node != nil }

/*
groupPlaceholder is pushed through the Group reduction-group table by
shiftGroupEnd. It carries no data of its own; reduceGroup recognizes it by
type and does the actual work of assembling (or discarding) the group.
Once reduceGroup has run, the placeholder is gone - replaced by a real
*ast.Group or nothing at all - so it never otherwise appears in the tree.
*/
type groupPlaceholder struct{}

func (*groupPlaceholder) Kind() ast.Kind { return ast.KindGroup }
func (*groupPlaceholder) String() string { return "<group placeholder>\n" }

/*
parser holds all state for a single Parse invocation: the explicit stack,
the correction log, and the input token queue with its read cursor.
*/
type parser struct {
	stack []stackEntry
	log   correction.Log
	input []token.Token
	pos   int
}

/*
Parse runs the shift/reduce loop over tokens and returns the resulting
SyntaxTree. It never returns an error.
*/
func Parse(seq token.Sequence) SyntaxTree {
	p := &parser{}

	p.input = balanceGroups(seq.Tokens, &p.log)

	for p.pos < len(p.input) {
		p.shift(p.advance())
	}

	p.finalize()

	errorutil.AssertTrue(len(p.stack) == 1,
		"parser finalization left more than one entry on the stack")
	errorutil.AssertTrue(p.stack[0].isNode() && p.stack[0].node.Kind() == ast.KindQuery,
		"parser finalization did not produce a single Query root")

	root := p.stack[0].node.(*ast.Query)

	return SyntaxTree{Root: root, Tokens: seq, Corrections: p.log}
}

// Stack helpers
// =============

func (p *parser) push(e stackEntry) {
	p.stack = append(p.stack, e)
}

func (p *parser) peekStackEntry() (stackEntry, bool) {
	if len(p.stack) == 0 {
		return stackEntry{}, false
	}
	return p.stack[len(p.stack)-1], true
}

func (p *parser) popStack() stackEntry {
	e := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return e
}

/*
popToken pops the stack top, which must be a token.
*/
func (p *parser) popToken() token.Token {
	e := p.popStack()
	errorutil.AssertTrue(e.isToken(), "expected a token on top of the parser stack")
	return e.tok
}

// Input queue helpers
// ====================

/*
peek looks at the next unconsumed input token without advancing the
cursor, optionally skipping over whitespace first.
*/
func (p *parser) peek(skipWhitespace bool) (token.Token, bool) {
	i := p.pos
	for i < len(p.input) {
		if skipWhitespace && p.input[i].Type() == token.Whitespace {
			i++
			continue
		}
		return p.input[i], true
	}
	return nil, false
}

func (p *parser) advance() token.Token {
	t := p.input[p.pos]
	p.pos++
	return t
}

/*
consumeBinaryAhead skips whitespace and, if a LogicalAnd/LogicalOr token
follows, consumes and returns it.
*/
func (p *parser) consumeBinaryAhead() (token.Token, bool) {
	for p.pos < len(p.input) && p.input[p.pos].Type() == token.Whitespace {
		p.pos++
	}
	if p.pos < len(p.input) {
		t := p.input[p.pos]
		if t.Type() == token.LogicalAnd || t.Type() == token.LogicalOr {
			p.pos++
			return t, true
		}
	}
	return nil, false
}

func reverseNodes(nodes []ast.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func reverseTokens(toks []token.Token) {
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
}
