/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"github.com/krotik/galach/ast"
	"github.com/krotik/galach/correction"
	"github.com/krotik/galach/token"
)

/*
shift dispatches a single input token to its shift routine.
*/
func (p *parser) shift(tok token.Token) {
	tt := tok.Type()

	switch {
	case tt == token.Whitespace:
		p.shiftWhitespace()
	case tt.Is(token.Word | token.Phrase | token.User | token.Tag):
		p.shiftTerm(tok)
	case tt == token.GroupBegin:
		p.push(tokenEntry(tok))
	case tt == token.GroupEnd:
		p.shiftGroupEnd(tok)
	case tt == token.LogicalAnd || tt == token.LogicalOr:
		p.shiftBinary(tok)
	case tt == token.LogicalNot:
		p.push(tokenEntry(tok))
	case tt == token.LogicalNot2:
		p.shiftNot2(tok)
	case tt.Is(token.Include | token.Exclude):
		p.shiftInclExcl(tok)
	case tt == token.Bailout:
		p.log.Add(correction.BailoutTokenIgnored, tok)
	}
}

/*
shiftWhitespace: a pending prefix operator ("+", "-", "!") with nothing
immediately following it is dropped; whitespace itself is never kept.
*/
func (p *parser) shiftWhitespace() {
	top, ok := p.peekStackEntry()
	if ok && top.isToken() && top.tok.Type().Is(token.OperatorPrefix) {
		p.popStack()
		p.log.Add(correction.UnaryOpMissingOperand, top.tok)
	}
}

/*
shiftTerm produces a Term node and enters the reduce loop.
*/
func (p *parser) shiftTerm(tok token.Token) {
	p.reduce(&ast.Term{Token: tok})
}

/*
shiftGroupEnd pushes the ")" token, then drives a placeholder node through
the Group reduction-group so reduceGroup can assemble (or discard) the
group.
*/
func (p *parser) shiftGroupEnd(tok token.Token) {
	p.push(tokenEntry(tok))
	p.reduce(&groupPlaceholder{})
}

/*
shiftBinary handles AND/OR: a binary operator needs a left operand already
on the stack and must not directly follow another operator.
*/
func (p *parser) shiftBinary(tok token.Token) {
	top, ok := p.peekStackEntry()

	if !ok || (top.isToken() && top.tok.Type() == token.GroupBegin) {
		p.log.Add(correction.BinaryOpMissingLeftOperand, tok)
		return
	}
	if top.isToken() && top.tok.Type().Is(token.Operator) {
		p.log.Add(correction.BinaryOpFollowingOp, tok)
		return
	}
	p.push(tokenEntry(tok))
}

/*
shiftNot2 handles the symbolic "!": it must not immediately precede
another operator, except a second "!".
*/
func (p *parser) shiftNot2(tok token.Token) {
	if nt, ok := p.peek(false); ok && nt.Type().Is(token.Operator) && nt.Type() != token.LogicalNot2 {
		p.log.Add(correction.UnaryOpPrecedingOp, tok)
		return
	}
	p.push(tokenEntry(tok))
}

/*
shiftInclExcl handles "+"/"-": neither may immediately precede another
operator.
*/
func (p *parser) shiftInclExcl(tok token.Token) {
	if nt, ok := p.peek(false); ok && nt.Type().Is(token.Operator) {
		p.log.Add(correction.UnaryOpPrecedingOp, tok)
		return
	}
	p.push(tokenEntry(tok))
}
