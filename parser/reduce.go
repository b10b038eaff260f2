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
	"github.com/krotik/common/errorutil"

	"github.com/krotik/galach/ast"
	"github.com/krotik/galach/correction"
	"github.com/krotik/galach/token"
)

/*
reduceFunc attempts one reduction against node. It reports whether it
fired; when it did, the returned node (possibly nil) replaces node for the
rest of the reduce loop.
*/
type reduceFunc func(node ast.Node) (ast.Node, bool)

/*
reductionGroups is the reduction-group table: for each triggering node
kind, the prioritized, ordered list of reductions to attempt.
*/
func (p *parser) reductionGroups() map[ast.Kind][]reduceFunc {
	return map[ast.Kind][]reduceFunc{
		ast.KindGroup:      {p.reduceGroup, p.reduceInclusivity, p.reduceLogicalNot, p.reduceLogicalAnd, p.reduceLogicalOrDefault},
		ast.KindTerm:       {p.reduceInclusivity, p.reduceLogicalNot, p.reduceLogicalAnd, p.reduceLogicalOrDefault},
		ast.KindInclude:    {p.reduceLogicalNot, p.reduceLogicalAnd, p.reduceLogicalOrDefault},
		ast.KindExclude:    {p.reduceLogicalNot, p.reduceLogicalAnd, p.reduceLogicalOrDefault},
		ast.KindLogicalNot: {p.reduceLogicalNot, p.reduceLogicalAnd, p.reduceLogicalOrDefault},
		ast.KindLogicalAnd: {p.reduceLogicalOrDefault},
		ast.KindLogicalOr:  {},
	}
}

/*
reduce drives the shift/reduce sub-loop for a freshly produced node: try
its kind's reductions in order; the first that fires replaces the node and
restarts the scan using the new node's own kind. When nothing fires, the
node (if any) is pushed and the loop stops.
*/
func (p *parser) reduce(node ast.Node) {
	groups := p.reductionGroups()

	for node != nil {
		fns := groups[node.Kind()]

		fired := false
		for _, fn := range fns {
			if newNode, ok := fn(node); ok {
				node = newNode
				fired = true
				break
			}
		}
		if !fired {
			p.push(nodeEntry(node))
			return
		}
	}
}

// Individual reductions
// =====================

/*
reduceInclusivity wraps node in Include/Exclude if the stack top is "+"/"-".
*/
func (p *parser) reduceInclusivity(node ast.Node) (ast.Node, bool) {
	top, ok := p.peekStackEntry()
	if !ok || !top.isToken() || !top.tok.Type().Is(token.OperatorInclusivity) {
		return node, false
	}

	p.popStack()
	if top.tok.Type() == token.Include {
		return &ast.Include{Operand: node, Op: top.tok}, true
	}
	return &ast.Exclude{Operand: node, Op: top.tok}, true
}

/*
reduceLogicalNot wraps node in LogicalNot if the stack top is "NOT"/"!", or
- if node is itself an Include/Exclude - strips the illegal preceding
negation instead.
*/
func (p *parser) reduceLogicalNot(node ast.Node) (ast.Node, bool) {
	top, ok := p.peekStackEntry()
	if !ok || !top.isToken() || !top.tok.Type().Is(token.OperatorNot) {
		return node, false
	}

	if node.Kind() == ast.KindInclude || node.Kind() == ast.KindExclude {
		var popped []token.Token
		for {
			t, ok := p.peekStackEntry()
			if !ok || !t.isToken() || !t.tok.Type().Is(token.OperatorNot) {
				break
			}
			p.popStack()
			popped = append(popped, t.tok)
		}
		reverseTokens(popped)
		p.log.Add(correction.LogicalNotPrecedingInclusivity, popped...)
		return node, true
	}

	p.popStack()
	return &ast.LogicalNot{Operand: node, Op: top.tok}, true
}

/*
reduceLogicalAnd combines a pending left operand and "AND" token with node.
*/
func (p *parser) reduceLogicalAnd(node ast.Node) (ast.Node, bool) {
	if len(p.stack) < 2 {
		return node, false
	}
	top := p.stack[len(p.stack)-1]
	if !top.isToken() || top.tok.Type() != token.LogicalAnd {
		return node, false
	}

	p.popStack()
	left := p.popStack()
	errorutil.AssertTrue(left.isNode(), "AND reduction expected a node operand")

	return &ast.LogicalAnd{Left: left.node, Right: node, Op: top.tok}, true
}

/*
reduceLogicalOr combines a pending left operand and "OR" token with node.
Unless inGroup is set, a following AND defers the reduction so AND binds
tighter; reduceGroup and finalize force the reduction with inGroup=true
once there is no further input to defer to.
*/
func (p *parser) reduceLogicalOr(node ast.Node, inGroup bool) (ast.Node, bool) {
	if len(p.stack) < 2 {
		return node, false
	}
	top := p.stack[len(p.stack)-1]
	if !top.isToken() || top.tok.Type() != token.LogicalOr {
		return node, false
	}

	if !inGroup {
		if nt, ok := p.peek(true); ok && nt.Type() == token.LogicalAnd {
			return node, false
		}
	}

	p.popStack()
	left := p.popStack()
	errorutil.AssertTrue(left.isNode(), "OR reduction expected a node operand")

	return &ast.LogicalOr{Left: left.node, Right: node, Op: top.tok}, true
}

func (p *parser) reduceLogicalOrDefault(node ast.Node) (ast.Node, bool) {
	return p.reduceLogicalOr(node, false)
}

/*
reduceGroup recognizes the placeholder produced by shiftGroupEnd and
assembles (or discards) the completed group; it never fires again once
the placeholder has been replaced by a real node.
*/
func (p *parser) reduceGroup(node ast.Node) (ast.Node, bool) {
	if _, ok := node.(*groupPlaceholder); !ok {
		return node, false
	}

	rParen := p.popToken()

	for {
		top, ok := p.peekStackEntry()
		if !ok || !top.isToken() {
			break
		}
		tt := top.tok.Type()
		if tt == token.GroupBegin || !tt.Is(token.Operator) {
			break
		}
		p.popStack()
		if tt.Is(token.OperatorUnary) {
			p.log.Add(correction.UnaryOpMissingOperand, top.tok)
		} else {
			p.log.Add(correction.BinaryOpMissingRightOperand, top.tok)
		}
	}

	top, ok := p.peekStackEntry()
	empty := ok && isEmptyGroup(top)

	if empty {
		lParen := p.popToken()

		var preceding []token.Token
		for {
			t, ok := p.peekStackEntry()
			if !ok || !t.isToken() || !t.tok.Type().Is(token.Operator) {
				break
			}
			p.popStack()
			preceding = append(preceding, t.tok)
		}
		reverseTokens(preceding)

		var following []token.Token
		for {
			t, ok := p.consumeBinaryAhead()
			if !ok {
				break
			}
			following = append(following, t)
		}

		all := append(append(preceding, lParen, rParen), following...)
		p.log.Add(correction.EmptyGroup, all...)
		return nil, true
	}

	// Force any pending OR chain directly inside the group to resolve now;
	// whatever follows the group must not influence its own precedence.
	for {
		e, ok := p.peekStackEntry()
		if !ok || !e.isNode() {
			break
		}
		p.popStack()
		newNode, fired := p.reduceLogicalOr(e.node, true)
		if !fired {
			p.push(e)
			break
		}
		p.push(nodeEntry(newNode))
	}

	var children []ast.Node
	for {
		e, ok := p.peekStackEntry()
		if !ok || !e.isNode() {
			break
		}
		p.popStack()
		children = append(children, e.node)
	}
	reverseNodes(children)

	lParen := p.popToken()
	errorutil.AssertTrue(lParen.Type() == token.GroupBegin,
		"group close did not find its matching delimiter")

	domain := ""
	if gb, ok := lParen.(*token.GroupBeginToken); ok {
		domain = gb.Domain
	}

	return &ast.Group{Nodes: children, Domain: domain, TokenLeft: lParen, TokenRight: rParen}, true
}

/*
isEmptyGroup reports whether the stack entry directly below a just-popped
")" (after stripping trailing operators) is no node at all but the
matching "(" itself.
*/
func isEmptyGroup(topAfterStrip stackEntry) bool {
	return topAfterStrip.isToken() && topAfterStrip.tok.Type() == token.GroupBegin
}

/*
finalize implements reduceQuery: strip trailing operators, force any
pending OR chain, then wrap whatever remains into the Query root.
*/
func (p *parser) finalize() {
	for {
		e, ok := p.peekStackEntry()
		if !ok || !e.isToken() || !e.tok.Type().Is(token.Operator) {
			break
		}
		p.popStack()
		if e.tok.Type().Is(token.OperatorUnary) {
			p.log.Add(correction.UnaryOpMissingOperand, e.tok)
		} else {
			p.log.Add(correction.BinaryOpMissingRightOperand, e.tok)
		}
	}

	for {
		e, ok := p.peekStackEntry()
		if !ok || !e.isNode() {
			break
		}
		p.popStack()
		newNode, fired := p.reduceLogicalOr(e.node, true)
		if !fired {
			p.push(e)
			break
		}
		p.push(nodeEntry(newNode))
	}

	var children []ast.Node
	for {
		e, ok := p.peekStackEntry()
		if !ok {
			break
		}
		errorutil.AssertTrue(e.isNode(), "unexpected leftover operator token at finalization")
		p.popStack()
		children = append(children, e.node)
	}
	reverseNodes(children)

	p.push(nodeEntry(&ast.Query{Nodes: children}))
}
