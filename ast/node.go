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
Package ast defines the parsed syntax tree for Galach queries. Nodes are
tagged variants, one struct per kind, rather than an inheritance hierarchy -
the tag is reported by Kind() and used for dispatch by the parser's
reduction tables, mirroring the ASTNode.Name
discriminant the teacher's own parser used for the same purpose.
*/
package ast

import (
	"strings"

	"github.com/krotik/galach/token"
)

/*
Kind discriminates the concrete type of a Node.
*/
type Kind int

const (
	KindTerm Kind = iota
	KindInclude
	KindExclude
	KindLogicalNot
	KindLogicalAnd
	KindLogicalOr
	KindGroup
	KindQuery
)

var kindNames = map[Kind]string{
	KindTerm:       "term",
	KindInclude:    "include",
	KindExclude:    "exclude",
	KindLogicalNot: "not",
	KindLogicalAnd: "and",
	KindLogicalOr:  "or",
	KindGroup:      "group",
	KindQuery:      "query",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

/*
Node is implemented by every AST variant. Ownership is a strict tree: every
node reachable from a root exclusively owns its subtree, there is no
sharing and no cycles.
*/
type Node interface {

	/*
		Kind returns the tag identifying this node's concrete type.
	*/
	Kind() Kind

	/*
		String returns an indented, human readable dump of this node and its
		subtree, one line per node.
	*/
	String() string
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// Term
// ====

/*
Term wraps a single terminal token (Word, Phrase, User or Tag).
*/
type Term struct {
	Token token.Token
}

func (n *Term) Kind() Kind { return KindTerm }

func (n *Term) String() string {
	return "term: " + n.Token.String() + "\n"
}

// Include / Exclude
// =================

/*
Include is the unary "+" prefix. Operand is a Term or a Group node;
Include/Exclude never wrap another Include/Exclude/LogicalNot.
*/
type Include struct {
	Operand Node
	Op      token.Token
}

func (n *Include) Kind() Kind { return KindInclude }

func (n *Include) String() string {
	return "include\n" + indent(n.Operand.String())
}

/*
Exclude is the unary "-" prefix.
*/
type Exclude struct {
	Operand Node
	Op      token.Token
}

func (n *Exclude) Kind() Kind { return KindExclude }

func (n *Exclude) String() string {
	return "exclude\n" + indent(n.Operand.String())
}

// LogicalNot
// ==========

/*
LogicalNot is the unary "NOT"/"!" negation.
*/
type LogicalNot struct {
	Operand Node
	Op      token.Token
}

func (n *LogicalNot) Kind() Kind { return KindLogicalNot }

func (n *LogicalNot) String() string {
	return "not\n" + indent(n.Operand.String())
}

// LogicalAnd / LogicalOr
// ======================

/*
LogicalAnd is the binary "AND" operator; AND binds tighter than OR.
*/
type LogicalAnd struct {
	Left  Node
	Right Node
	Op    token.Token
}

func (n *LogicalAnd) Kind() Kind { return KindLogicalAnd }

func (n *LogicalAnd) String() string {
	return "and\n" + indent(n.Left.String()) + "\n" + indent(n.Right.String())
}

/*
LogicalOr is the binary "OR" operator.
*/
type LogicalOr struct {
	Left  Node
	Right Node
	Op    token.Token
}

func (n *LogicalOr) Kind() Kind { return KindLogicalOr }

func (n *LogicalOr) String() string {
	return "or\n" + indent(n.Left.String()) + "\n" + indent(n.Right.String())
}

// Group
// =====

/*
Group is an explicit parenthesized subquery, optionally domain-prefixed.
Nodes is a plain ordered sequence; adjacency implies implicit AND at
render time, a choice left to generators.
*/
type Group struct {
	Nodes      []Node
	Domain     string
	TokenLeft  token.Token
	TokenRight token.Token
}

func (n *Group) Kind() Kind { return KindGroup }

func (n *Group) String() string {
	var sb strings.Builder
	sb.WriteString("group")
	if n.Domain != "" {
		sb.WriteString(" domain=" + n.Domain)
	}
	sb.WriteString("\n")
	for _, c := range n.Nodes {
		sb.WriteString(indent(c.String()))
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Query
// =====

/*
Query is the tree root: an implicit top-level grouping of its children.
*/
type Query struct {
	Nodes []Node
}

func (n *Query) Kind() Kind { return KindQuery }

func (n *Query) String() string {
	var sb strings.Builder
	sb.WriteString("query\n")
	for _, c := range n.Nodes {
		sb.WriteString(indent(c.String()))
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
