/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package ast

import (
	"strings"
	"testing"

	"github.com/krotik/galach/token"
)

func TestKindStrings(t *testing.T) {
	tests := map[Kind]string{
		KindTerm:       "term",
		KindInclude:    "include",
		KindExclude:    "exclude",
		KindLogicalNot: "not",
		KindLogicalAnd: "and",
		KindLogicalOr:  "or",
		KindGroup:      "group",
		KindQuery:      "query",
		Kind(99):       "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestTermString(t *testing.T) {
	n := &Term{Token: token.NewWord("foo", 0, "foo", "")}
	if got := n.String(); got != "term: Word(\"foo\")@0\n" {
		t.Errorf("unexpected Term.String(): %q", got)
	}
	if n.Kind() != KindTerm {
		t.Errorf("expected KindTerm, got %v", n.Kind())
	}
}

func TestIncludeStringContainsOperand(t *testing.T) {
	// The node types do not stop a caller from nesting unary wrappers; the
	// parser (see parser.reduceLogicalNot and reduceInclusivity) enforces
	// that Include/Exclude never wrap each other. Here we only check that
	// Include.String() renders its Term operand beneath its own line.
	term := &Term{Token: token.NewWord("x", 0, "x", "")}
	inc := &Include{Operand: term, Op: token.NewInclude("+", 0)}

	if got := inc.String(); !strings.HasPrefix(got, "include\n") {
		t.Errorf("unexpected Include.String(): %q", got)
	}
	if !strings.Contains(inc.String(), "term: Word(\"x\")@0") {
		t.Errorf("expected Include.String() to contain its operand, got %q", inc.String())
	}
}

func TestLogicalAndOrString(t *testing.T) {
	a := &Term{Token: token.NewWord("a", 0, "a", "")}
	b := &Term{Token: token.NewWord("b", 2, "b", "")}

	and := &LogicalAnd{Left: a, Right: b, Op: token.NewLogicalAnd("AND", 1)}
	if and.Kind() != KindLogicalAnd {
		t.Errorf("expected KindLogicalAnd, got %v", and.Kind())
	}
	if got := and.String(); !strings.HasPrefix(got, "and\n") {
		t.Errorf("unexpected LogicalAnd.String(): %q", got)
	}

	or := &LogicalOr{Left: a, Right: b, Op: token.NewLogicalOr("OR", 1)}
	if or.Kind() != KindLogicalOr {
		t.Errorf("expected KindLogicalOr, got %v", or.Kind())
	}
	if got := or.String(); !strings.HasPrefix(got, "or\n") {
		t.Errorf("unexpected LogicalOr.String(): %q", got)
	}
}

func TestGroupStringWithDomain(t *testing.T) {
	a := &Term{Token: token.NewWord("a", 0, "a", "")}
	g := &Group{
		Nodes:      []Node{a},
		Domain:     "field",
		TokenLeft:  token.NewGroupBegin("field:(", 0, "field"),
		TokenRight: token.NewGroupEnd(")", 10),
	}

	got := g.String()
	if !strings.HasPrefix(got, "group domain=field\n") {
		t.Errorf("unexpected Group.String(): %q", got)
	}
	if g.Kind() != KindGroup {
		t.Errorf("expected KindGroup, got %v", g.Kind())
	}
}

func TestQueryStringWithMultipleChildren(t *testing.T) {
	a := &Term{Token: token.NewWord("a", 0, "a", "")}
	b := &Term{Token: token.NewWord("b", 2, "b", "")}
	q := &Query{Nodes: []Node{a, b}}

	if q.Kind() != KindQuery {
		t.Errorf("expected KindQuery, got %v", q.Kind())
	}

	got := q.String()
	if !strings.HasPrefix(got, "query\n") {
		t.Errorf("unexpected Query.String() prefix: %q", got)
	}
	if strings.Count(got, "term:") != 2 {
		t.Errorf("expected 2 term lines in %q", got)
	}
}

func TestEmptyQueryString(t *testing.T) {
	q := &Query{}
	if got := q.String(); got != "query\n" {
		t.Errorf("expected bare %q, got %q", "query\n", got)
	}
}
