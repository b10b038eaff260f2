/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package native

import (
	"testing"

	"github.com/krotik/galach/lexer"
	"github.com/krotik/galach/parser"
)

func renderQuery(t *testing.T, query string) string {
	t.Helper()
	tree := parser.Parse(lexer.Tokenize(query))
	gen := New()
	return gen.Visit(tree.Root, gen)
}

func TestRenderPlainTerms(t *testing.T) {
	if got := renderQuery(t, "one two three"); got != "one two three" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestRenderPrecedence(t *testing.T) {
	if got := renderQuery(t, "a AND b OR c AND d"); got != "a AND b OR c AND d" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestRenderInclusivity(t *testing.T) {
	if got := renderQuery(t, "+foo -bar"); got != "+foo -bar" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestRenderNegation(t *testing.T) {
	if got := renderQuery(t, "NOT foo"); got != "NOT foo" {
		t.Errorf("unexpected rendering: %q", got)
	}
	if got := renderQuery(t, "!foo"); got != "!foo" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestRenderGroup(t *testing.T) {
	if got := renderQuery(t, "field:(a b) OR c"); got != "field:(a b) OR c" {
		t.Errorf("unexpected rendering: %q", got)
	}
	if got := renderQuery(t, "(a b)"); got != "(a b)" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

/*
TestRenderIsIdempotent checks that rendering a parse tree and re-parsing the
result produces the same rendering again - the round trip property the
language spec names the Native generator in.
*/
func TestRenderIsIdempotent(t *testing.T) {
	queries := []string{
		"one two three",
		"a AND b OR c AND d",
		"+foo -bar",
		"NOT foo",
		"!foo",
		"field:(a b) OR c",
		`"a phrase" AND other`,
	}

	for _, q := range queries {
		first := renderQuery(t, q)
		second := renderQuery(t, first)
		if first != second {
			t.Errorf("rendering of %q is not stable: %q != %q", q, first, second)
		}
	}
}
