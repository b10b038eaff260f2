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
Package native is the one concrete generator implementation this repo
ships: it renders an ast.Query back to Galach surface syntax. It exists to
make the round-trip testable property runnable - spec.md treats generators
as external collaborators, but names "the Native generator" in its own
test properties.

The rendering itself is keyed by node kind through a map of text/template
templates, one entry per kind (two for LogicalNot, which renders
differently for its textual and symbolic operator tokens, and none for
Query, whose children are joined with spaces directly) - the same
template-per-kind-string idiom as the teacher's own PrettyPrint.
*/
package native

import (
	"strings"
	"text/template"

	"github.com/krotik/galach/ast"
	"github.com/krotik/galach/generator"
)

type termData struct{ Lexeme string }
type unaryData struct{ Operand string }
type binaryData struct{ Left, Right string }
type groupData struct {
	Domain   string
	Children string
}

var templates = map[string]*template.Template{
	"term":       template.Must(template.New("term").Parse(`{{.Lexeme}}`)),
	"include":    template.Must(template.New("include").Parse(`+{{.Operand}}`)),
	"exclude":    template.Must(template.New("exclude").Parse(`-{{.Operand}}`)),
	"not_text":   template.Must(template.New("not_text").Parse(`NOT {{.Operand}}`)),
	"not_symbol": template.Must(template.New("not_symbol").Parse(`!{{.Operand}}`)),
	"and":        template.Must(template.New("and").Parse(`{{.Left}} AND {{.Right}}`)),
	"or":         template.Must(template.New("or").Parse(`{{.Left}} OR {{.Right}}`)),
	"group":      template.Must(template.New("group").Parse(`{{.Domain}}({{.Children}})`)),
}

func render(name string, data interface{}) string {
	t, ok := templates[name]
	if !ok {
		panic("native: no template registered for " + name)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		panic(err)
	}
	return sb.String()
}

/*
Visitor is the native generator's sole generator.Visitor implementation; it
accepts every node kind the ast package defines.
*/
type Visitor struct{}

/*
New creates a generator.Dispatcher wired with the native Visitor as its
only registered visitor.
*/
func New() *generator.Dispatcher {
	return generator.New(&Visitor{})
}

/*
Accept reports whether this visitor handles node. Native handles every
AST node kind.
*/
func (Visitor) Accept(node ast.Node) bool {
	switch node.(type) {
	case *ast.Term, *ast.Include, *ast.Exclude, *ast.LogicalNot,
		*ast.LogicalAnd, *ast.LogicalOr, *ast.Group, *ast.Query:
		return true
	}
	return false
}

/*
Visit renders node, recursing through root for every child so a caller
can swap in a different dispatcher without changing this visitor.
*/
func (Visitor) Visit(node ast.Node, root generator.Visitor) string {
	switch n := node.(type) {
	case *ast.Term:
		return render("term", termData{Lexeme: n.Token.Lexeme()})

	case *ast.Include:
		return render("include", unaryData{Operand: root.Visit(n.Operand, root)})

	case *ast.Exclude:
		return render("exclude", unaryData{Operand: root.Visit(n.Operand, root)})

	case *ast.LogicalNot:
		operand := root.Visit(n.Operand, root)
		if n.Op.Lexeme() == "!" {
			return render("not_symbol", unaryData{Operand: operand})
		}
		return render("not_text", unaryData{Operand: operand})

	case *ast.LogicalAnd:
		return render("and", binaryData{Left: root.Visit(n.Left, root), Right: root.Visit(n.Right, root)})

	case *ast.LogicalOr:
		return render("or", binaryData{Left: root.Visit(n.Left, root), Right: root.Visit(n.Right, root)})

	case *ast.Group:
		domain := ""
		if n.Domain != "" {
			domain = n.Domain + ":"
		}
		return render("group", groupData{Domain: domain, Children: renderChildren(n.Nodes, root)})

	case *ast.Query:
		return renderChildren(n.Nodes, root)
	}

	panic("native: unhandled node kind " + node.Kind().String())
}

func renderChildren(nodes []ast.Node, root generator.Visitor) string {
	parts := make([]string, len(nodes))
	for i, c := range nodes {
		parts[i] = root.Visit(c, root)
	}
	return strings.Join(parts, " ")
}
