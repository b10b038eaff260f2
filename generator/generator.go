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
Package generator defines the external AST-to-string visitor contract.
Concrete generators - Native, a future QueryString/Solr DisMax
serializer, and so on - live in their own sub-packages and plug
into a Dispatcher; this package itself only holds the dispatch
mechanism, mirroring the registration-ordered, first-match lookup the
teacher's own prettyPrinterMap and astNodeMap function tables use.
*/
package generator

import "github.com/krotik/galach/ast"

/*
Visitor renders one or more AST node kinds. Accept reports whether this
visitor handles node; Visit renders it, recursing back through root for
any children so every visitor in a tree walk shares the same dispatcher.
*/
type Visitor interface {

	/*
		Accept reports whether this visitor handles node.
	*/
	Accept(node ast.Node) bool

	/*
		Visit renders node to its string form. root is the dispatcher the
		visitor should use to render any children, so traversal always goes
		through the same registration-ordered lookup.
	*/
	Visit(node ast.Node, root Visitor) string
}

/*
Dispatcher holds an ordered list of visitors and probes them in
registration order. Absence of a matching visitor for a node is a
programming error, not a recoverable condition - every node kind the ast
package defines must have a visitor registered.
*/
type Dispatcher struct {
	visitors []Visitor
}

/*
New creates a Dispatcher trying the given visitors in order.
*/
func New(visitors ...Visitor) *Dispatcher {
	return &Dispatcher{visitors: visitors}
}

/*
Accept reports whether some registered visitor handles node.
*/
func (d *Dispatcher) Accept(node ast.Node) bool {
	_, ok := d.find(node)
	return ok
}

/*
Visit dispatches node to the first visitor whose Accept(node) is true and
returns its rendering. It panics if no visitor accepts node - this
signals a programming error, not an input error.
*/
func (d *Dispatcher) Visit(node ast.Node, root Visitor) string {
	v, ok := d.find(node)
	if !ok {
		panic("generator: no visitor registered for node kind " + node.Kind().String())
	}
	return v.Visit(node, root)
}

func (d *Dispatcher) find(node ast.Node) (Visitor, bool) {
	for _, v := range d.visitors {
		if v.Accept(node) {
			return v, true
		}
	}
	return nil, false
}
