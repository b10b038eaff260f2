/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package correction

import (
	"testing"

	"github.com/krotik/galach/token"
)

func TestKindStrings(t *testing.T) {
	tests := map[Kind]string{
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
		Kind(99):                      "UNKNOWN_CORRECTION",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestNewCarriesAllTokens(t *testing.T) {
	tok1 := token.NewLogicalNot("NOT", 0)
	tok2 := token.NewLogicalNot("NOT", 4)

	c := New(LogicalNotPrecedingInclusivity, tok1, tok2)

	if c.Kind != LogicalNotPrecedingInclusivity {
		t.Errorf("unexpected kind: %v", c.Kind)
	}
	if len(c.Tokens) != 2 || c.Tokens[0] != tok1 || c.Tokens[1] != tok2 {
		t.Errorf("unexpected tokens: %v", c.Tokens)
	}
}

func TestLogAddAppendsInOrder(t *testing.T) {
	var log Log

	tok1 := token.NewBailout("!!", 0)
	tok2 := token.NewLogicalAnd("AND", 5)

	log.Add(BailoutTokenIgnored, tok1)
	log.Add(BinaryOpMissingLeftOperand, tok2)

	if len(log) != 2 {
		t.Fatalf("expected 2 corrections, got %d", len(log))
	}
	if log[0].Kind != BailoutTokenIgnored || log[1].Kind != BinaryOpMissingLeftOperand {
		t.Errorf("corrections not recorded in temporal order: %v", log)
	}
}

func TestLogAddWithNoTokens(t *testing.T) {
	var log Log
	log.Add(EmptyGroup)

	if len(log) != 1 {
		t.Fatalf("expected 1 correction, got %d", len(log))
	}
	if len(log[0].Tokens) != 0 {
		t.Errorf("expected no tokens, got %v", log[0].Tokens)
	}
}

func TestDuplicateCorrectionsAreAllowed(t *testing.T) {
	var log Log

	tok := token.NewInclude("+", 0)
	log.Add(UnaryOpMissingOperand, tok)
	log.Add(UnaryOpMissingOperand, tok)

	if len(log) != 2 {
		t.Errorf("expected duplicate entries to both be kept, got %d", len(log))
	}
}
