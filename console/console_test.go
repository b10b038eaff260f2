/*
 * Galach
 *
 * Copyright 2024 Galach authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunQueryPrintsTreeAndCorrections(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(&out)

	if err := con.Run("foo AND"); err != nil {
		t.Fatal(err)
	}

	res := out.String()
	if !strings.Contains(res, "query") || !strings.Contains(res, "term") {
		t.Errorf("expected a rendered syntax tree, got: %q", res)
	}
	if !strings.Contains(res, "Corrections:") || !strings.Contains(res, "BINARY_OP_MISSING_RIGHT_OPERAND_IGNORED") {
		t.Errorf("expected the missing-right-operand correction to be reported, got: %q", res)
	}
}

func TestRunQueryWithNoCorrectionsOmitsSection(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(&out)

	if err := con.Run("one two"); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out.String(), "Corrections:") {
		t.Errorf("expected no Corrections section, got: %q", out.String())
	}
}

func TestRunDispatchesRegisteredCommands(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(&out)

	if err := con.Run("ver"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("expected the version string in output, got: %q", out.String())
	}
}

func TestRunRenderRoundTrips(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(&out)

	if err := con.Run("render a AND b"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "a AND b" {
		t.Errorf("unexpected render output: %q", got)
	}
}

func TestHelpUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(&out)

	if err := con.Run("help nosuchcommand"); err == nil {
		t.Error("expected an error for an unknown command name")
	}
}
