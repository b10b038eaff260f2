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
	"github.com/krotik/galach/correction"
	"github.com/krotik/galach/token"
)

/*
balanceGroups is the group delimiter balancing pre-pass: it removes every
GroupBegin/GroupEnd token that has no matching counterpart so the main
loop can assume delimiters are balanced. Closest delimiters match first
by construction of the scan.
*/
func balanceGroups(tokens []token.Token, log *correction.Log) []token.Token {
	var open []int
	unmatched := make(map[int]bool)

	for i, t := range tokens {
		switch t.Type() {
		case token.GroupBegin:
			open = append(open, i)
		case token.GroupEnd:
			if len(open) > 0 {
				open = open[:len(open)-1]
			} else {
				unmatched[i] = true
			}
		}
	}
	for _, idx := range open {
		unmatched[idx] = true
	}

	if len(unmatched) == 0 {
		return tokens
	}

	result := make([]token.Token, 0, len(tokens))
	for i, t := range tokens {
		if unmatched[i] {
			if t.Type() == token.GroupBegin {
				log.Add(correction.UnmatchedGroupLeftDelimiter, t)
			} else {
				log.Add(correction.UnmatchedGroupRightDelimiter, t)
			}
			continue
		}
		result = append(result, t)
	}
	return result
}
