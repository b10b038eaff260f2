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
Package lexer turns a Galach query string into a token.Sequence.

The tokenizer never fails: any run of input which cannot be matched by a
configured pattern is emitted as a single token.BailoutToken and the scan
continues. Unlike the state-function-over-a-channel lexer this package is
modeled on, Tokenize is a plain synchronous function with no goroutine and
no channel - the core has no suspension points, so there is nothing to hand
off to a consumer concurrently.
*/
package lexer

import (
	"strings"

	"github.com/krotik/galach/token"
)

/*
matchFunc tries to match a pattern at a given offset. It returns the
produced token, the offset to resume scanning from, and whether the
pattern matched at all.
*/
type matchFunc func(input string, pos int) (token.Token, int, bool)

/*
patterns lists the tokenizer's pattern table in the order the tokenizer
tries them. The first pattern that matches at the current offset wins.
*/
var patterns = []matchFunc{
	matchLogicalAnd,
	matchLogicalOr,
	matchLogicalNot,
	matchLogicalNot2,
	matchInclude,
	matchExclude,
	matchGroupBegin,
	matchGroupEnd,
	matchPhrase,
	matchUserOrTag,
	matchWord,
	matchWhitespace,
}

/*
Tokenize lexes a Galach query string into an ordered token.Sequence. It
never returns an error; unmatched runs become BailoutToken entries.
*/
func Tokenize(input string) token.Sequence {
	var toks []token.Token

	pos := 0
	for pos < len(input) {
		tok, next, ok := matchAt(input, pos)

		if !ok {
			end := pos + 1
			for end < len(input) {
				if _, _, ok := matchAt(input, end); ok {
					break
				}
				end++
			}
			toks = append(toks, token.NewBailout(input[pos:end], pos))
			pos = end
			continue
		}

		toks = append(toks, tok)
		pos = next
	}

	return token.NewSequence(input, toks)
}

/*
matchAt tries every pattern, in declared order, at the given offset.
*/
func matchAt(input string, pos int) (token.Token, int, bool) {
	for _, p := range patterns {
		if tok, next, ok := p(input, pos); ok {
			return tok, next, true
		}
	}
	return nil, pos, false
}

// Boundary helpers
// ================

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

/*
isWBoundary reports whether the byte at input[pos] (or the virtual
position pos == len(input)) is a W-boundary: whitespace, start/end of
input, or a group delimiter.
*/
func isWBoundary(input string, pos int) bool {
	if pos < 0 || pos >= len(input) {
		return true
	}
	c := input[pos]
	return isSpace(c) || c == '(' || c == ')'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.' || c == '-'
}

/*
isWordStop reports whether c terminates an unquoted word run.
*/
func isWordStop(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"' || c == '\''
}

// Pattern #1-#3: textual AND / OR / NOT
// ======================================

func matchKeyword(input string, pos int, kw string, make func(lexeme string, pos int) token.Token) (token.Token, int, bool) {
	if !isWBoundary(input, pos-1) {
		return nil, pos, false
	}
	if pos+len(kw) > len(input) || input[pos:pos+len(kw)] != kw {
		return nil, pos, false
	}
	if !isWBoundary(input, pos+len(kw)) {
		return nil, pos, false
	}
	return make(input[pos:pos+len(kw)], pos), pos + len(kw), true
}

func matchLogicalAnd(input string, pos int) (token.Token, int, bool) {
	return matchKeyword(input, pos, "AND", func(l string, p int) token.Token { return token.NewLogicalAnd(l, p) })
}

func matchLogicalOr(input string, pos int) (token.Token, int, bool) {
	return matchKeyword(input, pos, "OR", func(l string, p int) token.Token { return token.NewLogicalOr(l, p) })
}

func matchLogicalNot(input string, pos int) (token.Token, int, bool) {
	return matchKeyword(input, pos, "NOT", func(l string, p int) token.Token { return token.NewLogicalNot(l, p) })
}

// Pattern #4: symbolic "!"
// ========================

func matchLogicalNot2(input string, pos int) (token.Token, int, bool) {
	if input[pos] != '!' {
		return nil, pos, false
	}
	if pos+1 >= len(input) || isSpace(input[pos+1]) {
		return nil, pos, false
	}
	return token.NewLogicalNot2("!", pos), pos + 1, true
}

// Pattern #5: "+"
// ===============

func matchInclude(input string, pos int) (token.Token, int, bool) {
	if input[pos] != '+' {
		return nil, pos, false
	}
	if pos+1 >= len(input) || isSpace(input[pos+1]) {
		return nil, pos, false
	}
	return token.NewInclude("+", pos), pos + 1, true
}

// Pattern #6: "-" (prefix context only)
// ======================================

func matchExclude(input string, pos int) (token.Token, int, bool) {
	if input[pos] != '-' {
		return nil, pos, false
	}
	if pos+1 >= len(input) || isSpace(input[pos+1]) {
		return nil, pos, false
	}
	if !isWBoundary(input, pos-1) {
		return nil, pos, false
	}
	return token.NewExclude("-", pos), pos + 1, true
}

// Domain prefix
// =============

/*
matchDomainPrefix recognizes an optional "<ident>:" prefix at pos. It
returns the identifier text and the offset just past the colon.
*/
func matchDomainPrefix(input string, pos int) (string, int, bool) {
	if pos >= len(input) || !isIdentStart(input[pos]) {
		return "", pos, false
	}
	end := pos + 1
	for end < len(input) && isIdentCont(input[end]) {
		end++
	}
	if end >= len(input) || input[end] != ':' {
		return "", pos, false
	}
	return input[pos:end], end + 1, true
}

// Pattern #7: GroupBegin
// ======================

func matchGroupBegin(input string, pos int) (token.Token, int, bool) {
	domain, after, hasDomain := matchDomainPrefix(input, pos)

	check := pos
	if hasDomain {
		check = after
	}

	if check >= len(input) || input[check] != '(' {
		return nil, pos, false
	}

	return token.NewGroupBegin(input[pos:check+1], pos, domain), check + 1, true
}

// Pattern #8: GroupEnd
// =====================

func matchGroupEnd(input string, pos int) (token.Token, int, bool) {
	if input[pos] != ')' {
		return nil, pos, false
	}
	return token.NewGroupEnd(")", pos), pos + 1, true
}

// Pattern #9: Phrase
// ==================

func matchPhrase(input string, pos int) (token.Token, int, bool) {
	domain, after, hasDomain := matchDomainPrefix(input, pos)

	check := pos
	if hasDomain {
		check = after
	}

	if check >= len(input) || (input[check] != '"' && input[check] != '\'') {
		return nil, pos, false
	}

	quote := input[check]
	var sb strings.Builder
	i := check + 1
	closed := false

	for i < len(input) {
		c := input[i]
		if c == quote {
			closed = true
			i++
			break
		}
		if c == '\\' && i+1 < len(input) {
			next := input[i+1]
			if next == quote || next == '\\' {
				sb.WriteByte(next)
				i += 2
				continue
			}
			sb.WriteByte(c)
			sb.WriteByte(next)
			i += 2
			continue
		}
		sb.WriteByte(c)
		i++
	}

	if !closed {
		return nil, pos, false
	}

	if !hasDomain {
		domain = ""
	}

	return token.NewPhrase(input[pos:i], pos, sb.String(), domain, rune(quote)), i, true
}

// Pattern #10: Word
// =================

func matchWord(input string, pos int) (token.Token, int, bool) {
	c := input[pos]
	if c == '@' || c == '#' || c == '!' {
		return nil, pos, false
	}

	domain, after, hasDomain := matchDomainPrefix(input, pos)

	wordStart := pos
	if hasDomain {
		wordStart = after
	}

	end := wordStart
	for end < len(input) && !isWordStop(input[end]) {
		end++
	}

	if end == wordStart {
		// Domain prefix with no following word content - fall back to a
		// plain word covering the identifier and colon itself.
		if !hasDomain {
			return nil, pos, false
		}
		domain = ""
		wordStart = pos
		end = wordStart
		for end < len(input) && !isWordStop(input[end]) {
			end++
		}
		if end == wordStart {
			return nil, pos, false
		}
	}

	if !hasDomain {
		domain = ""
	}

	return token.NewWord(input[pos:end], pos, input[wordStart:end], domain), end, true
}

// Pattern #11: User / Tag
// ========================

func matchUserOrTag(input string, pos int) (token.Token, int, bool) {
	c := input[pos]
	if c != '@' && c != '#' {
		return nil, pos, false
	}
	if pos+1 >= len(input) || !isIdentStart(input[pos+1]) {
		return nil, pos, false
	}

	end := pos + 2
	for end < len(input) && isIdentCont(input[end]) {
		end++
	}

	lexeme := input[pos:end]
	name := input[pos+1 : end]

	if c == '@' {
		return token.NewUser(lexeme, pos, name), end, true
	}
	return token.NewTag(lexeme, pos, name), end, true
}

// Pattern #12: Whitespace
// =======================

func matchWhitespace(input string, pos int) (token.Token, int, bool) {
	if !isSpace(input[pos]) {
		return nil, pos, false
	}
	end := pos + 1
	for end < len(input) && isSpace(input[end]) {
		end++
	}
	return token.NewWhitespace(input[pos:end], pos), end, true
}
