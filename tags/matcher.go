package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// terminator picks whichever of '=' or ',' comes first in the remaining input
func terminator(input []byte) *parsly.Token {
	eq := bytes.IndexByte(input, '=')
	comma := bytes.IndexByte(input, ',')
	if eq != -1 && (comma == -1 || eq < comma) {
		return eqTerminatorMatcher
	}
	return comaTerminatorMatcher
}

// rest consumes the remaining input
func rest(cursor *parsly.Cursor) string {
	if cursor.Pos >= len(cursor.Input) {
		return ""
	}
	text := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return text
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	cursor.MatchAny(whitespaceMatcher)
	match := cursor.MatchAny(scopeBlockMatcher, terminator(cursor.Input[cursor.Pos:]))
	switch match.Code {
	case scopeBlockToken:
		text := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return splitPair(text)
	case comaTerminatorToken:
		text := match.Text(cursor)
		return splitPair(strings.TrimSuffix(text, ","))
	case eqTerminatorToken:
		key := strings.TrimSuffix(match.Text(cursor), "=")
		return strings.TrimSpace(key), unwrap(matchValue(cursor))
	}
	return splitPair(rest(cursor))
}

// matchValue reads a value following '=' up to the next unscoped comma
func matchValue(cursor *parsly.Cursor) string {
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return value
	case comaTerminatorToken:
		value := strings.TrimSuffix(match.Text(cursor), ",")
		cursor.Pos--
		return value
	}
	return rest(cursor)
}

// splitPair splits a bare `key=value` or `key` literal
func splitPair(literal string) (string, string) {
	key, value, _ := strings.Cut(literal, "=")
	return strings.TrimSpace(key), unwrap(value)
}

// unwrap removes enclosing quotes or scope braces
func unwrap(value string) string {
	if len(value) < 2 {
		return value
	}
	switch {
	case value[0] == '\'' && value[len(value)-1] == '\'':
		return value[1 : len(value)-1]
	case value[0] == '{' && value[len(value)-1] == '}':
		return value[1 : len(value)-1]
	}
	return value
}
