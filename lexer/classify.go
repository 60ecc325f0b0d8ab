package lexer

import (
	"strings"
)

// IsInteger returns true if s is an optionally signed sequence of digits.
func IsInteger(s string) bool {
	rs := []rune(s)
	if len(rs) > 0 && isSign(rs[0]) {
		rs = rs[1:]
	}
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// IsLetter returns true if s is exactly one ASCII letter.
func IsLetter(s string) bool {
	rs := []rune(s)
	return len(rs) == 1 && isLetter(rs[0])
}

// StripSpaces removes every space character from s, including the ones in
// the middle of what would otherwise be a single token.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}
