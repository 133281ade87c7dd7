package lib

import "strings"

// FormatRPN renders tokens separated by single spaces, e.g. "3 4 2 * +".
func FormatRPN(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, " ")
}
