package lib

// tokenBuffer reads back a token sequence that has already been fully
// produced. It never modifies the slice it was given.
type tokenBuffer struct {
	tokens []Token
	index  int
}

func newTokenBuffer(tokens []Token) *tokenBuffer {
	return &tokenBuffer{
		tokens: tokens,
		index:  0,
	}
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.index++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.index >= len(tb.tokens) {
		return Token{}, true
	}
	return tb.tokens[tb.index], false
}

func (tb *tokenBuffer) Remaining() int {
	return len(tb.tokens) - tb.index
}
