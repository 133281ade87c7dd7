package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	buf := newTokenBuffer([]Token{NumberToken(7)})

	tok, done := buf.Next()
	require.False(t, done)
	require.Equal(t, TokenKindNumber, tok.Kind)
	require.Equal(t, int64(7), tok.Num)
}

func TestNextDoneMulti(t *testing.T) {
	buf := newTokenBuffer([]Token{NumberToken(7)})

	_, done := buf.Next()
	require.False(t, done)

	for i := 0; i < 3; i++ {
		_, done = buf.Next()
		require.True(t, done)
	}
	require.Equal(t, 0, buf.Remaining())
}

func TestNextEmpty(t *testing.T) {
	buf := newTokenBuffer(nil)
	_, done := buf.Next()
	require.True(t, done)
}

func TestPeek(t *testing.T) {
	buf := newTokenBuffer([]Token{OperatorToken(OpPlus), NumberToken(1)})

	tok, done := buf.Peek()
	require.False(t, done)
	require.True(t, tok.isOperator(OpPlus))
	require.Equal(t, 2, buf.Remaining())

	tok, done = buf.Next()
	require.False(t, done)
	require.True(t, tok.isOperator(OpPlus))

	tok, done = buf.Next()
	require.False(t, done)
	require.Equal(t, int64(1), tok.Num)

	_, done = buf.Peek()
	require.True(t, done)
}
