package lib

import (
	"strconv"
	"unicode"
)

type scanState int

const (
	stateIdle scanState = iota
	stateInNumber
	stateInSymbol
	stateInWord
)

func (s scanState) String() string {
	switch s {
	case stateInNumber:
		return "number"
	case stateInSymbol:
		return "symbol"
	case stateInWord:
		return "word"
	default:
		return "idle"
	}
}

type charClass int

const (
	classDigit charClass = iota
	classSymbol
	classLetter
	classSpace
	classOther
)

func classify(ch rune) charClass {
	switch {
	case isDigit(ch):
		return classDigit
	case ch == ' ':
		return classSpace
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return classLetter
	}
	if _, ok := operatorForSymbol(ch); ok {
		return classSymbol
	}
	return classOther
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

type charInfo struct {
	ch  rune
	col int
}

// Tokenize splits expr into tokens. Spaces are skipped without ending the
// token being built, so "1 2" is the single number 12.
func Tokenize(expr string) ([]Token, error) {
	tokens := []Token{}
	err := lex(expr, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(expr string, emit func(Token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	state            scanState
	buf              []rune
	tokenCol         int
	emitCallback     func(Token)
}

func newLexer(expr string, emit func(Token)) *lexer {
	src := []rune(expr)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		state:            stateIdle,
		buf:              []rune{},
		tokenCol:         1,
		emitCallback:     emit,
	}
}

func (l *lexer) advance() (charInfo, bool) {
	if l.currentCharIndex >= l.length {
		return charInfo{}, false
	}
	info := charInfo{ch: l.src[l.currentCharIndex], col: l.currentCharIndex + 1}
	l.currentCharIndex++
	return info, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, l.flush()
	}

	var err error
	switch classify(chInfo.ch) {
	case classDigit:
		err = l.onDigit(chInfo)
	case classSymbol:
		err = l.onSymbol(chInfo)
	case classLetter:
		err = l.onLetter(chInfo)
	case classSpace:
		l.onSpace(chInfo)
	default:
		err = l.onOther(chInfo)
	}
	return err == nil, err
}

func (l *lexer) onDigit(c charInfo) error {
	return l.accumulate(c, stateInNumber)
}

func (l *lexer) onLetter(c charInfo) error {
	c.ch = unicode.ToLower(c.ch)
	return l.accumulate(c, stateInWord)
}

// Symbols are always tokens of their own.
func (l *lexer) onSymbol(c charInfo) error {
	if err := l.flush(); err != nil {
		return err
	}
	l.begin(c, stateInSymbol)
	return nil
}

func (l *lexer) onSpace(charInfo) {}

func (l *lexer) onOther(c charInfo) error {
	return &LexicalError{Kind: UnrecognizedCharacter, Pos: c.col, Text: string(c.ch)}
}

func (l *lexer) accumulate(c charInfo, target scanState) error {
	if l.state == target {
		l.buf = append(l.buf, c.ch)
		return nil
	}
	if l.state != stateIdle && len(l.buf) == 0 {
		return &LexicalError{Kind: ScannerInvariant, Pos: c.col, Text: l.state.String()}
	}
	if err := l.flush(); err != nil {
		return err
	}
	l.begin(c, target)
	return nil
}

func (l *lexer) begin(c charInfo, state scanState) {
	l.buf = append(l.buf[:0], c.ch)
	l.tokenCol = c.col
	l.state = state
}

func (l *lexer) flush() error {
	if len(l.buf) == 0 {
		return nil
	}
	tok, err := l.bufferToken()
	if err != nil {
		return err
	}
	l.emitCallback(tok.at(l.tokenCol))
	l.buf = l.buf[:0]
	return nil
}

func (l *lexer) bufferToken() (Token, error) {
	text := string(l.buf)
	switch l.state {
	case stateInWord:
		fn, ok := functionForName(text)
		if !ok {
			return Token{}, &LexicalError{Kind: UnrecognizedIdentifier, Pos: l.tokenCol, Text: text}
		}
		return FunctionToken(fn), nil
	case stateInNumber:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, &LexicalError{Kind: InvalidNumber, Pos: l.tokenCol, Text: text, Err: err}
		}
		return NumberToken(n), nil
	case stateInSymbol:
		op, _ := operatorForSymbol(l.buf[0])
		return OperatorToken(op), nil
	default:
		return Token{}, &LexicalError{Kind: ScannerInvariant, Pos: l.tokenCol, Text: l.state.String()}
	}
}
