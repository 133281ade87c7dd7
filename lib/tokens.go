package lib

import (
	"strconv"
)

type TokenKind int

const (
	TokenKindOperator TokenKind = iota
	TokenKindNumber
	TokenKindFunction
)

type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpPower
	OpModulo
	OpFactorial
	OpLeftParen
	OpRightParen
	opCount
)

type Associativity int

const (
	AssocInvalid Associativity = iota
	AssocLeft
	AssocRight
)

type Function int

const (
	FnSum Function = iota
	FnAverage
	FnSqrt
)

type operatorInfo struct {
	symbol     rune
	precedence int
	assoc      Associativity
	arity      int
}

// Parentheses get precedence 5 only so that popping stops at them.
var operatorTable = [opCount]operatorInfo{
	OpPlus:       {symbol: '+', precedence: 2, assoc: AssocLeft, arity: 2},
	OpMinus:      {symbol: '-', precedence: 2, assoc: AssocLeft, arity: 2},
	OpMultiply:   {symbol: '*', precedence: 3, assoc: AssocLeft, arity: 2},
	OpDivide:     {symbol: '/', precedence: 3, assoc: AssocLeft, arity: 2},
	OpPower:      {symbol: '^', precedence: 4, assoc: AssocRight, arity: 2},
	OpModulo:     {symbol: '%', precedence: 3, assoc: AssocLeft, arity: 2},
	OpFactorial:  {symbol: '!', precedence: 6, assoc: AssocInvalid, arity: 1},
	OpLeftParen:  {symbol: '(', precedence: 5, assoc: AssocInvalid, arity: 0},
	OpRightParen: {symbol: ')', precedence: 5, assoc: AssocInvalid, arity: 0},
}

var functionNames = [...]string{
	FnSum:     "sum",
	FnAverage: "average",
	FnSqrt:    "sqrt",
}

func (op Operator) Precedence() int {
	return operatorTable[op].precedence
}

func (op Operator) Associativity() Associativity {
	return operatorTable[op].assoc
}

// Arity is the number of operands the operator consumes. Parentheses consume
// none.
func (op Operator) Arity() int {
	return operatorTable[op].arity
}

func (op Operator) Symbol() rune {
	return operatorTable[op].symbol
}

func (op Operator) String() string {
	return string(op.Symbol())
}

func (fn Function) String() string {
	return functionNames[fn]
}

func functionForName(name string) (Function, bool) {
	for fn, n := range functionNames {
		if n == name {
			return Function(fn), true
		}
	}
	return 0, false
}

func operatorForSymbol(ch rune) (Operator, bool) {
	for op := Operator(0); op < opCount; op++ {
		if operatorTable[op].symbol == ch {
			return op, true
		}
	}
	return 0, false
}

// Token is one lexical unit of an expression. Only the field selected by Kind
// is meaningful. Pos is the 1-based column where the token starts.
type Token struct {
	Kind TokenKind
	Op   Operator
	Num  int64
	Fn   Function
	Pos  int
}

func NumberToken(n int64) Token {
	return Token{Kind: TokenKindNumber, Num: n}
}

func OperatorToken(op Operator) Token {
	return Token{Kind: TokenKindOperator, Op: op}
}

func FunctionToken(fn Function) Token {
	return Token{Kind: TokenKindFunction, Fn: fn}
}

func (t Token) at(pos int) Token {
	t.Pos = pos
	return t
}

func (t Token) isOperator(op Operator) bool {
	return t.Kind == TokenKindOperator && t.Op == op
}

// Equal compares the values of two tokens, ignoring their positions.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenKindNumber:
		return t.Num == other.Num
	case TokenKindFunction:
		return t.Fn == other.Fn
	default:
		return t.Op == other.Op
	}
}

// precedence of a token sitting on the operator stack. Functions are never
// popped by an incoming operator.
func (t Token) precedence() int {
	if t.Kind != TokenKindOperator {
		return -1
	}
	return t.Op.Precedence()
}

func (t Token) associativity() Associativity {
	if t.Kind != TokenKindOperator {
		return AssocInvalid
	}
	return t.Op.Associativity()
}

func (t Token) String() string {
	switch t.Kind {
	case TokenKindNumber:
		return strconv.FormatInt(t.Num, 10)
	case TokenKindFunction:
		return t.Fn.String()
	default:
		return t.Op.String()
	}
}
