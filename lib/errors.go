package lib

import (
	"errors"
	"fmt"
)

// Every error returned from this package matches exactly one of these with
// errors.Is.
var (
	ErrLexical     = errors.New("lexical error")
	ErrStructural  = errors.New("structural error")
	ErrArithmetic  = errors.New("arithmetic error")
	ErrUnsupported = errors.New("unsupported feature")
)

type LexicalErrorKind int

const (
	UnrecognizedCharacter LexicalErrorKind = iota
	InvalidNumber
	UnrecognizedIdentifier
	ScannerInvariant
)

// LexicalError is returned by Tokenize when the input cannot be split into
// tokens.
type LexicalError struct {
	Kind LexicalErrorKind
	Pos  int
	Text string
	Err  error
}

func (e *LexicalError) Error() string {
	switch e.Kind {
	case UnrecognizedCharacter:
		return errorAt(e.Pos, "unrecognized character %q", e.Text)
	case InvalidNumber:
		return errorAt(e.Pos, "invalid number %q: %v", e.Text, e.Err)
	case UnrecognizedIdentifier:
		return errorAt(e.Pos, "unrecognized identifier %q", e.Text)
	default:
		return errorAt(e.Pos, "scanner invariant violated in %s state", e.Text)
	}
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}

func (e *LexicalError) Is(target error) bool {
	return target == ErrLexical
}

type StructuralErrorKind int

const (
	UnbalancedParentheses StructuralErrorKind = iota
	MalformedExpression
)

// StructuralError is returned when the tokens do not form a complete
// expression.
type StructuralError struct {
	Kind    StructuralErrorKind
	Pos     int
	Message string
}

func (e *StructuralError) Error() string {
	if e.Kind == UnbalancedParentheses {
		return errorAt(e.Pos, "unbalanced parentheses: %s", e.Message)
	}
	return errorAt(e.Pos, "malformed expression: %s", e.Message)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

type ArithmeticErrorKind int

const (
	DivisionByZero ArithmeticErrorKind = iota
	NegativeExponent
	NegativeFactorial
)

// ArithmeticError is returned when an operator is applied outside of its
// domain.
type ArithmeticError struct {
	Kind    ArithmeticErrorKind
	Pos     int
	Op      Operator
	Operand int64
}

func (e *ArithmeticError) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return errorAt(e.Pos, "division by zero in '%s'", e.Op)
	case NegativeExponent:
		return errorAt(e.Pos, "negative exponent %d", e.Operand)
	default:
		return errorAt(e.Pos, "factorial of negative number %d", e.Operand)
	}
}

func (e *ArithmeticError) Is(target error) bool {
	return target == ErrArithmetic
}

// UnsupportedFeatureError is returned by Calculate for function calls, which
// are recognized but cannot be evaluated yet.
type UnsupportedFeatureError struct {
	Pos      int
	Function Function
}

func (e *UnsupportedFeatureError) Error() string {
	return errorAt(e.Pos, "function %s is not supported", e.Function)
}

func (e *UnsupportedFeatureError) Is(target error) bool {
	return target == ErrUnsupported
}

func errorAt(pos int, msg string, args ...interface{}) string {
	formatted := fmt.Sprintf(msg, args...)
	if pos <= 0 {
		return formatted
	}
	return fmt.Sprintf("Error at col %d: %s", pos, formatted)
}
