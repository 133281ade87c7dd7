package lib

import "fmt"

// Evaluate reduces a postfix token sequence to a single value. Function and
// parenthesis tokens are skipped. Arithmetic wraps on int64 overflow.
func Evaluate(postfix []Token) (int64, error) {
	e := evaluator{stack: make([]int64, 0, len(postfix))}
	for _, tok := range postfix {
		var err error
		switch tok.Kind {
		case TokenKindNumber:
			e.stack = append(e.stack, tok.Num)
		case TokenKindOperator:
			err = e.apply(tok)
		}
		if err != nil {
			return 0, err
		}
	}

	if len(e.stack) != 1 {
		return 0, &StructuralError{
			Kind:    MalformedExpression,
			Message: fmt.Sprintf("expected one value after evaluation but have %d", len(e.stack)),
		}
	}
	return e.stack[0], nil
}

type evaluator struct {
	stack []int64
}

func (e *evaluator) pop(tok Token) (int64, error) {
	if len(e.stack) == 0 {
		return 0, &StructuralError{
			Kind:    MalformedExpression,
			Pos:     tok.Pos,
			Message: fmt.Sprintf("missing operand for '%s'", tok.Op),
		}
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

func (e *evaluator) apply(tok Token) error {
	switch tok.Op.Arity() {
	case 0:
		return nil
	case 1:
		n, err := e.pop(tok)
		if err != nil {
			return err
		}
		if n < 0 {
			return &ArithmeticError{Kind: NegativeFactorial, Pos: tok.Pos, Op: tok.Op, Operand: n}
		}
		e.stack = append(e.stack, factorial(n))
		return nil
	}

	right, err := e.pop(tok)
	if err != nil {
		return err
	}
	left, err := e.pop(tok)
	if err != nil {
		return err
	}
	result, err := binary(tok, left, right)
	if err != nil {
		return err
	}
	e.stack = append(e.stack, result)
	return nil
}

func binary(tok Token, left, right int64) (int64, error) {
	switch tok.Op {
	case OpPlus:
		return left + right, nil
	case OpMinus:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide, OpModulo:
		if right == 0 {
			return 0, &ArithmeticError{Kind: DivisionByZero, Pos: tok.Pos, Op: tok.Op}
		}
		if tok.Op == OpDivide {
			return left / right, nil
		}
		return left % right, nil
	case OpPower:
		if right < 0 {
			return 0, &ArithmeticError{Kind: NegativeExponent, Pos: tok.Pos, Op: tok.Op, Operand: right}
		}
		return power(left, right), nil
	}
	return 0, &StructuralError{
		Kind:    MalformedExpression,
		Pos:     tok.Pos,
		Message: fmt.Sprintf("'%s' is not a binary operator", tok.Op),
	}
}

func power(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// factorial stops early once the product has wrapped to zero, since it stays
// zero from there on.
func factorial(n int64) int64 {
	result := int64(1)
	for i := int64(2); i <= n && result != 0; i++ {
		result *= i
	}
	return result
}
