package lib

// ToPostfix reorders infix tokens into postfix (reverse polish) order using
// the shunting-yard algorithm. Parentheses never appear in the result.
func ToPostfix(tokens []Token) ([]Token, error) {
	buffer := newTokenBuffer(tokens)
	p := parser{
		reader: buffer,
		output: make([]Token, 0, buffer.Remaining()),
		stack:  []Token{},
	}
	return p.scan()
}

type parser struct {
	reader tokenReader
	output []Token
	stack  []Token
}

func (p *parser) scan() ([]Token, error) {
	for {
		tok, done := p.reader.Next()
		if done {
			break
		}

		var err error
		switch {
		case tok.Kind == TokenKindNumber:
			p.output = append(p.output, tok)
		case tok.Kind == TokenKindFunction:
			p.push(tok)
		case tok.isOperator(OpLeftParen):
			p.push(tok)
		case tok.isOperator(OpRightParen):
			err = p.closeParen(tok)
		default:
			p.pushOperator(tok)
		}
		if err != nil {
			return nil, err
		}
	}

	for len(p.stack) > 0 {
		top := p.pop()
		if top.isOperator(OpLeftParen) {
			return nil, &StructuralError{Kind: UnbalancedParentheses, Pos: top.Pos, Message: "'(' is never closed"}
		}
		p.output = append(p.output, top)
	}
	return p.output, nil
}

func (p *parser) closeParen(closing Token) error {
	for {
		if len(p.stack) == 0 {
			return &StructuralError{Kind: UnbalancedParentheses, Pos: closing.Pos, Message: "')' has no matching '('"}
		}
		top := p.pop()
		if top.isOperator(OpLeftParen) {
			return nil
		}
		p.output = append(p.output, top)
	}
}

// pushOperator pops everything that binds at least as tightly as op before
// pushing it. Equal precedence only pops left-associative operators, so
// 2^3^4 groups as 2^(3^4).
func (p *parser) pushOperator(op Token) {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.isOperator(OpLeftParen) {
			break
		}
		higher := top.precedence() > op.precedence()
		tie := top.precedence() == op.precedence() && top.associativity() == AssocLeft
		if !higher && !tie {
			break
		}
		p.output = append(p.output, p.pop())
	}
	p.push(op)
}

func (p *parser) push(tok Token) {
	p.stack = append(p.stack, tok)
}

func (p *parser) pop() Token {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return top
}
