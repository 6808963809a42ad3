package basiccalc

import (
	"strconv"
	"unicode/utf8"
)

// Expr = Operand { op Operand }
// Operand = num | '(' Expr ')'
// op = '+' | '-' | '*' | '/'

// ParseString tokenizes and parses an expression.
func ParseString(src string) (*Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// Parse builds the expression tree for a sequence of tokens. Multiplication
// and division bind tighter than addition and subtraction, and operators of
// equal precedence group left to right. The entire token sequence must form
// one expression.
func Parse(toks []Token) (*Node, error) {
	p := parser{toks: toks}
	n, err := p.operands()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		if tok.Kind == TokenClose {
			return nil, &BracketError{Col: tok.Pos}
		}
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
	}
	return n, nil
}

type parser struct {
	toks []Token
	k    int
}

// peek returns the current token without consuming it. ok is false at the end
// of input.
func (p *parser) peek() (tok Token, ok bool) {
	if p.k >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.k], true
}

// next consumes the current token.
func (p *parser) next() (tok Token, ok bool) {
	tok, ok = p.peek()
	if ok {
		p.k++
	}
	return tok, ok
}

// eof is the column just past the last token.
func (p *parser) eof() int {
	if len(p.toks) == 0 {
		return 1
	}
	last := p.toks[len(p.toks)-1]
	if last.End > last.Pos {
		return last.End
	}
	// Tokens made without Tokenize may not know where they end.
	return last.Pos + utf8.RuneCountInString(last.Text)
}

// operands parses a list of operands separated by operators. It stops at the
// first token following an operand that is not an operator, leaving it
// unconsumed.
func (p *parser) operands() (*Node, error) {
	var (
		terms []*Node
		ops   []Op
	)
	// combine replaces the top two terms with the top operator applied to
	// them.
	combine := func() {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		r := terms[len(terms)-1]
		l := terms[len(terms)-2]
		terms = append(terms[:len(terms)-2], Binary(op, l, r))
	}

	n, err := p.operand()
	if err != nil {
		return nil, err
	}
	terms = append(terms, n)
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOp {
			break
		}
		op := binop(tok.Text)
		if op == OpNone {
			return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
		}
		p.k++
		// Equal precedence folds too, so that 6/3*2 is (6/3)*2.
		for len(ops) > 0 && ops[len(ops)-1].prec() >= op.prec() {
			combine()
		}
		ops = append(ops, op)
		n, err := p.operand()
		if err != nil {
			return nil, err
		}
		terms = append(terms, n)
	}
	for len(ops) > 0 {
		combine()
	}
	if len(terms) != 1 {
		panic("basiccalc: inconsistent operand stack: " + strconv.Itoa(len(terms)) + " terms")
	}
	return terms[0], nil
}

// operand parses a number or a parenthesized expression.
func (p *parser) operand() (*Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &EndError{Col: p.eof()}
	}
	switch tok.Kind {
	case TokenNum:
		if !validLiteral(tok.Text) {
			return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
		}
		return Leaf(tok.Text), nil
	case TokenOpen:
		n, err := p.operands()
		if err != nil {
			return nil, err
		}
		end, ok := p.next()
		if !ok {
			return nil, &BracketError{Col: p.eof(), Open: tok.Pos}
		}
		if end.Kind != TokenClose {
			return nil, &BracketError{Col: end.Pos, Open: tok.Pos}
		}
		return n, nil
	default:
		return nil, &UnexpectedTokenError{Col: tok.Pos, Token: tok.Text}
	}
}
