package expr

import (
	"fmt"
	"strconv"
)

// operator precedence, loosest binding first
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

type parser struct {
	source string
	tokens []token
	cursor int
	params map[string]int
}

func parse(source, body string, offset int, params []string) (node, error) {
	tokens, err := tokenize(source, body, offset)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(params))
	for i, name := range params {
		if _, ok := byName[name]; ok {
			return nil, &SyntaxError{Source: source, Pos: 1, Msg: "duplicate parameter " + strconv.Quote(name)}
		}
		byName[name] = i
	}

	p := &parser{source: source, tokens: tokens, params: byName}
	root, err := p.parseExpression(1)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.errorf(tok, "unexpected %q", tok.text)
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.cursor]
}

func (p *parser) next() token {
	tok := p.tokens[p.cursor]
	if tok.kind != tokenEOF {
		p.cursor++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return &SyntaxError{Source: p.source, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseExpression(minPrec int) (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokenOperator {
			break
		}
		prec, ok := precedence[tok.text]
		if !ok || prec < minPrec {
			break
		}
		p.next()

		// left associative: the right side binds one level tighter
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: tok.text, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	tok := p.peek()
	if tok.kind == tokenOperator && (tok.text == "-" || tok.text == "!") {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: tok.text, operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber, tokenString:
		return &literalNode{value: tok.lit}, nil

	case tokenIdent:
		switch tok.text {
		case "true":
			return &literalNode{value: true}, nil
		case "false":
			return &literalNode{value: false}, nil
		}
		index, ok := p.params[tok.text]
		if !ok {
			return nil, p.errorf(tok, "unknown identifier %q", tok.text)
		}
		return &paramNode{name: tok.text, index: index}, nil

	case tokenLParen:
		inner, err := p.parseExpression(1)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, p.errorf(closing, "expected closing parenthesis")
		}
		return inner, nil

	case tokenEOF:
		return nil, p.errorf(tok, "unexpected end of expression")

	default:
		return nil, p.errorf(tok, "unexpected %q", tok.text)
	}
}
