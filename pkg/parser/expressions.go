package parser

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/lexer"
)

// parsePrefix parses one operand-position construct: a literal,
// identifier (plain, function call, or relative-filter leading dot),
// unary expression, parenthesized group, array/object/template literal.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	pos := p.curPos()
	switch p.cur.Kind {
	case lexer.Literal:
		return ast.NewLiteral(pos, p.cur.Literal), nil

	case lexer.Identifier:
		name := p.cur.Raw
		if p.peek.Kind == lexer.OpenParen {
			p.advance() // cur = (
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return ast.NewFunctionCall(pos, name, args, ast.Functions), nil
		}
		return ast.NewIdentifier(pos, name), nil

	case lexer.Dot:
		if len(p.relativeStack) == 0 {
			return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
				"Token DOT unexpected in expression: relative identifier outside filter")
		}
		p.advance()
		if p.cur.Kind != lexer.Identifier {
			return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
				"Token %s unexpected in expression: %s", p.cur.Kind, p.cur.Raw)
		}
		ident := ast.NewIdentifier(pos, p.cur.Raw)
		ident.Relative = true
		p.relativeStack[len(p.relativeStack)-1] = true
		return ident, nil

	case lexer.UnaryOp:
		op := p.cur.Raw
		p.advance()
		right, err := p.parseExpression(precedenceUnary)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(pos, op, right), nil

	case lexer.OpenParen:
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if p.peek.Kind != lexer.CloseParen {
			return nil, p.incompleteOrUnexpected(lexer.CloseParen, "Missing ) after expression")
		}
		p.advance()
		return inner, nil

	case lexer.OpenBracket:
		return p.parseArrayLiteral()

	case lexer.OpenCurl:
		return p.parseObjectLiteral()

	case lexer.TemplateString:
		return p.parseTemplateLiteral()

	case lexer.EOF:
		return nil, errs.At(errs.IncompleteExpression, p.cur.Line, p.cur.Column, "Missing expression")

	default:
		return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
			"Token %s unexpected in expression: %s", p.cur.Kind, p.cur.Raw)
	}
}

// incompleteOrUnexpected reports IncompleteExpression when the stream
// ran out while looking for want, else UnexpectedToken for whatever
// token is actually there.
func (p *Parser) incompleteOrUnexpected(want lexer.Kind, incompleteMsg string) error {
	if p.peek.Kind == lexer.EOF {
		return errs.At(errs.IncompleteExpression, p.peek.Line, p.peek.Column, "%s", incompleteMsg)
	}
	return errs.At(errs.UnexpectedToken, p.peek.Line, p.peek.Column,
		"Token %s unexpected in expression: %s", p.peek.Kind, p.peek.Raw)
}

// parseArgList parses a parenthesized, comma-separated argument list.
// p.cur must be OpenParen on entry; on return p.cur is the matching
// CloseParen.
func (p *Parser) parseArgList() ([]ast.Expr, error) {
	p.advance() // move past (
	var args []ast.Expr
	if p.cur.Kind == lexer.CloseParen {
		return args, nil
	}
	for {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.peek.Kind {
		case lexer.Comma:
			p.advance()
			p.advance()
			continue
		case lexer.CloseParen:
			p.advance()
			return args, nil
		default:
			return nil, p.incompleteOrUnexpected(lexer.CloseParen, "Missing ) after argument list")
		}
	}
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // move past [
	var elems []ast.Expr
	if p.cur.Kind == lexer.CloseBracket {
		return ast.NewArrayLiteral(pos, elems), nil
	}
	for {
		elem, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		switch p.peek.Kind {
		case lexer.Comma:
			p.advance()
			p.advance()
			continue
		case lexer.CloseBracket:
			p.advance()
			return ast.NewArrayLiteral(pos, elems), nil
		default:
			return nil, p.incompleteOrUnexpected(lexer.CloseBracket, "Missing ] after array literal")
		}
	}
}

func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // move past {
	var entries []ast.ObjectEntry
	if p.cur.Kind == lexer.CloseCurl {
		return ast.NewObjectLiteral(pos, entries), nil
	}
	for {
		key, err := p.parseObjectKey()
		if err != nil {
			return nil, err
		}
		if p.peek.Kind != lexer.Colon {
			return nil, p.incompleteOrUnexpected(lexer.Colon, "Missing : after object key")
		}
		p.advance() // cur = :
		p.advance() // cur = first token of value
		val, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.ObjectEntry{Key: key, Value: val})
		switch p.peek.Kind {
		case lexer.Comma:
			p.advance()
			p.advance()
			continue
		case lexer.CloseCurl:
			p.advance()
			return ast.NewObjectLiteral(pos, entries), nil
		default:
			return nil, p.incompleteOrUnexpected(lexer.CloseCurl, "Missing } after object literal")
		}
	}
}

func (p *Parser) parseObjectKey() (string, error) {
	switch p.cur.Kind {
	case lexer.Identifier:
		return p.cur.Raw, nil
	case lexer.Literal:
		if s, ok := p.cur.Literal.(value.String); ok {
			return string(s), nil
		}
	}
	return "", errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
		"Token %s unexpected in expression: expected object key", p.cur.Kind)
}
