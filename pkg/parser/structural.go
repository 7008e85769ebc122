package parser

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/pkg/lexer"
)

// parseSelect handles the infix `.` operator: member access on an
// already-parsed subject. p.cur is the Dot token on entry.
func (p *Parser) parseSelect(left ast.Expr) (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // cur = identifier
	if p.cur.Kind != lexer.Identifier {
		return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
			"Token %s unexpected in expression: %s", p.cur.Kind, p.cur.Raw)
	}
	ident := ast.NewIdentifier(pos, p.cur.Raw)
	ident.From = left
	return ident, nil
}

// parseFilterOrIndex handles `subject[expr]`. p.cur is the OpenBracket
// token on entry. Whether this is a filter (array predicate) or an
// indexer (single-element access) is determined purely by whether expr
// used a relative (leading-dot) identifier while it was parsed.
func (p *Parser) parseFilterOrIndex(subject ast.Expr) (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // move past [
	if p.cur.Kind == lexer.CloseBracket {
		return nil, errs.At(errs.IncompleteExpression, p.cur.Line, p.cur.Column, "Missing expression inside []")
	}

	p.relativeStack = append(p.relativeStack, false)
	expr, err := p.parseExpression(0)
	relative := p.relativeStack[len(p.relativeStack)-1]
	p.relativeStack = p.relativeStack[:len(p.relativeStack)-1]
	if err != nil {
		return nil, err
	}

	if p.peek.Kind != lexer.CloseBracket {
		return nil, p.incompleteOrUnexpected(lexer.CloseBracket, "Missing ] after filter/indexer")
	}
	p.advance() // cur = ]

	return ast.NewFilterExpression(pos, subject, expr, relative), nil
}

// parsePipe handles the transform pipe `x | name(args...)`, desugaring
// to a Transforms-pool FunctionCall with x prepended to the argument
// list. p.cur is the Pipe token on entry.
func (p *Parser) parsePipe(left ast.Expr) (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // cur = transform name
	if p.cur.Kind != lexer.Identifier {
		return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
			"Token %s unexpected in expression: expected transform name", p.cur.Kind)
	}
	name := p.cur.Raw
	args := []ast.Expr{left}
	if p.peek.Kind == lexer.OpenParen {
		p.advance() // cur = (
		extra, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		args = append(args, extra...)
	}
	return ast.NewFunctionCall(pos, name, args, ast.Transforms), nil
}

// parseTernary handles `test ? consequent : alternate`, with an omitted
// consequent meaning `test ?: alternate`. p.cur is the Question token on
// entry.
func (p *Parser) parseTernary(test ast.Expr) (ast.Expr, error) {
	pos := p.curPos()
	p.advance() // cur = first token of consequent, or Colon if omitted

	var consequent ast.Expr
	if p.cur.Kind != lexer.Colon {
		c, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		consequent = c
		if p.peek.Kind != lexer.Colon {
			return nil, p.incompleteOrUnexpected(lexer.Colon, "Missing : in ternary expression")
		}
		p.advance() // cur = :
	}

	if p.peek.Kind == lexer.EOF {
		return nil, errs.At(errs.IncompleteExpression, p.peek.Line, p.peek.Column, "Missing alternate in ternary expression")
	}
	p.advance() // cur = first token of alternate
	alternate, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	return ast.NewConditional(pos, test, consequent, alternate), nil
}

// parseTemplateLiteral converts the lexer's already-tokenized template
// parts into an ast.TemplateLiteral, spawning a nested Parser over each
// interpolation's source. p.cur is the TemplateString token on entry.
func (p *Parser) parseTemplateLiteral() (ast.Expr, error) {
	pos := p.curPos()
	tok := p.cur
	parts := make([]ast.TemplatePart, 0, len(tok.Parts))
	for _, part := range tok.Parts {
		if part.Static {
			parts = append(parts, ast.TemplatePart{Static: true, Text: part.Text})
			continue
		}
		node, err := Parse(part.Src, p.g)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ast.TemplatePart{Static: false, Node: node})
	}
	return ast.NewTemplateLiteral(pos, parts), nil
}
