// Package parser consumes a lexer.Lexer's token stream and builds an
// internal/ast tree: a cur/peek two-token-window Pratt parser that
// drives binary-operator precedence from a pkg/grammar.Grammar instead
// of a fixed table, with handlers for filter/indexer, transform pipe,
// ternary, template literals, sequence, and assignment.
//
// Binary-operator climbing is left-associative: parseExpression recurses
// into the right operand with the operator's own precedence, so a
// same-precedence operator encountered inside that recursive call
// immediately returns control to the outer loop, which then wraps it at
// the same nesting level instead of the right-recursive one. Dot, the
// filter bracket, and the transform pipe are folded into the same
// unified loop as fixed-precedence pseudo-operators (precedence.go).
package parser

import (
	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/errs"
	"github.com/conneroisu/jexl/pkg/grammar"
	"github.com/conneroisu/jexl/pkg/lexer"
)

// Parser builds an AST from one lexer's token stream.
type Parser struct {
	l *lexer.Lexer
	g *grammar.Grammar

	cur  lexer.Token
	peek lexer.Token

	err error

	// relativeStack tracks, per enclosing filter body currently being
	// parsed, whether a relative (leading-dot) identifier was seen. The
	// top frame belongs to the innermost filter; parseFilterOrIndex pushes
	// before parsing its expr and pops after.
	relativeStack []bool
}

// New builds a Parser over l using g for operator precedence (and for
// the nested parsers of template interpolations).
func New(l *lexer.Lexer, g *grammar.Grammar) *Parser {
	p := &Parser{l: l, g: g}
	p.advance()
	p.advance()
	return p
}

// Parse consumes the entire token stream and returns the resulting AST.
// A semicolon-separated source produces a SequenceExpression; otherwise
// the single parsed expression is returned directly.
func Parse(source string, g *grammar.Grammar) (ast.Expr, error) {
	p := New(lexer.New(source, g), g)
	return p.Parse()
}

func (p *Parser) Parse() (ast.Expr, error) {
	tree, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.peek.Kind != lexer.EOF {
		return nil, errs.At(errs.UnexpectedToken, p.peek.Line, p.peek.Column,
			"Token %s unexpected in expression: %s", p.peek.Kind, p.peek.Raw)
	}
	return tree, nil
}

// parseProgram parses one or more `;`-separated expressions. cur ends on
// the last consumed token of the final segment; peek is whatever follows
// (EOF for a well-formed program).
func (p *Parser) parseProgram() (ast.Expr, error) {
	var segments []ast.Expr
	for {
		if p.cur.Kind == lexer.EOF {
			return nil, errs.At(errs.IncompleteExpression, p.cur.Line, p.cur.Column, "Missing expression")
		}
		seg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		if p.peek.Kind != lexer.Semicolon {
			break
		}
		p.advance() // cur = ;
		p.advance() // cur = first token of next segment
	}
	if len(segments) == 1 {
		return segments[0], nil
	}
	return ast.NewSequence(segments[0].Pos(), segments), nil
}

func (p *Parser) advance() {
	p.cur = p.peek
	tok, err := p.l.NextToken()
	if err != nil {
		if ae, ok := err.(*errs.Error); ok {
			p.err = ae
		} else {
			p.err = errs.New(errs.InvalidToken, "%s", err.Error())
		}
		p.peek = lexer.Token{Kind: lexer.EOF}
		return
	}
	p.peek = tok
}

func (p *Parser) curPos() ast.SourcePos {
	return ast.SourcePos{Line: p.cur.Line, Column: p.cur.Column}
}

// peekPrecedence reports the binding power of continuing the current
// expression with p.peek as an infix/postfix construct, or -1 if peek
// cannot continue it.
func (p *Parser) peekPrecedence() int {
	switch p.peek.Kind {
	case lexer.Dot, lexer.OpenBracket:
		return precedenceSelect
	case lexer.Pipe:
		return precedencePipe
	case lexer.Question:
		return precedenceTernary
	case lexer.BinaryOp:
		if op, ok := p.g.BinaryOpFor(p.peek.Raw); ok {
			return op.Precedence
		}
	}
	return -1
}

// parseExpression is the unified precedence-climbing loop: it parses one
// prefix operand, then repeatedly folds in infix/postfix constructs whose
// precedence is >= minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	if p.err != nil {
		return nil, p.err
	}
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for minPrec < p.peekPrecedence() {
		p.advance()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseInfix(left ast.Expr) (ast.Expr, error) {
	switch p.cur.Kind {
	case lexer.Dot:
		return p.parseSelect(left)
	case lexer.OpenBracket:
		return p.parseFilterOrIndex(left)
	case lexer.Pipe:
		return p.parsePipe(left)
	case lexer.Question:
		return p.parseTernary(left)
	case lexer.BinaryOp:
		if p.cur.Raw == "=" {
			return p.parseAssignment(left)
		}
		return p.parseBinaryOp(left)
	default:
		return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column,
			"Token %s unexpected in expression: %s", p.cur.Kind, p.cur.Raw)
	}
}

func (p *Parser) parseBinaryOp(left ast.Expr) (ast.Expr, error) {
	op := p.cur.Raw
	pos := p.curPos()
	element, ok := p.g.BinaryOpFor(op)
	if !ok {
		return nil, errs.At(errs.UnexpectedToken, p.cur.Line, p.cur.Column, "Unknown operator: %s", op)
	}
	p.advance()
	right, err := p.parseExpression(element.Precedence)
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(pos, op, left, right), nil
}

func (p *Parser) parseAssignment(left ast.Expr) (ast.Expr, error) {
	ident, ok := left.(*ast.Identifier)
	if !ok || ident.From != nil || ident.Relative {
		return nil, errs.At(errs.AssignmentTarget, p.cur.Line, p.cur.Column,
			"Left side of assignment must be a variable name")
	}
	pos := p.curPos()
	p.advance()
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(pos, ident, value), nil
}
