package lexer

import "github.com/conneroisu/jexl/internal/value"

// Kind is a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	Illegal
	Literal
	Identifier
	BinaryOp
	UnaryOp
	Dot
	OpenBracket
	CloseBracket
	Pipe
	OpenCurl
	CloseCurl
	Colon
	Comma
	OpenParen
	CloseParen
	Question
	Semicolon
	TemplateString
)

var kindNames = map[Kind]string{
	EOF:            "EOF",
	Illegal:        "ILLEGAL",
	Literal:        "LITERAL",
	Identifier:     "IDENTIFIER",
	BinaryOp:       "BINARY_OP",
	UnaryOp:        "UNARY_OP",
	Dot:            "DOT",
	OpenBracket:    "OPEN_BRACKET",
	CloseBracket:   "CLOSE_BRACKET",
	Pipe:           "PIPE",
	OpenCurl:       "OPEN_CURL",
	CloseCurl:      "CLOSE_CURL",
	Colon:          "COLON",
	Comma:          "COMMA",
	OpenParen:      "OPEN_PAREN",
	CloseParen:     "CLOSE_PAREN",
	Question:       "QUESTION",
	Semicolon:      "SEMICOLON",
	TemplateString: "TEMPLATE_STRING",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// TemplatePart is one static-text or interpolation-source piece of a
// TemplateString token's Parts, prior to the parser recursively lexing
// and parsing each interpolation's source.
type TemplatePart struct {
	Static bool
	Text   string // valid when Static
	Src    string // valid when !Static: the raw source between ${ and }
}

// Token is the unit the lexer produces and the parser consumes.
type Token struct {
	Kind    Kind
	Raw     string      // the lexeme text; a string literal's unquoted, unescaped contents; empty for TemplateString
	Literal value.Value // valid when Kind == Literal
	Parts   []TemplatePart // valid when Kind == TemplateString
	Line    int
	Column  int
}
