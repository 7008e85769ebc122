package eval

import (
	"strings"

	"github.com/conneroisu/jexl/internal/ast"
	"github.com/conneroisu/jexl/internal/value"
	"github.com/conneroisu/jexl/pkg/grammar"
)

// evalTemplate concatenates a TemplateLiteral's parts in order: static
// text passes through verbatim (including any backslash-backtick or
// backslash-dollar the lexer left unescaped), interpolations are
// evaluated and coerced to string with null/undefined becoming "".
func (e *Evaluator) evalTemplate(n *ast.TemplateLiteral) (value.Value, error) {
	var b strings.Builder
	for _, part := range n.Parts {
		if part.Static {
			b.WriteString(part.Text)
			continue
		}
		v, err := e.eval(part.Node)
		if err != nil {
			return nil, err
		}
		b.WriteString(grammar.ToStr(v))
	}
	return value.String(b.String()), nil
}
