package parser

// Fixed precedence levels for constructs that are part of the language's
// syntax rather than the grammar's data-driven operator table. Binary
// operator precedence itself comes from grammar.BinaryOp.Precedence
// (default table: `=`=2, `||`/`&&`=10, comparisons/`in`=20, `+`/`-`=30,
// `*`/`/`/`//`=40, `%`/`^`=50); these constants slot the remaining
// constructs in among that table.
const (
	// precedenceTernary sits just above assignment (2): `a + b ? c : d`
	// applies to the whole sum, but `x = a ? b : c` assigns the ternary's
	// result rather than having `=` bind inside it.
	precedenceTernary = 3
	// precedencePipe is low, just above ternary: `a + b | f` pipes the
	// whole sum through f, not just b.
	precedencePipe = 5
	// precedenceSelect is the tightest binding level: dot/filter/indexer
	// chains always bind before any arithmetic or logical operator.
	precedenceSelect = 1000
	// precedenceUnary is where a unary operator's operand is parsed: above
	// every default binary operator so `!a+b` is `(!a)+b`, but below
	// precedenceSelect so `!a.b` is `!(a.b)`.
	precedenceUnary = 60
)
