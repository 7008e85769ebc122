// Package compiled holds the Expression type shared between the public
// facade (the module-root jexl package) and pkg/cache: a parsed AST
// bound to the grammar it was compiled against, ready to be evaluated
// repeatedly against different contexts without re-parsing.
//
// Expression lives in its own package, rather than on the facade type
// directly, so pkg/cache can store and retrieve *compiled.Expression
// values without importing the facade package that in turn would need
// to import pkg/cache.
package compiled
