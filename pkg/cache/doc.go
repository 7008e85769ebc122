// Package cache provides a thread-safe LRU cache of compiled
// expressions, keyed by a content hash of their source string.
//
// It is used by the facade's WithCache option so that evaluating the
// same expression source against many different contexts (the common
// host pattern: compile once, evaluate many) does not re-lex and
// re-parse on every call.
package cache
