// Package rules implements the deterministic Bangla to Devanagari rewrite
// passes. Every rule is a named pure function over a string, and the Engine
// runs them in a fixed pass order.
package rules
