// Package rule defines the grammar author's view of a named production: a
// precedence level, an associativity, and the clause tree that implements it.
//
// Rule values are compile-time entities only. Once compile.Compile has run,
// parsing and querying operate entirely on the clause.Clause DAG; no Rule is
// consulted again except by name, through the compiled Grammar's rule index.
package rule

import "github.com/coregx/pika/clause"

// Associativity selects how repeated self-references at the same precedence
// level are retargeted during the compiler's precedence/associativity
// rewrite (see compile.Compile).
type Associativity uint8

const (
	// None means every self-reference is retargeted to the next higher
	// precedence level; there is no same-level recursion left after rewrite.
	None Associativity = iota
	// Left means the left-most self-reference stays at the same level and
	// all others move to the next higher level.
	Left
	// Right means the right-most self-reference stays at the same level and
	// all others move to the next higher level.
	Right
)

// String returns a human-readable name for the associativity.
func (a Associativity) String() string {
	switch a {
	case None:
		return "None"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Associativity(invalid)"
	}
}

// Rule is a named production: a precedence level, an associativity, and a
// root clause. Multiple Rule values may share a Name to encode distinct
// precedence levels of the same production (see spec §4.B step 1).
type Rule struct {
	// Name identifies the production. Multiple rules may share a Name at
	// different Precedence levels.
	Name string

	// Precedence is a non-negative integer; higher binds tighter. Rules
	// that do not participate in precedence climbing should all use 0.
	Precedence int

	// Assoc controls the precedence/associativity rewrite for this level.
	// Ignored when Name has only a single precedence level.
	Assoc Associativity

	// Root is the clause tree for this rule, as authored (pre-rewrite,
	// pre-interning). RuleRef placeholders inside Root refer to other
	// rules by bare name or by name with precedence encoded separately.
	Root *clause.Clause

	// ASTLabel is an optional label for AST construction. It is normally
	// populated by AST-label lifting (spec §4.B step 4) rather than set
	// directly, but an author may set it up front for a rule whose root is
	// not itself an ASTNodeLabel clause.
	ASTLabel string
}

// Key identifies one precedence level of a named rule.
type Key struct {
	Name       string
	Precedence int
}
