package clause

import "errors"

// Sentinel errors surfaced by the clause package itself. compile.CyclicUserClauseError
// and compile.UnknownRuleRefError each carry the offending rule name and
// Unwrap to one of these, so errors.Is still matches the underlying cause
// through the richer compile-package error, the same layering as
// nfa.CompileError wrapping a plain sentinel from nfa/error.go.
var (
	// ErrCyclicClause indicates a user-authored clause tree revisits a
	// clause it already contains, before rule-ref resolution.
	ErrCyclicClause = errors.New("clause: cyclic clause tree")

	// ErrUnknownRuleRef indicates a RuleRef clause names a rule that does
	// not exist in the grammar being compiled.
	ErrUnknownRuleRef = errors.New("clause: unknown rule reference")
)
