package compile

import (
	"errors"
	"fmt"

	"github.com/coregx/pika/clause"
)

// Sentinel causes, wrapped by CompileError the same way nfa/error.go's
// sentinels are wrapped by nfa.CompileError for every failure the compiler
// can report.
var (
	ErrInvalidConfig = errors.New("compile: invalid config")

	// ErrEmptyGrammar is returned when Compile is called with no rules.
	ErrEmptyGrammar = errors.New("compile: grammar has no rules")

	// ErrTooManyRules is returned when more than Config.MaxGrammarRules
	// rule entries are supplied.
	ErrTooManyRules = errors.New("compile: too many rule entries")
)

// CompileError wraps a grammar-compilation failure with the pipeline stage
// that produced it, mirroring nfa.CompileError{Stage, Err}.
type CompileError struct {
	Stage string
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile: %s: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// UnnamedRuleError is returned when a rule.Rule has an empty Name.
type UnnamedRuleError struct{}

func (e *UnnamedRuleError) Error() string { return "compile: rule has no name" }

// SelfOnlyRuleError is returned when a rule's root clause is a bare
// self-reference with no other structure (Ref(name) as the entire body),
// which can never make progress.
type SelfOnlyRuleError struct {
	Name string
}

func (e *SelfOnlyRuleError) Error() string {
	return fmt.Sprintf("compile: rule %q consists only of a self-reference", e.Name)
}

// DuplicatePrecedenceError is returned when two rules of the same name
// declare the same precedence level.
type DuplicatePrecedenceError struct {
	Name       string
	Precedence int
}

func (e *DuplicatePrecedenceError) Error() string {
	return fmt.Sprintf("compile: rule %q declares precedence %d more than once", e.Name, e.Precedence)
}

// CyclicUserClauseError is returned when a rule's user-authored clause tree
// (before rule-ref resolution) revisits a clause it already contains or
// nests deeper than Config.MaxRecursionDepth, or when rule-ref resolution
// nests deeper than Config.MaxRecursionDepth (counting both sub-clause
// descents and rule-reference hops, so a cycle of bare rule-to-rule
// references always trips it). In the resolution case Name is the name of
// the reference being resolved when the limit was hit, and is empty when
// the limit was hit on a clause that is not a reference.
type CyclicUserClauseError struct {
	Name string
}

func (e *CyclicUserClauseError) Error() string {
	return fmt.Sprintf("compile: rule %q has a cyclic clause tree", e.Name)
}

// Unwrap exposes clause.ErrCyclicClause so callers can errors.Is against the
// underlying cause without matching on the rule name carried here.
func (e *CyclicUserClauseError) Unwrap() error { return clause.ErrCyclicClause }

// UnknownRuleRefError is returned when a RuleRef clause names a rule that
// does not exist in the grammar.
type UnknownRuleRefError struct {
	Name       string
	Precedence *int
}

func (e *UnknownRuleRefError) Error() string {
	if e.Precedence != nil {
		return fmt.Sprintf("compile: reference to unknown rule %q at precedence %d", e.Name, *e.Precedence)
	}
	return fmt.Sprintf("compile: reference to unknown rule %q", e.Name)
}

// Unwrap exposes clause.ErrUnknownRuleRef so callers can errors.Is against
// the underlying cause without matching on the rule name carried here.
func (e *UnknownRuleRefError) Unwrap() error { return clause.ErrUnknownRuleRef }

// UnknownLexRuleError is returned when Config.LexRuleName names a rule that
// does not exist in the grammar.
type UnknownLexRuleError struct {
	Name string
}

func (e *UnknownLexRuleError) Error() string {
	return fmt.Sprintf("compile: lex rule %q does not exist", e.Name)
}

// MissingASTLabelError is returned when a rule's root clause has no
// ASTNodeLabel and the rule also carries no other way to name its output
// node, for grammars that require every rule to produce a labeled AST node.
type MissingASTLabelError struct {
	Name string
}

func (e *MissingASTLabelError) Error() string {
	return fmt.Sprintf("compile: rule %q has no AST label", e.Name)
}
