// Package clause implements the clause DAG: the concrete node kinds a
// compiled grammar is built from (sequence, ordered choice, longest-of,
// repetition, lookahead, and terminal primitives), plus the per-kind
// matching semantics that the parser driver evaluates bottom-up against a
// memo table.
//
// Clause values form a directed acyclic graph after compilation. Before
// compilation, a grammar author (or the compile package acting on their
// behalf) builds a tree of Clause values using the constructors in this
// package; RuleRef and ASTLabel nodes are compile-time placeholders that
// never survive into the reachable, interned DAG the parser walks.
package clause

import "fmt"

// Kind identifies the shape of a clause and which fields of Clause are
// meaningful.
type Kind uint8

const (
	// Terminal clauses consult the input directly; see TerminalKind.
	Terminal Kind = iota
	// Seq matches each sub-clause in order, contiguously.
	Seq
	// First is ordered choice: the first sub-clause that matches wins,
	// regardless of whether a later alternative would match more input.
	First
	// Longest examines every sub-clause and keeps the longest match,
	// breaking ties by the lowest sub-clause index. This is how
	// left-recursive rules are realised after the precedence rewrite.
	Longest
	// OneOrMore requires one match of its single sub-clause, optionally
	// extended by another match of the OneOrMore clause itself.
	OneOrMore
	// ZeroOrMore is OneOrMore's zero-width-safe sibling: it never fails.
	ZeroOrMore
	// Optional matches its sub-clause if possible, and zero characters
	// otherwise; it never fails.
	Optional
	// FollowedBy is positive lookahead: zero-width, succeeds iff its
	// sub-clause matches.
	FollowedBy
	// NotFollowedBy is negative lookahead: zero-width, succeeds iff its
	// sub-clause does not match.
	NotFollowedBy
	// RuleRef is a compile-time-only placeholder for a reference to
	// another rule by name; compile.Compile resolves every RuleRef to a
	// direct pointer to the referenced rule's root clause.
	RuleRef
	// ASTLabel is a compile-time-only wrapper attaching an AST node label
	// to the clause in a given position; compile.Compile lifts the label
	// into the parent (or the owning rule) and removes this node.
	ASTLabel
)

// String returns a human-readable name for the clause kind.
func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case Seq:
		return "Seq"
	case First:
		return "First"
	case Longest:
		return "Longest"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrMore:
		return "ZeroOrMore"
	case Optional:
		return "Optional"
	case FollowedBy:
		return "FollowedBy"
	case NotFollowedBy:
		return "NotFollowedBy"
	case RuleRef:
		return "RuleRef"
	case ASTLabel:
		return "ASTLabel"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// TerminalKind identifies which terminal primitive a Terminal clause is.
type TerminalKind uint8

const (
	// CharSetTerminal matches one byte against a (possibly negated) set of
	// byte ranges.
	CharSetTerminal TerminalKind = iota
	// LiteralTerminal matches an exact byte sequence.
	LiteralTerminal
	// AnyCharTerminal matches any single byte, if one remains.
	AnyCharTerminal
	// NothingTerminal always matches with zero length.
	NothingTerminal
)

// String returns a human-readable name for the terminal kind.
func (k TerminalKind) String() string {
	switch k {
	case CharSetTerminal:
		return "CharSet"
	case LiteralTerminal:
		return "Literal"
	case AnyCharTerminal:
		return "AnyChar"
	case NothingTerminal:
		return "Nothing"
	default:
		return fmt.Sprintf("TerminalKind(%d)", uint8(k))
	}
}

// ByteRange is an inclusive [Lo, Hi] byte range, one element of a character
// class.
type ByteRange struct {
	Lo, Hi byte
}

// Contains reports whether b falls within the range.
func (r ByteRange) Contains(b byte) bool {
	return b >= r.Lo && b <= r.Hi
}

// RuleKey names one precedence level of a rule; used for Clause.RuleNames,
// populated after interning when a clause is the root of one or more rules.
type RuleKey struct {
	Name       string
	Precedence int
}

// Clause is a node in the clause DAG. See the package doc and spec §3 for
// the full semantics of each field.
type Clause struct {
	// ID is assigned during compilation (reachability ordering) and is the
	// key used by the memo table. Zero until compiled.
	ID uint32

	Kind Kind

	// Terminal-only fields (Kind == Terminal).
	TKind   TerminalKind
	Ranges  []ByteRange // CharSetTerminal
	Negated bool        // CharSetTerminal: match bytes NOT in Ranges
	Literal []byte      // LiteralTerminal

	// RuleRef-only field (Kind == RuleRef, pre-resolution).
	RefName string
	// RefPrecedence, if non-nil, pins the reference to one explicit
	// precedence level (the textual form's `Name[prec]`-style reference);
	// nil means "the bare name", resolved to its lowest precedence level.
	RefPrecedence *int

	// ASTLabel-only fields (Kind == ASTLabel, pre-lift).
	ASTLabelName string
	Inner        *Clause

	// SubClauses are the ordered children for every other kind. Terminal
	// and (post-resolution) RuleRef have none.
	SubClauses []*Clause
	// SubClauseLabels is parallel to SubClauses; "" means no label. Only
	// used for AST construction, never for matching.
	SubClauseLabels []string

	// CanMatchZeroChars is computed once, in reverse topological order,
	// during compilation (spec §4.B step 8).
	CanMatchZeroChars bool

	// SeedParents are the clauses that must be re-activated when this
	// clause newly matches at some position (spec §4.B step 9).
	SeedParents []*Clause

	// RuleNames records which (name, precedence) rules this clause is the
	// root of, after interning may have merged several rules' roots into
	// one shared node.
	RuleNames []RuleKey

	// StringRepr is the canonical string form computed bottom-up during
	// interning; two clauses with equal StringRepr become one shared node.
	StringRepr string

	// LiteralDispatch, when non-nil, is a compiler-attached fast path for a
	// First clause whose every sub-clause is a literal terminal (see
	// internal/litdispatch). It is purely a performance accelerator: when
	// it reports no sub-clause can possibly match, First.Match short
	// circuits; otherwise the normal ordered scan runs and decides the
	// exact result, so omitting or misconfiguring it only costs speed, not
	// correctness.
	LiteralDispatch LiteralPrefilter
}

// LiteralPrefilter is the narrow interface First.Match uses to skip the
// per-alternative scan when no literal can possibly match at a position.
// internal/litdispatch.Dispatcher implements it; kept as an interface here
// so clause has no import-time dependency on the ahocorasick wiring.
type LiteralPrefilter interface {
	MayMatchAt(input []byte, pos int) bool
}
