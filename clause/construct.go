package clause

// Constructors build an unfrozen clause tree: the shape a grammar author
// (or a textual front-end, out of scope here) hands to compile.Compile.
// None of these assign ID, CanMatchZeroChars, SeedParents, or StringRepr —
// those are filled in by the compiler's pipeline.

// SeqOf returns a clause that matches each child in order, contiguously.
func SeqOf(children ...*Clause) *Clause {
	return &Clause{Kind: Seq, SubClauses: children}
}

// FirstOf returns an ordered-choice clause: the first child that matches at
// a position wins, even if a later child would match more input.
func FirstOf(children ...*Clause) *Clause {
	return &Clause{Kind: First, SubClauses: children}
}

// LongestOf returns a clause that tries every child and keeps the longest
// match, breaking ties by lowest child index. This is the rewrite target
// for left-recursive rules (spec §4.B step 3).
func LongestOf(children ...*Clause) *Clause {
	return &Clause{Kind: Longest, SubClauses: children}
}

// OneOrMoreOf returns a clause requiring at least one match of child,
// right-recursively extended by further matches of itself.
func OneOrMoreOf(child *Clause) *Clause {
	return &Clause{Kind: OneOrMore, SubClauses: []*Clause{child}}
}

// ZeroOrMoreOf returns a clause that never fails: zero or more matches of
// child.
func ZeroOrMoreOf(child *Clause) *Clause {
	return &Clause{Kind: ZeroOrMore, SubClauses: []*Clause{child}}
}

// OptionalOf returns a clause that never fails: child if it matches, zero
// characters otherwise.
func OptionalOf(child *Clause) *Clause {
	return &Clause{Kind: Optional, SubClauses: []*Clause{child}}
}

// FollowedByOf returns positive lookahead over child: zero-width, succeeds
// iff child matches.
func FollowedByOf(child *Clause) *Clause {
	return &Clause{Kind: FollowedBy, SubClauses: []*Clause{child}}
}

// NotFollowedByOf returns negative lookahead over child: zero-width,
// succeeds iff child does not match.
func NotFollowedByOf(child *Clause) *Clause {
	return &Clause{Kind: NotFollowedBy, SubClauses: []*Clause{child}}
}

// CharSet returns a terminal matching one byte against ranges (or, if
// negated, matching one byte NOT covered by ranges).
func CharSet(negated bool, ranges ...ByteRange) *Clause {
	rs := make([]ByteRange, len(ranges))
	copy(rs, ranges)
	return &Clause{Kind: Terminal, TKind: CharSetTerminal, Ranges: rs, Negated: negated}
}

// Lit returns a terminal matching the exact byte sequence s.
func Lit(s string) *Clause {
	return &Clause{Kind: Terminal, TKind: LiteralTerminal, Literal: []byte(s)}
}

// AnyChar returns a terminal matching any single remaining byte.
func AnyChar() *Clause {
	return &Clause{Kind: Terminal, TKind: AnyCharTerminal}
}

// Nothing returns a terminal that always matches with zero length.
func Nothing() *Clause {
	return &Clause{Kind: Terminal, TKind: NothingTerminal}
}

// Ref returns an unresolved reference to the rule named name, at its lowest
// precedence level. compile.Compile replaces it with a direct pointer to the
// resolved rule's root clause.
func Ref(name string) *Clause {
	return &Clause{Kind: RuleRef, RefName: name}
}

// RefPrec returns an unresolved reference pinned to one precedence level of
// the rule named name.
func RefPrec(name string, precedence int) *Clause {
	p := precedence
	return &Clause{Kind: RuleRef, RefName: name, RefPrecedence: &p}
}

// Label attaches an AST node label to inner. Sitting directly at a rule's
// root, the label is lifted into the rule itself; elsewhere it is lifted
// into the parent's SubClauseLabels. Either way the ASTLabel node itself is
// removed during compilation and never affects matching.
func Label(name string, inner *Clause) *Clause {
	return &Clause{Kind: ASTLabel, ASTLabelName: name, Inner: inner}
}
