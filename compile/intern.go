package compile

import "github.com/coregx/pika/clause"

// interner collapses structurally identical clause sub-trees into one
// shared pointer, the same canonicalize-then-dedup idea as the teacher's
// nfa builder interning identical states by their transition signature
// (nfa/builder.go). Two clauses are identical once their CanonicalString
// representations match, which is only meaningful once every descendant has
// already been interned (hence a strict postorder walk).
type interner struct {
	byRepr map[string]*clause.Clause
	done   map[*clause.Clause]*clause.Clause
}

func newInterner() *interner {
	return &interner{
		byRepr: make(map[string]*clause.Clause),
		done:   make(map[*clause.Clause]*clause.Clause),
	}
}

// intern returns the canonical representative for c, interning every
// descendant along the way. RuleRef clauses are interned as the opaque
// placeholders they still are at this stage (step 5 runs before rule-ref
// resolution); two RuleRefs to the same name and precedence are equal and
// collapse just like any other clause.
func (in *interner) intern(c *clause.Clause) *clause.Clause {
	if got, ok := in.done[c]; ok {
		return got
	}

	if c.Kind == clause.ASTLabel {
		// Labels are lifted before interning runs; if one somehow survives
		// (a nested label the lift pass didn't reach), intern its inner
		// clause first; the wrapper itself is then interned by its
		// canonical string like any other clause.
		c.Inner = in.intern(c.Inner)
	}
	for i, child := range c.SubClauses {
		c.SubClauses[i] = in.intern(child)
	}

	c.StringRepr = c.CanonicalString()
	if existing, ok := in.byRepr[c.StringRepr]; ok {
		existing.RuleNames = append(existing.RuleNames, c.RuleNames...)
		in.done[c] = existing
		return existing
	}
	in.byRepr[c.StringRepr] = c
	in.done[c] = c
	return c
}
