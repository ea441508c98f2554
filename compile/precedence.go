package compile

import (
	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/rule"
)

// collectSelfRefs returns every bare self-reference to name inside root, in
// left-to-right pre-order — the textual order the grammar author wrote
// them in. A "bare" reference is a RuleRef with no explicit precedence
// pinned (RefPrecedence == nil); a reference the author already pinned to a
// specific level (e.g. Name[2]) is left alone by the rewrite.
func collectSelfRefs(root *clause.Clause, name string) []*clause.Clause {
	var refs []*clause.Clause
	var walk func(c *clause.Clause)
	walk = func(c *clause.Clause) {
		if c.Kind == clause.RuleRef {
			if c.RefName == name && c.RefPrecedence == nil {
				refs = append(refs, c)
			}
			return
		}
		if c.Kind == clause.ASTLabel {
			walk(c.Inner)
			return
		}
		for _, child := range c.SubClauses {
			walk(child)
		}
	}
	walk(root)
	return refs
}

// deepCopy clones a clause tree before any interning has run, so that the
// clone's self-references can be retargeted independently of the original's
// (spec §4.B step 3, the Longest(c, duplicate(c)) construction for
// left-associative levels with more than one self-reference).
func deepCopy(c *clause.Clause) *clause.Clause {
	cp := *c
	if c.Ranges != nil {
		cp.Ranges = append([]clause.ByteRange(nil), c.Ranges...)
	}
	if c.Literal != nil {
		cp.Literal = append([]byte(nil), c.Literal...)
	}
	if c.RefPrecedence != nil {
		p := *c.RefPrecedence
		cp.RefPrecedence = &p
	}
	if c.Inner != nil {
		cp.Inner = deepCopy(c.Inner)
	}
	if c.SubClauses != nil {
		cp.SubClauses = make([]*clause.Clause, len(c.SubClauses))
		for i, child := range c.SubClauses {
			cp.SubClauses[i] = deepCopy(child)
		}
	}
	if c.SubClauseLabels != nil {
		cp.SubClauseLabels = append([]string(nil), c.SubClauseLabels...)
	}
	return &cp
}

func pinPrecedence(ref *clause.Clause, precedence int) {
	p := precedence
	ref.RefPrecedence = &p
}

// rewriteLevel applies spec §4.B step 3 to one precedence level of a rule
// group. levels is sorted ascending by precedence; i is this level's index.
func rewriteLevel(levels []*rulePrecLevel, i int) {
	n := len(levels)
	lvl := levels[i]
	nextIdx := (i + 1) % n
	nextPrec := levels[nextIdx].precedence

	refs := collectSelfRefs(lvl.root, lvl.name)
	switch {
	case len(refs) == 0:
		// nothing to retarget
	case len(refs) == 1:
		if lvl.assoc == rule.None {
			pinPrecedence(refs[0], nextPrec)
		} else {
			pinPrecedence(refs[0], lvl.precedence)
		}
	default:
		switch lvl.assoc {
		case rule.Left:
			dup := deepCopy(lvl.root)
			dupRefs := collectSelfRefs(dup, lvl.name)
			for idx, r := range refs {
				if idx == 0 {
					pinPrecedence(r, lvl.precedence)
				} else {
					pinPrecedence(r, nextPrec)
				}
			}
			for _, r := range dupRefs {
				pinPrecedence(r, nextPrec)
			}
			lvl.root = clause.LongestOf(lvl.root, dup)
		case rule.Right:
			last := len(refs) - 1
			for idx, r := range refs {
				if idx == last {
					pinPrecedence(r, lvl.precedence)
				} else {
					pinPrecedence(r, nextPrec)
				}
			}
		default: // None
			for _, r := range refs {
				pinPrecedence(r, nextPrec)
			}
		}
	}

	if i != n-1 {
		lvl.root = clause.FirstOf(lvl.root, clause.RefPrec(lvl.name, nextPrec))
	}
}

// rulePrecLevel is one precedence level of a rule group, carried through the
// rewrite before being written back into the compiled rule index.
type rulePrecLevel struct {
	name       string
	precedence int
	assoc      rule.Associativity
	root       *clause.Clause
	astLabel   string
}
