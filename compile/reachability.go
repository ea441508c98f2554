package compile

import (
	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/internal/conv"
)

// orderReachable performs a postorder walk from every entry root, so that
// every clause appears after all of its children (spec §4.B step 7): this
// single order is reused, unchanged, for ID assignment, zero-width analysis
// (step 8) and seed-parent linking (step 9), each of which needs children
// processed before parents.
func orderReachable(entries []*clause.Clause) []*clause.Clause {
	var order []*clause.Clause
	visited := make(map[*clause.Clause]bool)
	var walk func(c *clause.Clause)
	walk = func(c *clause.Clause) {
		if visited[c] {
			return
		}
		visited[c] = true
		for _, child := range c.SubClauses {
			walk(child)
		}
		order = append(order, c)
	}
	for _, e := range entries {
		walk(e)
	}
	return order
}

// assignIDs gives every clause in order (children-before-parents) a
// sequential ID, the key the memo table indexes matches on.
func assignIDs(order []*clause.Clause) {
	for i, c := range order {
		c.ID = conv.IntToUint32(i)
	}
}

// computeZeroWidth fills in CanMatchZeroChars for every clause in order,
// spec §4.B step 8. Processing children-before-parents means each clause's
// rule only ever reads already-finalized child values.
func computeZeroWidth(order []*clause.Clause) {
	for _, c := range order {
		switch c.Kind {
		case clause.Terminal:
			switch c.TKind {
			case clause.NothingTerminal:
				c.CanMatchZeroChars = true
			case clause.LiteralTerminal:
				c.CanMatchZeroChars = len(c.Literal) == 0
			default: // AnyChar, CharSet
				c.CanMatchZeroChars = false
			}
		case clause.Seq:
			all := true
			for _, child := range c.SubClauses {
				if !child.CanMatchZeroChars {
					all = false
					break
				}
			}
			c.CanMatchZeroChars = all
		case clause.First, clause.Longest:
			any := false
			for _, child := range c.SubClauses {
				if child.CanMatchZeroChars {
					any = true
					break
				}
			}
			c.CanMatchZeroChars = any
		case clause.OneOrMore:
			c.CanMatchZeroChars = c.SubClauses[0].CanMatchZeroChars
		case clause.ZeroOrMore, clause.Optional, clause.FollowedBy, clause.NotFollowedBy:
			c.CanMatchZeroChars = true
		}
	}
}

// linkSeedParents fills in SeedParents for every clause in order, spec
// §4.B step 9: a clause's seed children are the sub-clauses whose own new
// match must re-activate it during the bottom-up fixpoint. For Seq this is
// the first child plus every child immediately following a
// can-match-zero-chars predecessor; every other container kind treats all
// of its children as seeds.
func linkSeedParents(order []*clause.Clause) {
	addSeed := func(parent, child *clause.Clause) {
		child.SeedParents = append(child.SeedParents, parent)
	}
	for _, c := range order {
		switch c.Kind {
		case clause.Seq:
			for i, child := range c.SubClauses {
				if i == 0 || c.SubClauses[i-1].CanMatchZeroChars {
					addSeed(c, child)
				}
			}
		case clause.First, clause.Longest, clause.OneOrMore, clause.ZeroOrMore,
			clause.Optional, clause.FollowedBy, clause.NotFollowedBy:
			for _, child := range c.SubClauses {
				addSeed(c, child)
			}
		}
	}
}
