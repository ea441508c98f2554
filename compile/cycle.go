package compile

import "github.com/coregx/pika/clause"

// checkAcyclic walks root depth-first, rejecting the grammar if any clause
// appears as its own ancestor. This runs before the precedence rewrite and
// before rule-ref resolution, while every rule's tree is still exactly what
// the author built by hand (spec §4.B step 2): shared leaves reached by more
// than one path (e.g. the same Nothing() reused in two places) are fine,
// only a clause revisiting itself along a single path is rejected.
func checkAcyclic(root *clause.Clause, maxDepth int) bool {
	onPath := make(map[*clause.Clause]bool)
	var walk func(c *clause.Clause, depth int) bool
	walk = func(c *clause.Clause, depth int) bool {
		if depth > maxDepth {
			return false
		}
		if onPath[c] {
			return false
		}
		onPath[c] = true
		defer delete(onPath, c)
		for _, child := range c.SubClauses {
			if !walk(child, depth+1) {
				return false
			}
		}
		if c.Kind == clause.ASTLabel {
			if !walk(c.Inner, depth+1) {
				return false
			}
		}
		return true
	}
	return walk(root, 0)
}
