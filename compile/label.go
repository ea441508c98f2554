package compile

import "github.com/coregx/pika/clause"

// liftLabels implements spec §4.B step 4. An ASTNodeLabel sitting directly
// at a rule's root promotes its label to the rule itself and disappears;
// one sitting as a child elsewhere is removed from its parent's SubClauses
// and its label recorded in the parent's SubClauseLabels at the same index.
// Returns the (possibly different) root clause and the label lifted from
// it, if any.
func liftLabels(root *clause.Clause) (*clause.Clause, string) {
	if root.Kind == clause.ASTLabel {
		inner := liftLabelsInner(root.Inner, map[*clause.Clause]bool{})
		return inner, root.ASTLabelName
	}
	liftLabelsInner(root, map[*clause.Clause]bool{})
	return root, ""
}

func liftLabelsInner(c *clause.Clause, seen map[*clause.Clause]bool) *clause.Clause {
	if seen[c] {
		return c
	}
	seen[c] = true

	if len(c.SubClauseLabels) < len(c.SubClauses) {
		labels := make([]string, len(c.SubClauses))
		copy(labels, c.SubClauseLabels)
		c.SubClauseLabels = labels
	}

	for i, child := range c.SubClauses {
		if child.Kind == clause.ASTLabel {
			c.SubClauses[i] = liftLabelsInner(child.Inner, seen)
			c.SubClauseLabels[i] = child.ASTLabelName
			continue
		}
		c.SubClauses[i] = liftLabelsInner(child, seen)
	}
	return c
}
