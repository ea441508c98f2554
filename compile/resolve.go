package compile

import "github.com/coregx/pika/clause"

// resolver replaces every RuleRef placeholder with a direct pointer to the
// referenced rule's (already-rewritten, already-interned) root clause, spec
// §4.B step 6. A bare reference (RefPrecedence == nil) resolves to the
// rule's lowest precedence level, matching how the grammar author names a
// rule without mentioning a level.
type resolver struct {
	byNamePrec map[rulePrecKey]*clause.Clause
	lowest     map[string]*clause.Clause
	maxDepth   int
	seen       map[*clause.Clause]bool
}

type rulePrecKey struct {
	name string
	prec int
}

func newResolver(maxDepth int) *resolver {
	return &resolver{
		byNamePrec: make(map[rulePrecKey]*clause.Clause),
		lowest:     make(map[string]*clause.Clause),
		maxDepth:   maxDepth,
		seen:       make(map[*clause.Clause]bool),
	}
}

func (r *resolver) register(name string, precedence int, root *clause.Clause, isLowest bool) {
	r.byNamePrec[rulePrecKey{name, precedence}] = root
	if isLowest {
		r.lowest[name] = root
	}
}

func (r *resolver) lookup(name string, precedence *int) (*clause.Clause, error) {
	if precedence == nil {
		target, ok := r.lowest[name]
		if !ok {
			return nil, &UnknownRuleRefError{Name: name}
		}
		return target, nil
	}
	target, ok := r.byNamePrec[rulePrecKey{name, *precedence}]
	if !ok {
		return nil, &UnknownRuleRefError{Name: name, Precedence: precedence}
	}
	return target, nil
}

// resolve replaces RuleRef descendants of c in place and returns the
// (possibly different) clause that should take c's place in its parent.
// depth counts every level of the walk, both descents into sub-clauses and
// hops from a RuleRef to its target, so it catches chains of bare
// rule-to-rule references (rule A's entire body is Ref(B), B's is Ref(A),
// ...), which checkAcyclic cannot see since it only inspects one rule's tree
// at a time; it equally rejects any resolution walk that nests deeper than
// maxDepth, cyclic or not.
func (r *resolver) resolve(c *clause.Clause, depth int) (*clause.Clause, error) {
	if depth > r.maxDepth {
		return nil, &CyclicUserClauseError{Name: c.RefName}
	}
	if c.Kind == clause.RuleRef {
		target, err := r.lookup(c.RefName, c.RefPrecedence)
		if err != nil {
			return nil, err
		}
		return r.resolve(target, depth+1)
	}
	if r.seen[c] {
		return c, nil
	}
	r.seen[c] = true
	if c.Kind == clause.ASTLabel {
		resolved, err := r.resolve(c.Inner, depth+1)
		if err != nil {
			return nil, err
		}
		c.Inner = resolved
	}
	for i, child := range c.SubClauses {
		resolved, err := r.resolve(child, depth+1)
		if err != nil {
			return nil, err
		}
		c.SubClauses[i] = resolved
	}
	return c, nil
}
