package clause

import "github.com/coregx/pika/memo"

// TopDownMatch evaluates c recursively, without consulting or writing a
// memo table. Descendants of a grammar's declared lex clause are matched
// this way (spec §4.D, "Top-down mode"): purely lexical sub-trees are
// typically small and re-evaluated rarely enough that memo writes would
// only add overhead and pollute the table with entries no other rule ever
// queries. The lex clause itself must be acyclic; compile.Compile verifies
// this the same way it verifies the rest of the user's clause trees.
func (c *Clause) TopDownMatch(start int, input []byte) (*memo.Match, bool) {
	switch c.Kind {
	case Terminal:
		return c.matchTerminal(start, input)
	case Seq:
		return c.topDownSeq(start, input)
	case First:
		return c.topDownFirst(start, input)
	case Longest:
		return c.topDownLongest(start, input)
	case OneOrMore:
		return c.topDownOneOrMore(start, input)
	case ZeroOrMore:
		return c.topDownZeroOrMore(start, input)
	case Optional:
		return c.topDownOptional(start, input)
	case FollowedBy:
		return c.topDownFollowedBy(start, input)
	case NotFollowedBy:
		return c.topDownNotFollowedBy(start, input)
	default:
		panic("clause: TopDownMatch called on compile-time-only or unknown kind")
	}
}

func (c *Clause) topDownSeq(start int, input []byte) (*memo.Match, bool) {
	pos := start
	subs := make([]*memo.Match, 0, len(c.SubClauses))
	for _, child := range c.SubClauses {
		m, ok := child.TopDownMatch(pos, input)
		if !ok {
			return nil, false
		}
		subs = append(subs, m)
		pos += m.Len
	}
	return &memo.Match{Key: c.key(start), Len: pos - start, SubMatches: subs}, true
}

func (c *Clause) topDownFirst(start int, input []byte) (*memo.Match, bool) {
	if c.LiteralDispatch != nil && !c.LiteralDispatch.MayMatchAt(input, start) {
		return nil, false
	}
	for i, child := range c.SubClauses {
		if m, ok := child.TopDownMatch(start, input); ok {
			return &memo.Match{Key: c.key(start), FirstMatchingSubClauseIdx: i, Len: m.Len, SubMatches: []*memo.Match{m}}, true
		}
	}
	return nil, false
}

func (c *Clause) topDownLongest(start int, input []byte) (*memo.Match, bool) {
	var best *memo.Match
	bestIdx := 0
	for i, child := range c.SubClauses {
		if m, ok := child.TopDownMatch(start, input); ok {
			if best == nil || m.Len > best.Len {
				best, bestIdx = m, i
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return &memo.Match{Key: c.key(start), FirstMatchingSubClauseIdx: bestIdx, Len: best.Len, SubMatches: []*memo.Match{best}}, true
}

// runLength returns the bulk-scannable run length at start if child is a
// CharSet or AnyChar terminal, and ok=false otherwise (the caller falls
// back to one recursive call per repetition).
func runLength(child *Clause, start int, input []byte) (int, bool) {
	if child.Kind != Terminal {
		return 0, false
	}
	switch child.TKind {
	case AnyCharTerminal:
		return scanRun(input, start, func(byte) bool { return true }), true
	case CharSetTerminal:
		return scanRun(input, start, func(b byte) bool { return inRanges(b, child.Ranges) != child.Negated }), true
	default:
		return 0, false
	}
}

func (c *Clause) topDownOneOrMore(start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if n, ok := runLength(child, start, input); ok {
		if n == 0 {
			return nil, false
		}
		return &memo.Match{Key: c.key(start), Len: n}, true
	}
	head, ok := child.TopDownMatch(start, input)
	if !ok {
		return nil, false
	}
	subs := []*memo.Match{head}
	pos := start + head.Len
	for head.Len > 0 {
		head, ok = child.TopDownMatch(pos, input)
		if !ok {
			break
		}
		subs = append(subs, head)
		pos += head.Len
	}
	return &memo.Match{Key: c.key(start), Len: pos - start, SubMatches: subs}, true
}

func (c *Clause) topDownZeroOrMore(start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if n, ok := runLength(child, start, input); ok {
		return &memo.Match{Key: c.key(start), Len: n}, true
	}
	pos := start
	var subs []*memo.Match
	for {
		m, ok := child.TopDownMatch(pos, input)
		if !ok || m.Len == 0 {
			break
		}
		subs = append(subs, m)
		pos += m.Len
	}
	return &memo.Match{Key: c.key(start), Len: pos - start, SubMatches: subs}, true
}

func (c *Clause) topDownOptional(start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if m, ok := child.TopDownMatch(start, input); ok {
		return &memo.Match{Key: c.key(start), Len: m.Len, SubMatches: []*memo.Match{m}}, true
	}
	return &memo.Match{Key: c.key(start), Len: 0}, true
}

func (c *Clause) topDownFollowedBy(start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if m, ok := child.TopDownMatch(start, input); ok {
		return &memo.Match{Key: c.key(start), Len: 0, SubMatches: []*memo.Match{m}}, true
	}
	return nil, false
}

func (c *Clause) topDownNotFollowedBy(start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if _, ok := child.TopDownMatch(start, input); ok {
		return nil, false
	}
	return &memo.Match{Key: c.key(start), Len: 0}, true
}
