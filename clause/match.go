package clause

import (
	"fmt"

	"github.com/coregx/pika/memo"
)

// Match evaluates c bottom-up against mt at the given start position,
// consulting only already-memoized child results (spec §4.A). It returns a
// freshly constructed match (never one already stored in mt) or (nil,
// false) on failure; the driver is responsible for inserting the result via
// mt.InsertBestMatch.
//
// Terminal clauses ignore mt entirely: their result is computed directly
// from input. Every other kind looks up its children through mt, which is
// exactly what makes a single pass over decreasing start positions
// sufficient — by the time c is evaluated at position p, every clause's
// matches at positions > p (and, for zero-width clauses, at p itself) are
// already settled.
func (c *Clause) Match(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	switch c.Kind {
	case Terminal:
		return c.matchTerminal(start, input)
	case Seq:
		return c.matchSeq(mt, start, input)
	case First:
		return c.matchFirst(mt, start, input)
	case Longest:
		return c.matchLongest(mt, start, input)
	case OneOrMore:
		return c.matchOneOrMore(mt, start, input)
	case ZeroOrMore:
		return c.matchZeroOrMore(mt, start, input)
	case Optional:
		return c.matchOptional(mt, start, input)
	case FollowedBy:
		return c.matchFollowedBy(mt, start, input)
	case NotFollowedBy:
		return c.matchNotFollowedBy(mt, start, input)
	case RuleRef, ASTLabel:
		panic(fmt.Sprintf("clause: Match called on unresolved %s clause (compile-time-only kind escaped compilation)", c.Kind))
	default:
		panic(fmt.Sprintf("clause: Match called on unknown kind %d", c.Kind))
	}
}

func (c *Clause) key(start int) memo.Key {
	return memo.Key{ClauseID: c.ID, Start: start}
}

func (c *Clause) matchTerminal(start int, input []byte) (*memo.Match, bool) {
	switch c.TKind {
	case NothingTerminal:
		return &memo.Match{Key: c.key(start), Len: 0}, true
	case AnyCharTerminal:
		if start >= len(input) {
			return nil, false
		}
		return &memo.Match{Key: c.key(start), Len: 1}, true
	case CharSetTerminal:
		if start >= len(input) {
			return nil, false
		}
		b := input[start]
		if inRanges(b, c.Ranges) != c.Negated {
			return &memo.Match{Key: c.key(start), Len: 1}, true
		}
		return nil, false
	case LiteralTerminal:
		end := start + len(c.Literal)
		if end > len(input) {
			return nil, false
		}
		for i, want := range c.Literal {
			if input[start+i] != want {
				return nil, false
			}
		}
		return &memo.Match{Key: c.key(start), Len: len(c.Literal)}, true
	default:
		panic(fmt.Sprintf("clause: unknown terminal kind %d", c.TKind))
	}
}

func inRanges(b byte, ranges []ByteRange) bool {
	for _, r := range ranges {
		if r.Contains(b) {
			return true
		}
	}
	return false
}

func (c *Clause) matchSeq(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	pos := start
	subs := make([]*memo.Match, 0, len(c.SubClauses))
	for _, child := range c.SubClauses {
		m, ok := mt.LookUpBestMatch(child.key(pos), child.CanMatchZeroChars)
		if !ok {
			return nil, false
		}
		subs = append(subs, m)
		pos += m.Len
	}
	return &memo.Match{Key: c.key(start), Len: pos - start, SubMatches: subs}, true
}

func (c *Clause) matchFirst(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	if c.LiteralDispatch != nil && !c.LiteralDispatch.MayMatchAt(input, start) {
		return nil, false
	}
	for i, child := range c.SubClauses {
		m, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars)
		if ok {
			return &memo.Match{
				Key:                       c.key(start),
				FirstMatchingSubClauseIdx: i,
				Len:                       m.Len,
				SubMatches:                []*memo.Match{m},
			}, true
		}
	}
	return nil, false
}

func (c *Clause) matchLongest(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	var best *memo.Match
	bestIdx := 0
	for i, child := range c.SubClauses {
		m, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars)
		if !ok {
			continue
		}
		if best == nil || m.Len > best.Len {
			best = m
			bestIdx = i
		}
	}
	if best == nil {
		return nil, false
	}
	return &memo.Match{
		Key:                       c.key(start),
		FirstMatchingSubClauseIdx: bestIdx,
		Len:                       best.Len,
		SubMatches:                []*memo.Match{best},
	}, true
}

func (c *Clause) matchOneOrMore(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	head, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars)
	if !ok {
		return nil, false
	}
	tailStart := start + head.Len
	if tail, ok := mt.LookUpBestMatch(c.key(tailStart), c.CanMatchZeroChars); ok && tail.Len > 0 {
		return &memo.Match{Key: c.key(start), Len: head.Len + tail.Len, SubMatches: []*memo.Match{head, tail}}, true
	}
	return &memo.Match{Key: c.key(start), Len: head.Len, SubMatches: []*memo.Match{head}}, true
}

func (c *Clause) matchZeroOrMore(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	head, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars)
	if !ok || head.Len == 0 {
		// Nothing left to repeat (or child only matched zero-width, which
		// would loop forever): stop here with an empty match.
		return &memo.Match{Key: c.key(start), Len: 0}, true
	}
	tailStart := start + head.Len
	tail, ok := mt.LookUpBestMatch(c.key(tailStart), true)
	if !ok {
		// ZeroOrMore always can match zero chars, so this should not
		// happen; fall back to just the head defensively.
		return &memo.Match{Key: c.key(start), Len: head.Len, SubMatches: []*memo.Match{head}}, true
	}
	return &memo.Match{Key: c.key(start), Len: head.Len + tail.Len, SubMatches: []*memo.Match{head, tail}}, true
}

func (c *Clause) matchOptional(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if m, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars); ok {
		return &memo.Match{Key: c.key(start), Len: m.Len, SubMatches: []*memo.Match{m}}, true
	}
	return &memo.Match{Key: c.key(start), Len: 0}, true
}

func (c *Clause) matchFollowedBy(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if m, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars); ok {
		return &memo.Match{Key: c.key(start), Len: 0, SubMatches: []*memo.Match{m}}, true
	}
	return nil, false
}

func (c *Clause) matchNotFollowedBy(mt *memo.Table, start int, input []byte) (*memo.Match, bool) {
	child := c.SubClauses[0]
	if _, ok := mt.LookUpBestMatch(child.key(start), child.CanMatchZeroChars); ok {
		return nil, false
	}
	return &memo.Match{Key: c.key(start), Len: 0}, true
}
