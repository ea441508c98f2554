// Package query implements the read-only operations spec §4.C / §4.E
// define over a filled memo.Table: non-overlapping match enumeration,
// syntax-error span computation, and navigable (ceiling/floor) match
// lookup by rule name.
package query

import (
	"fmt"
	"sort"

	"github.com/coregx/pika/compile"
	"github.com/coregx/pika/memo"
)

// UnknownRuleError is returned when a query names a rule the grammar does
// not define.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("query: unknown rule %q", e.Name)
}

func ruleClauseID(g *compile.Grammar, name string) (uint32, error) {
	c, ok := g.ByName[name]
	if !ok {
		return 0, &UnknownRuleError{Name: name}
	}
	return c.ID, nil
}

// GetNonOverlappingMatches returns, in left-to-right order, the greedy
// non-overlapping matches of the named rule over the parsed input (spec
// §4.C): starting at cursor 0, repeatedly take the match at the smallest
// start position >= cursor, then advance past it by max(1, len).
func GetNonOverlappingMatches(g *compile.Grammar, mt *memo.Table, ruleName string) ([]*memo.Match, error) {
	id, err := ruleClauseID(g, ruleName)
	if err != nil {
		return nil, err
	}
	return mt.GetNonOverlappingMatches(id), nil
}

// Span is a half-open [Start, End) byte range.
type Span struct {
	Start, End int
}

// GetSyntaxErrors returns the spans of inputLen that no non-overlapping
// match of the named rule covers (spec §4.C): the complement of the union
// of GetNonOverlappingMatches' spans against [0, inputLen).
func GetSyntaxErrors(g *compile.Grammar, mt *memo.Table, ruleName string, inputLen int) ([]Span, error) {
	matches, err := GetNonOverlappingMatches(g, mt, ruleName)
	if err != nil {
		return nil, err
	}
	var errs []Span
	cursor := 0
	for _, m := range matches {
		if m.Key.Start > cursor {
			errs = append(errs, Span{Start: cursor, End: m.Key.Start})
		}
		if m.End() > cursor {
			cursor = m.End()
		}
	}
	if cursor < inputLen {
		errs = append(errs, Span{Start: cursor, End: inputLen})
	}
	return errs, nil
}

// GetNavigableMatches returns every stored match of the named rule, in
// ascending start-position order, suitable for stepping forward/backward
// through a parse (spec §4.E's ceiling/floor access, exposed here as a
// sorted snapshot rather than one-at-a-time navigation since the memo
// table already holds every position queried during parsing).
func GetNavigableMatches(g *compile.Grammar, mt *memo.Table, ruleName string) ([]*memo.Match, error) {
	id, err := ruleClauseID(g, ruleName)
	if err != nil {
		return nil, err
	}
	positions := mt.MatchedPositions(id)
	out := make([]*memo.Match, 0, len(positions))
	for _, pos := range positions {
		if m, ok := mt.Get(memo.Key{ClauseID: id, Start: pos}); ok {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Start < out[j].Key.Start })
	return out, nil
}

// CeilingMatch returns the named rule's match at the smallest start
// position >= pos, if any.
func CeilingMatch(g *compile.Grammar, mt *memo.Table, ruleName string, pos int) (*memo.Match, error) {
	id, err := ruleClauseID(g, ruleName)
	if err != nil {
		return nil, err
	}
	m, ok := mt.CeilingMatch(id, pos)
	if !ok {
		return nil, nil
	}
	return m, nil
}

// FloorMatch returns the named rule's match at the largest start position
// <= pos, if any.
func FloorMatch(g *compile.Grammar, mt *memo.Table, ruleName string, pos int) (*memo.Match, error) {
	id, err := ruleClauseID(g, ruleName)
	if err != nil {
		return nil, err
	}
	m, ok := mt.FloorMatch(id, pos)
	if !ok {
		return nil, nil
	}
	return m, nil
}
