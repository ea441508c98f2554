package parser

import (
	"time"

	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/compile"
	"github.com/coregx/pika/internal/conv"
	"github.com/coregx/pika/internal/sparse"
	"github.com/coregx/pika/memo"
)

// Parse drives g bottom-up and right-to-left over input, returning the
// filled memo.Table and accumulated Stats. If cfg.Deadline passes before
// input is exhausted, Parse returns the table accumulated so far together
// with an error wrapping ErrDeadlineExceeded; the table itself is always
// non-nil and always usable.
func Parse(g *compile.Grammar, input []byte, cfg Config) (*memo.Table, Stats, error) {
	mt := memo.NewTable()
	var stats Stats

	order := g.ReachableClauses
	n := conv.IntToUint32(len(order))

	lexSet := lexDescendants(g.LexRoot)

	seedIDs := make([]uint32, 0, len(order))
	for _, c := range order {
		if lexSet[c.ID] {
			continue
		}
		if c.Kind == clause.Terminal || c.CanMatchZeroChars {
			seedIDs = append(seedIDs, c.ID)
		}
	}

	checkEvery := cfg.checkEvery()
	hasDeadline := !cfg.Deadline.IsZero()

	cur := sparse.NewSparseSet(n)
	next := sparse.NewSparseSet(n)

	for pos := len(input); pos >= 0; pos-- {
		stats.Positions++

		if hasDeadline && (len(input)-pos)%checkEvery == 0 && time.Now().After(cfg.Deadline) {
			return mt, stats, &parseError{cause: ErrDeadlineExceeded}
		}

		if g.LexRoot != nil {
			stats.ClauseEvaluations++
			if m, ok := g.LexRoot.TopDownMatch(pos, input); ok {
				mt.InsertBestMatch(m)
			}
		}

		cur.Clear()
		for _, id := range seedIDs {
			cur.Insert(id)
		}

		for !cur.IsEmpty() {
			stats.Generations++
			for _, id := range cur.Values() {
				c := order[id]
				stats.ClauseEvaluations++
				m, ok := c.Match(mt, pos, input)
				if !ok {
					continue
				}
				inserted, improved := mt.InsertBestMatch(m)
				if inserted || improved {
					for _, parent := range c.SeedParents {
						if lexSet[parent.ID] {
							continue
						}
						next.Insert(parent.ID)
					}
				}
			}
			cur.Clear()
			cur, next = next, cur
		}
	}

	return mt, stats, nil
}

// lexDescendants returns the set of clause IDs reachable from lexRoot
// (including lexRoot itself), the clauses the bottom-up fixpoint must never
// schedule because parser.Parse matches them top-down instead (spec §4.D).
// Returns nil if lexRoot is nil.
func lexDescendants(lexRoot *clause.Clause) map[uint32]bool {
	if lexRoot == nil {
		return nil
	}
	seen := make(map[uint32]bool)
	var walk func(c *clause.Clause)
	walk = func(c *clause.Clause) {
		if seen[c.ID] {
			return
		}
		seen[c.ID] = true
		for _, child := range c.SubClauses {
			walk(child)
		}
	}
	walk(lexRoot)
	return seen
}

// parseError wraps a sentinel parser-level failure; kept deliberately
// minimal (no Stage field like compile.CompileError) since Parse only ever
// has one way to fail early.
type parseError struct {
	cause error
}

func (e *parseError) Error() string { return "parser: " + e.cause.Error() }
func (e *parseError) Unwrap() error { return e.cause }
