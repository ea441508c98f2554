// Package memo implements the pika memo table: a mapping from (clause,
// start position) to the best known match, plus the ordered per-clause
// indices that the query surface uses for recovery (ceiling/floor lookups,
// non-overlapping enumeration, non-match span enumeration).
//
// A Table is owned by exactly one parser.Parse call and is not safe for
// concurrent mutation (spec §5); this package carries no locking, unlike
// the teacher's dfa/lazy.Cache, because the single-writer rule is an
// explicit part of the design, not an incidental one.
package memo

import "sort"

// Key identifies one memo slot: a clause (by its compile-time-assigned ID)
// and a start position in the input. Clause is referenced by ID rather than
// by pointer so this package has no dependency on the clause package — the
// two packages compose in one direction only (clause.Clause.Match consults
// a *Table), mirroring how the teacher's dfa/lazy package depends on
// nfa.StateID without depending on the nfa package's State type.
type Key struct {
	ClauseID uint32
	Start    int
}

// Match is an immutable memo entry: a packrat-style record of how much input
// a clause consumed starting at its key's position, and (for First/Longest)
// which child matched.
type Match struct {
	Key Key

	// FirstMatchingSubClauseIdx is the index into the matching clause's
	// sub-clauses of the child that matched. Meaningful only for First and
	// Longest; zero for every other kind.
	FirstMatchingSubClauseIdx int

	// Len is the number of input bytes this match consumes.
	Len int

	// SubMatches are this match's children, in order. Empty for
	// terminals; for OneOrMore and ZeroOrMore this is a right-recursive
	// [head, tail] pair (or just [head] for the final repetition). Matches
	// built by clause.TopDownMatch are the exception: there a repetition
	// holds one entry per repetition, and a repetition over a single
	// CharSet/AnyChar terminal holds none.
	SubMatches []*Match
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.Key.Start + m.Len
}

// Better reports whether a is strictly better than b for the same Key: more
// input consumed, or an equal-length ordered-choice tie broken in favor of
// the lower sub-clause index (spec §3, "A match is 'better than' another").
func Better(a, b *Match) bool {
	if a.Len != b.Len {
		return a.Len > b.Len
	}
	return a.FirstMatchingSubClauseIdx < b.FirstMatchingSubClauseIdx
}

// clauseIndex tracks, for one clause, the ascending-sorted positions that
// have a stored match and the positions that were queried but produced no
// stored match (used by GetNonMatchPositions).
type clauseIndex struct {
	matched  []int
	noMatch  []int
}

func (ci *clauseIndex) insertSorted(xs []int, pos int) []int {
	i := sort.SearchInts(xs, pos)
	if i < len(xs) && xs[i] == pos {
		return xs
	}
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = pos
	return xs
}

// Table is the memo table: a keyed map for point lookups plus, per clause,
// an ordered index of start positions supporting ceiling/floor queries.
type Table struct {
	entries map[Key]*Match
	byClause map[uint32]*clauseIndex
}

// NewTable creates an empty memo table.
func NewTable() *Table {
	return &Table{
		entries:  make(map[Key]*Match),
		byClause: make(map[uint32]*clauseIndex),
	}
}

func (t *Table) indexFor(clauseID uint32) *clauseIndex {
	ci, ok := t.byClause[clauseID]
	if !ok {
		ci = &clauseIndex{}
		t.byClause[clauseID] = ci
	}
	return ci
}

// LookUpBestMatch returns the best known match for key, if any. If no match
// is stored and canMatchZero is true (the caller already knows this from the
// clause's CanMatchZeroChars field), a transient zero-length match is
// synthesized and returned without being inserted into the table — it is
// not a clause's "own" memoized result, just a convenience for a parent that
// needs to know the clause can match here. Otherwise, a miss is recorded in
// the clause's non-match index (used by GetNonMatchPositions) and (nil,
// false) is returned.
func (t *Table) LookUpBestMatch(key Key, canMatchZero bool) (*Match, bool) {
	if m, ok := t.entries[key]; ok {
		return m, true
	}
	if canMatchZero {
		return &Match{Key: key, Len: 0}, true
	}
	ci := t.indexFor(key.ClauseID)
	ci.noMatch = ci.insertSorted(ci.noMatch, key.Start)
	return nil, false
}

// InsertBestMatch inserts match if no entry exists for its key, or replaces
// the existing entry if match is strictly Better. Returns whether the table
// changed (inserted) and, if it already held an entry, whether that entry
// was replaced (improved). The driver uses this to decide whether to
// re-activate the clause's seed parents.
func (t *Table) InsertBestMatch(match *Match) (inserted, improved bool) {
	existing, ok := t.entries[match.Key]
	if !ok {
		t.entries[match.Key] = match
		ci := t.indexFor(match.Key.ClauseID)
		ci.matched = ci.insertSorted(ci.matched, match.Key.Start)
		if i := sort.SearchInts(ci.noMatch, match.Key.Start); i < len(ci.noMatch) && ci.noMatch[i] == match.Key.Start {
			ci.noMatch = append(ci.noMatch[:i], ci.noMatch[i+1:]...)
		}
		return true, false
	}
	if Better(match, existing) {
		t.entries[match.Key] = match
		return false, true
	}
	return false, false
}

// Get returns the stored (non-synthesized) match for key, if any.
func (t *Table) Get(key Key) (*Match, bool) {
	m, ok := t.entries[key]
	return m, ok
}

// MatchedPositions returns, in ascending order, the positions at which
// clauseID has a stored match.
func (t *Table) MatchedPositions(clauseID uint32) []int {
	ci, ok := t.byClause[clauseID]
	if !ok {
		return nil
	}
	return ci.matched
}

// NonMatchPositions returns, in ascending order, the positions at which
// clauseID was queried but produced no stored match (spec §4.E /
// GetNonMatchPositions). Positions never queried during parsing are absent,
// per spec §9's documented caveat.
func (t *Table) NonMatchPositions(clauseID uint32) []int {
	ci, ok := t.byClause[clauseID]
	if !ok {
		return nil
	}
	return ci.noMatch
}

// CeilingMatch returns the stored match for clauseID at the smallest start
// position >= pos, if any.
func (t *Table) CeilingMatch(clauseID uint32, pos int) (*Match, bool) {
	ci, ok := t.byClause[clauseID]
	if !ok {
		return nil, false
	}
	i := sort.SearchInts(ci.matched, pos)
	if i >= len(ci.matched) {
		return nil, false
	}
	return t.entries[Key{ClauseID: clauseID, Start: ci.matched[i]}], true
}

// FloorMatch returns the stored match for clauseID at the largest start
// position <= pos, if any.
func (t *Table) FloorMatch(clauseID uint32, pos int) (*Match, bool) {
	ci, ok := t.byClause[clauseID]
	if !ok {
		return nil, false
	}
	i := sort.SearchInts(ci.matched, pos)
	if i < len(ci.matched) && ci.matched[i] == pos {
		return t.entries[Key{ClauseID: clauseID, Start: pos}], true
	}
	if i == 0 {
		return nil, false
	}
	return t.entries[Key{ClauseID: clauseID, Start: ci.matched[i-1]}], true
}

// GetNonOverlappingMatches performs the greedy left-to-right walk of spec
// §4.C: starting at cursor 0, repeatedly take the match at the smallest
// start position >= cursor, then advance the cursor past it by
// max(1, len) to guarantee progress on zero-length matches.
func (t *Table) GetNonOverlappingMatches(clauseID uint32) []*Match {
	var out []*Match
	cursor := 0
	for {
		m, ok := t.CeilingMatch(clauseID, cursor)
		if !ok {
			return out
		}
		out = append(out, m)
		advance := m.Len
		if advance < 1 {
			advance = 1
		}
		cursor = m.Key.Start + advance
	}
}
