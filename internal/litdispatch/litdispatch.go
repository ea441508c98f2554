// Package litdispatch gives First clauses whose every sub-clause is a
// literal terminal a fast "no alternative can possibly match here" check,
// backed by an Aho-Corasick automaton. It mirrors the teacher's own
// vocabulary and role for github.com/coregx/ahocorasick exactly: in
// meta/compile.go and meta/engine.go the automaton is one of several
// prefilter strategies that narrow candidates before the exact engine
// confirms a match. Here, it narrows candidates before the ordered
// per-alternative memo scan in clause.Clause.Match / clause.TopDownMatch
// runs — it never decides which alternative wins, only whether it is worth
// looking.
package litdispatch

import "github.com/coregx/ahocorasick"

// Dispatcher reports whether any of a First clause's literal alternatives
// can possibly start matching at a given input position.
type Dispatcher struct {
	auto *ahocorasick.Automaton
}

// Build constructs a Dispatcher for the given literal alternatives, in the
// same order the owning First clause holds them. Returns (nil, nil) if
// literals is empty (nothing to dispatch) or contains an empty literal
// (which matches everywhere, so there is nothing to filter), and (nil, err)
// if the automaton fails to build. In each of these cases the caller should
// simply not attach a Dispatcher — First.Match's ordered scan is correct on
// its own, the Dispatcher only ever makes it faster.
func Build(literals [][]byte) (*Dispatcher, error) {
	if len(literals) == 0 {
		return nil, nil
	}
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil, nil
		}
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Dispatcher{auto: auto}, nil
}

// MayMatchAt reports whether some literal alternative could start matching
// at input[pos]. A false result is authoritative (no alternative can
// match); a true result merely means the caller should fall back to the
// exact ordered scan.
func (d *Dispatcher) MayMatchAt(input []byte, pos int) bool {
	if d == nil || d.auto == nil {
		return true
	}
	if pos >= len(input) {
		return false
	}
	m := d.auto.Find(input[pos:], 0)
	return m != nil && m.Start == 0
}
