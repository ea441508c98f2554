// Package pika implements a pika parser: a bottom-up, right-to-left,
// dynamic-programming PEG parser, the dual of a top-down packrat parser.
// Where packrat parsing recurses from the start of the input and memoizes
// results as it goes, pika parsing starts at the end of the input and
// works backward, so that by the time any clause is evaluated at a
// position, everything it could possibly depend on at later positions has
// already been resolved — including the clauses a naive recursive-descent
// parser could only handle via ad hoc left-recursion detection.
//
// A grammar is a set of rule.Rule values compiled once with Compile or
// CompileWithConfig into a *Parser, then reused across many Parse calls the
// same way a compiled regexp.Regexp is reused across many Match calls.
//
// Example:
//
//	digits := clause.OneOrMoreOf(clause.CharSet(false, clause.ByteRange{Lo: '0', Hi: '9'}))
//	p, err := pika.Compile([]rule.Rule{{Name: "Number", Root: digits}})
//	if err != nil {
//		// handle compile error
//	}
//	result, err := p.Parse([]byte("1234"))
//	if err != nil {
//		// handle parse error (possibly a partial result on deadline)
//	}
//	matches, _ := result.Matches("Number")
package pika

import (
	"github.com/coregx/pika/compile"
	"github.com/coregx/pika/memo"
	"github.com/coregx/pika/parser"
	"github.com/coregx/pika/query"
	"github.com/coregx/pika/rule"
)

// Config bundles the compiler and parser configuration for one Parser.
type Config struct {
	Compile compile.Config
	Parser  parser.Config
}

// DefaultConfig returns the documented defaults of compile.DefaultConfig
// and parser.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Compile: compile.DefaultConfig(),
		Parser:  parser.DefaultConfig(),
	}
}

// Parser is a compiled grammar, ready to parse input with Parse. A Parser
// is safe for concurrent use: Parse allocates a fresh memo.Table per call
// and never mutates the compiled grammar.
type Parser struct {
	grammar *compile.Grammar
	cfg     Config
}

// Compile compiles rules with DefaultConfig.
func Compile(rules []rule.Rule) (*Parser, error) {
	return CompileWithConfig(rules, DefaultConfig())
}

// CompileWithConfig compiles rules under an explicit Config.
func CompileWithConfig(rules []rule.Rule, cfg Config) (*Parser, error) {
	g, err := compile.Compile(rules, cfg.Compile)
	if err != nil {
		return nil, err
	}
	return &Parser{grammar: g, cfg: cfg}, nil
}

// MustCompile is like Compile but panics if the grammar fails to compile,
// for package-level grammar variables initialized at startup.
func MustCompile(rules []rule.Rule) *Parser {
	p, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse runs the bottom-up fixpoint over input and returns a Result. The
// returned Result is non-nil even when err is non-nil (a deadline error
// still carries every match found before the deadline passed).
func (p *Parser) Parse(input []byte) (*Result, error) {
	mt, stats, err := parser.Parse(p.grammar, input, p.cfg.Parser)
	res := &Result{grammar: p.grammar, table: mt, input: input, Stats: stats}
	return res, err
}

// Result is a filled memo table plus the query operations spec §4.C/§4.E
// define over it, scoped to the input a single Parse call consumed.
type Result struct {
	grammar *compile.Grammar
	table   *memo.Table
	input   []byte

	// Stats reports fixpoint effort for this parse.
	Stats parser.Stats
}

// Matches returns the greedy, left-to-right, non-overlapping matches of
// ruleName over the parsed input.
func (r *Result) Matches(ruleName string) ([]*memo.Match, error) {
	return query.GetNonOverlappingMatches(r.grammar, r.table, ruleName)
}

// SyntaxErrors returns the spans of the parsed input that Matches(ruleName)
// does not cover.
func (r *Result) SyntaxErrors(ruleName string) ([]query.Span, error) {
	return query.GetSyntaxErrors(r.grammar, r.table, ruleName, len(r.input))
}

// Navigable returns every stored match of ruleName, in ascending start
// position order.
func (r *Result) Navigable(ruleName string) ([]*memo.Match, error) {
	return query.GetNavigableMatches(r.grammar, r.table, ruleName)
}

// CeilingMatch returns ruleName's match at the smallest start position
// >= pos, if any.
func (r *Result) CeilingMatch(ruleName string, pos int) (*memo.Match, error) {
	return query.CeilingMatch(r.grammar, r.table, ruleName, pos)
}

// FloorMatch returns ruleName's match at the largest start position
// <= pos, if any.
func (r *Result) FloorMatch(ruleName string, pos int) (*memo.Match, error) {
	return query.FloorMatch(r.grammar, r.table, ruleName, pos)
}

// Table exposes the underlying memo table for callers that need direct
// access beyond the query package's operations (e.g. a custom AST builder
// walking memo.Match.SubMatches).
func (r *Result) Table() *memo.Table { return r.table }
