package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/compile"
	"github.com/coregx/pika/rule"
)

func compileOrFatal(t *testing.T, rules []rule.Rule, cfg compile.Config) *compile.Grammar {
	t.Helper()
	g, err := compile.Compile(rules, cfg)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return g
}

func TestParseOneOrMoreLiteral(t *testing.T) {
	// S <- 'a'+;
	root := clause.OneOrMoreOf(clause.Lit("a"))
	g := compileOrFatal(t, []rule.Rule{{Name: "S", Root: root}}, compile.DefaultConfig())

	mt, _, err := Parse(g, []byte("aaaa"), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	matches := mt.GetNonOverlappingMatches(g.ByName["S"].ID)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Key.Start != 0 || matches[0].Len != 4 {
		t.Errorf("got start=%d len=%d, want start=0 len=4", matches[0].Key.Start, matches[0].Len)
	}
}

func TestParseRightRecursiveLiteral(t *testing.T) {
	// A <- 'a' A / 'a';
	aRef := clause.Ref("A")
	root := clause.FirstOf(clause.SeqOf(clause.Lit("a"), aRef), clause.Lit("a"))
	g := compileOrFatal(t, []rule.Rule{{Name: "A", Root: root}}, compile.DefaultConfig())

	mt, _, err := Parse(g, []byte("aaa"), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	matches := mt.GetNonOverlappingMatches(g.ByName["A"].ID)
	if len(matches) != 1 || matches[0].Len != 3 {
		t.Fatalf("expected one match of length 3, got %+v", matches)
	}
}

func TestParseLeftAssociativeSelfRecursion(t *testing.T) {
	// A[0,Left] <- A 'a' / 'a';
	aRef := clause.Ref("A")
	root := clause.FirstOf(clause.SeqOf(aRef, clause.Lit("a")), clause.Lit("a"))
	rules := []rule.Rule{{Name: "A", Precedence: 0, Assoc: rule.Left, Root: root}}
	g := compileOrFatal(t, rules, compile.DefaultConfig())

	mt, _, err := Parse(g, []byte("aaaa"), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	matches := mt.GetNonOverlappingMatches(g.ByName["A"].ID)
	if len(matches) != 1 || matches[0].Len != 4 {
		t.Fatalf("expected one match of length 4, got %+v", matches)
	}
}

func TestParseNonOverlappingStatements(t *testing.T) {
	// Program <- Statement+; Statement <- [a-z]+ '=' [0-9]+ ';';
	name := clause.OneOrMoreOf(clause.CharSet(false, clause.ByteRange{Lo: 'a', Hi: 'z'}))
	num := clause.OneOrMoreOf(clause.CharSet(false, clause.ByteRange{Lo: '0', Hi: '9'}))
	stmt := clause.SeqOf(name, clause.Lit("="), num, clause.Lit(";"))
	program := clause.OneOrMoreOf(clause.Ref("Statement"))

	rules := []rule.Rule{
		{Name: "Program", Root: program},
		{Name: "Statement", Root: stmt},
	}
	g := compileOrFatal(t, rules, compile.DefaultConfig())

	mt, _, err := Parse(g, []byte("x=1;y=2;"), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	matches := mt.GetNonOverlappingMatches(g.ByName["Statement"].ID)
	if len(matches) != 2 {
		t.Fatalf("expected 2 statement matches, got %d", len(matches))
	}
	if matches[0].Key.Start != 0 || matches[1].Key.Start != 4 {
		t.Errorf("unexpected match starts: %d, %d", matches[0].Key.Start, matches[1].Key.Start)
	}
}

func TestParseReturnsPartialTableOnExpiredDeadline(t *testing.T) {
	root := clause.OneOrMoreOf(clause.Lit("a"))
	g := compileOrFatal(t, []rule.Rule{{Name: "S", Root: root}}, compile.DefaultConfig())

	cfg := DefaultConfig()
	cfg.Deadline = time.Now().Add(-time.Second)
	mt, _, err := Parse(g, []byte("aaaa"), cfg)
	if mt == nil {
		t.Fatal("expected a non-nil table even on deadline failure")
	}
	if !errors.Is(err, ErrDeadlineExceeded) {
		t.Fatalf("expected ErrDeadlineExceeded, got %v", err)
	}
}
