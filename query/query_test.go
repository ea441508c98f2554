package query

import (
	"testing"

	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/compile"
	"github.com/coregx/pika/parser"
	"github.com/coregx/pika/rule"
)

func buildStatementGrammar(t *testing.T) *compile.Grammar {
	t.Helper()
	name := clause.OneOrMoreOf(clause.CharSet(false, clause.ByteRange{Lo: 'a', Hi: 'z'}))
	num := clause.OneOrMoreOf(clause.CharSet(false, clause.ByteRange{Lo: '0', Hi: '9'}))
	stmt := clause.SeqOf(name, clause.Lit("="), num, clause.Lit(";"))
	program := clause.OneOrMoreOf(clause.Ref("Statement"))

	rules := []rule.Rule{
		{Name: "Program", Root: program},
		{Name: "Statement", Root: stmt},
	}
	g, err := compile.Compile(rules, compile.DefaultConfig())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return g
}

func TestGetSyntaxErrorsCleanInput(t *testing.T) {
	g := buildStatementGrammar(t)
	input := []byte("x=1;y=2;")
	mt, _, err := parser.Parse(g, input, parser.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	errs, err := GetSyntaxErrors(g, mt, "Statement", len(input))
	if err != nil {
		t.Fatalf("GetSyntaxErrors failed: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("expected no syntax errors, got %v", errs)
	}
}

func TestGetSyntaxErrorsFindsGarbageSpan(t *testing.T) {
	g := buildStatementGrammar(t)
	input := []byte("x=1;@@@;y=2;")
	mt, _, err := parser.Parse(g, input, parser.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	errs, err := GetSyntaxErrors(g, mt, "Statement", len(input))
	if err != nil {
		t.Fatalf("GetSyntaxErrors failed: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error span, got %v", errs)
	}
	if errs[0].Start != 4 {
		t.Errorf("error span start = %d, want 4", errs[0].Start)
	}
}

func TestQueryUnknownRule(t *testing.T) {
	g := buildStatementGrammar(t)
	mt, _, err := parser.Parse(g, []byte("x=1;"), parser.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := GetNonOverlappingMatches(g, mt, "NoSuchRule"); err == nil {
		t.Fatal("expected an UnknownRuleError")
	}
}

func TestGetNavigableMatchesSorted(t *testing.T) {
	g := buildStatementGrammar(t)
	input := []byte("x=1;y=2;")
	mt, _, err := parser.Parse(g, input, parser.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	matches, err := GetNavigableMatches(g, mt, "Statement")
	if err != nil {
		t.Fatalf("GetNavigableMatches failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Key.Start > matches[1].Key.Start {
		t.Error("matches should be in ascending start order")
	}
}
