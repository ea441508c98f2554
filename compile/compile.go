// Package compile turns an author-supplied set of rule.Rule values into a
// compiled Grammar: an interned clause.Clause DAG with IDs assigned,
// zero-width-match facts and seed-parent links computed, ready for
// parser.Parse to drive bottom-up. The nine-step pipeline below is spec
// §4.B; it runs once per grammar, the same "compile once, reuse the result
// across many Parse calls" shape as nfa.Compile producing an *nfa.Program
// that many pikevm.Run calls share (nfa/compile.go).
package compile

import (
	"sort"

	"github.com/coregx/pika/clause"
	"github.com/coregx/pika/internal/litdispatch"
	"github.com/coregx/pika/rule"
)

// Grammar is the output of Compile: an interned, reference-resolved clause
// DAG plus the indices needed to look rules up by name and to drive the
// parser.
type Grammar struct {
	// Rules indexes every precedence level by (name, precedence).
	Rules map[rule.Key]*rule.Rule

	// ByName resolves a bare rule name to its lowest precedence level's
	// root clause, the same resolution RuleRef(name) (no explicit
	// precedence) uses.
	ByName map[string]*clause.Clause

	// ReachableClauses lists every clause reachable from some rule's root,
	// in reverse topological (children-before-parents) order. Clause.ID is
	// each entry's index in this slice.
	ReachableClauses []*clause.Clause

	// LexRoot is the root clause of Config.LexRuleName's rule, or nil if
	// no lex rule was configured. parser.Parse matches its descendants
	// top-down instead of scheduling them in the bottom-up fixpoint.
	LexRoot *clause.Clause
}

// Compile runs the full grammar-compilation pipeline over rules and returns
// the result, or the first typed error the pipeline encounters.
func Compile(rules []rule.Rule, cfg Config) (*Grammar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, &CompileError{Stage: "validate", Err: ErrEmptyGrammar}
	}

	// Step 1: group rules by name, one *rulePrecLevel per precedence level.
	groups := make(map[string][]*rulePrecLevel)
	for _, rl := range rules {
		if rl.Name == "" {
			return nil, &CompileError{Stage: "validate", Err: &UnnamedRuleError{}}
		}
		if rl.Root.Kind == clause.RuleRef && rl.Root.RefName == rl.Name && rl.Root.RefPrecedence == nil {
			return nil, &CompileError{Stage: "validate", Err: &SelfOnlyRuleError{Name: rl.Name}}
		}
		// Step 2: cycle check, on the tree exactly as authored.
		if !checkAcyclic(rl.Root, cfg.MaxRecursionDepth) {
			return nil, &CompileError{Stage: "cycle", Err: &CyclicUserClauseError{Name: rl.Name}}
		}
		groups[rl.Name] = append(groups[rl.Name], &rulePrecLevel{
			name:       rl.Name,
			precedence: rl.Precedence,
			assoc:      rl.Assoc,
			root:       rl.Root,
			astLabel:   rl.ASTLabel,
		})
	}
	if len(rules) > cfg.MaxGrammarRules {
		return nil, &CompileError{Stage: "validate", Err: ErrTooManyRules}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		levels := groups[name]
		sort.Slice(levels, func(i, j int) bool { return levels[i].precedence < levels[j].precedence })
		for i := 1; i < len(levels); i++ {
			if levels[i].precedence == levels[i-1].precedence {
				return nil, &CompileError{Stage: "validate", Err: &DuplicatePrecedenceError{Name: name, Precedence: levels[i].precedence}}
			}
		}
	}

	// Step 4 (lifted ahead of step 3 so a label on the author's literal
	// root is attributed to the rule rather than getting buried under the
	// fallthrough-First the precedence rewrite may wrap around it).
	for _, name := range names {
		for _, lvl := range groups[name] {
			root, label := liftLabels(lvl.root)
			lvl.root = root
			if lvl.astLabel == "" {
				lvl.astLabel = label
			}
		}
	}

	if cfg.RequireASTLabels {
		for _, name := range names {
			if groups[name][0].astLabel == "" {
				return nil, &CompileError{Stage: "astlabel", Err: &MissingASTLabelError{Name: name}}
			}
		}
	}

	// Step 3: precedence/associativity rewrite.
	for _, name := range names {
		levels := groups[name]
		if len(levels) > 1 {
			for i := range levels {
				rewriteLevel(levels, i)
			}
		}
	}

	// Step 5: interning.
	in := newInterner()
	for _, name := range names {
		for _, lvl := range groups[name] {
			lvl.root = in.intern(lvl.root)
		}
	}

	// Step 6: rule-ref resolution. Every level is registered before any is
	// resolved so forward references (a lower rule referencing one defined
	// later in the input slice) work.
	res := newResolver(cfg.MaxRecursionDepth)
	for _, name := range names {
		levels := groups[name]
		for i, lvl := range levels {
			res.register(lvl.name, lvl.precedence, lvl.root, i == 0)
		}
	}
	for _, name := range names {
		for _, lvl := range groups[name] {
			resolved, err := res.resolve(lvl.root, 0)
			if err != nil {
				return nil, &CompileError{Stage: "resolve", Err: err}
			}
			lvl.root = resolved
		}
	}

	ruleMap := make(map[rule.Key]*rule.Rule, len(rules))
	byName := make(map[string]*clause.Clause, len(names))
	var entries []*clause.Clause
	for _, name := range names {
		levels := groups[name]
		for _, lvl := range levels {
			ruleMap[rule.Key{Name: lvl.name, Precedence: lvl.precedence}] = &rule.Rule{
				Name:       lvl.name,
				Precedence: lvl.precedence,
				Assoc:      lvl.assoc,
				Root:       lvl.root,
				ASTLabel:   lvl.astLabel,
			}
			lvl.root.RuleNames = append(lvl.root.RuleNames, clause.RuleKey{Name: lvl.name, Precedence: lvl.precedence})
			entries = append(entries, lvl.root)
		}
		byName[name] = levels[0].root
	}

	var lexRoot *clause.Clause
	if cfg.LexRuleName != "" {
		root, ok := byName[cfg.LexRuleName]
		if !ok {
			return nil, &CompileError{Stage: "validate", Err: &UnknownLexRuleError{Name: cfg.LexRuleName}}
		}
		if !checkAcyclic(root, cfg.MaxRecursionDepth) {
			return nil, &CompileError{Stage: "lexrule", Err: &CyclicUserClauseError{Name: cfg.LexRuleName}}
		}
		lexRoot = root
	}

	// Step 7: reachability and topological ordering; ID assignment rides
	// along on the same order.
	order := orderReachable(entries)
	assignIDs(order)

	// Step 8: zero-width analysis.
	computeZeroWidth(order)

	// Step 9: seed-parent linking.
	linkSeedParents(order)

	if cfg.EnableLiteralDispatch {
		attachLiteralDispatch(order)
	}

	return &Grammar{
		Rules:            ruleMap,
		ByName:           byName,
		ReachableClauses: order,
		LexRoot:          lexRoot,
	}, nil
}

// attachLiteralDispatch gives every First clause whose sub-clauses are all
// literal terminals an internal/litdispatch fast path (spec's literal
// dispatch optimization). A clause that fails to build one (or has nothing
// to dispatch) is left with LiteralDispatch == nil and matches exactly as
// it would otherwise — see litdispatch.Build's doc comment.
func attachLiteralDispatch(order []*clause.Clause) {
	for _, c := range order {
		if c.Kind != clause.First {
			continue
		}
		literals := make([][]byte, 0, len(c.SubClauses))
		allLiteral := true
		for _, child := range c.SubClauses {
			if child.Kind != clause.Terminal || child.TKind != clause.LiteralTerminal {
				allLiteral = false
				break
			}
			literals = append(literals, child.Literal)
		}
		if !allLiteral {
			continue
		}
		if d, err := litdispatch.Build(literals); err == nil && d != nil {
			c.LiteralDispatch = d
		}
	}
}
