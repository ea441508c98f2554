package compile

// Config controls grammar-compilation behavior and limits, mirroring the
// teacher's meta.Config / meta.DefaultConfig / Config.Validate shape
// (meta/config.go): a plain struct of defensive caps and feature toggles,
// validated once up front.
type Config struct {
	// MaxRecursionDepth bounds recursion during the cycle check, the
	// precedence rewrite's self-reference chain following, and rule-ref
	// resolution, preventing a stack overflow on a pathological or
	// accidentally-cyclic grammar. Default: 100, the same default the
	// teacher's nfa.CompilerConfig.MaxRecursionDepth uses.
	MaxRecursionDepth int

	// LexRuleName, if non-empty, names the rule whose descendants are
	// matched top-down (clause.TopDownMatch) rather than being memoized in
	// the bottom-up driver (spec §4.D "Top-down mode"). The named rule
	// must itself be acyclic after resolution.
	LexRuleName string

	// EnableLiteralDispatch builds an Aho-Corasick internal/litdispatch
	// fast path for every First clause whose sub-clauses are all literal
	// terminals. Default: true.
	EnableLiteralDispatch bool

	// MaxGrammarRules is a sanity cap on the number of (name, precedence)
	// rule entries accepted, the same defensive-cap idiom as
	// meta.Config.MaxDFAStates. Default: 10000.
	MaxGrammarRules int

	// RequireASTLabels rejects any rule whose lowest precedence level ends
	// up with no AST label (neither authored directly nor lifted from an
	// ASTNodeLabel root), for grammars whose consumer expects every rule to
	// yield a named tree node. Default: false.
	RequireASTLabels bool
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth:     100,
		EnableLiteralDispatch: true,
		MaxGrammarRules:       10000,
	}
}

// Validate reports whether cfg is usable, the same up-front check shape as
// meta.Config.Validate.
func (cfg Config) Validate() error {
	if cfg.MaxRecursionDepth <= 0 {
		return &CompileError{Stage: "config", Err: ErrInvalidConfig}
	}
	if cfg.MaxGrammarRules <= 0 {
		return &CompileError{Stage: "config", Err: ErrInvalidConfig}
	}
	return nil
}
