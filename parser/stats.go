package parser

// Stats reports fixpoint effort for one Parse call, available for callers
// who want insight into how much work a grammar/input pair required without
// reaching for a logging library (spec's ambient stack carries no logging
// dependency; this struct is the plain-data substitute).
type Stats struct {
	// Positions is the number of input positions processed (len(input)+1).
	Positions int
	// Generations is the total number of active-set drain rounds across
	// every position.
	Generations int
	// ClauseEvaluations is the total number of Clause.Match /
	// Clause.TopDownMatch calls made.
	ClauseEvaluations int
}
