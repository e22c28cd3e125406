package translator

// Rule pairs a search pattern with its replacement template.
type Rule struct {
	Pattern     string
	Replacement string
}

// CompiledRule is a Rule whose search pattern has been compiled.
// Compiling a rule set once and reusing it across many statements is
// safe: compiled rules are read-only.
type CompiledRule struct {
	Pattern     Pattern
	Replacement string
}

// CompileRules compiles every rule in order, failing on the first
// invalid search pattern.
func CompileRules(rules []Rule) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rules))
	for _, rule := range rules {
		p, err := Compile(rule.Pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, CompiledRule{Pattern: p, Replacement: rule.Replacement})
	}
	return compiled, nil
}

// Apply runs each compiled rule against sql in order, each to
// fixpoint. The text produced by one rule feeds the next, so rule
// order is semantically significant.
func Apply(sql string, rules []CompiledRule) string {
	result := sql
	for _, rule := range rules {
		result = Rewrite(result, rule.Pattern, rule.Replacement)
	}
	return result
}

// Translate compiles rules and applies them to sql in order. The
// first invalid pattern aborts the whole translation with an
// *InvalidPatternError.
func Translate(sql string, rules []Rule) (string, error) {
	compiled, err := CompileRules(rules)
	if err != nil {
		return "", err
	}
	return Apply(sql, compiled), nil
}
