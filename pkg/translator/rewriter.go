package translator

import (
	"sort"
	"strings"
)

// Rewrite applies p to sql until no occurrence remains. Each match is
// replaced by the replacement template with every occurrence of each
// bound variable name substituted by its captured text.
//
// The caller must ensure the substituted replacement cannot itself
// match p again; a replacement that regenerates its own pattern makes
// this loop run forever. That contract belongs to the rule author and
// is deliberately not guarded here.
func Rewrite(sql string, p Pattern, replacement string) string {
	result := sql
	for {
		m, ok := Find(result, p)
		if !ok {
			return result
		}
		substituted := replacement
		for _, name := range sortedNames(m.Bindings) {
			substituted = strings.ReplaceAll(substituted, name, m.Bindings[name])
		}
		result = result[:m.Start] + substituted + result[m.End:]
	}
}

// sortedNames keeps substitution order deterministic. Variable names
// are unique within a match, so order only matters for authors who
// give one variable a name that prefixes another; sorted order makes
// that case reproducible.
func sortedNames(bindings map[string]string) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
