// Package translator implements textual SQL translation by ordered
// replacement rules.
//
// A rule pairs a search pattern with a replacement template. Patterns
// are matched against the token stream of the SQL text, not its raw
// characters, so whitespace and comments never break a match. A
// pattern token starting with '@' (for example "@table") is a
// variable: it captures an arbitrary span of the original text up to
// the next literal of the pattern, tracking quote and parenthesis
// nesting so that a terminator inside a string literal or a
// parenthesized sub-expression does not end the capture.
//
// Matching is case-insensitive, but captured text and all reported
// offsets refer to the original input, so casing and whitespace
// survive translation untouched.
//
//	rules := []translator.Rule{
//	    {Pattern: "ISNULL(@a,@b)", Replacement: "COALESCE(@a,@b)"},
//	    {Pattern: "GETDATE()", Replacement: "CURRENT_TIMESTAMP"},
//	}
//	out, err := translator.Translate(sql, rules)
//
// Rules apply strictly in order, each to fixpoint, so later rules see
// the output of earlier ones. This package has no SQL grammar: it
// knows token boundaries, comments, quotes and parenthesis nesting,
// nothing more.
package translator
