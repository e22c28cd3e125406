package translator

// Match is a located occurrence of a Pattern: the byte span of the
// original text it covers and the text captured by each variable.
// Captured spans run from the end of the literal before the variable
// to the start of the literal after it, so they keep the original
// casing and any flanking whitespace.
type Match struct {
	Start    int
	End      int
	Bindings map[string]string
}

// Find locates the leftmost occurrence of p in sql and reports
// whether one was found. Literal comparison is case-insensitive;
// captured text and offsets always refer to sql as given.
//
// While a variable is capturing, quote and parenthesis nesting is
// tracked on an explicit stack: the variable's terminator only ends
// the capture when the stack is empty, so a terminator inside 'a
// string' or a (sub, expression) is absorbed into the capture.
//
// On a literal mismatch the match cursor resets and scanning resumes
// at the next token; abandoned partial matches are not retried from
// intermediate offsets. Overlapping occurrences can therefore be
// missed. This is long-standing engine behavior that externally
// authored rule sets rely on; do not change it.
func Find(sql string, p Pattern) (Match, bool) {
	tokens := Tokenize(lowerASCII(sql))
	m := Match{Bindings: make(map[string]string)}
	matchCount := 0
	varStart := 0
	var nest []string
	for _, token := range tokens {
		block := p.Blocks[matchCount]
		if block.IsVariable {
			// A variable is never last, so the terminator exists.
			terminator := p.Blocks[matchCount+1]
			if len(nest) == 0 && token.Text == terminator.Text {
				m.Bindings[block.Text] = sql[varStart:token.Start]
				matchCount += 2
				if matchCount == len(p.Blocks) {
					m.End = token.End
					return m, true
				}
				if p.Blocks[matchCount].IsVariable {
					varStart = token.End
				}
			} else if top, ok := peek(nest); ok && (top == `"` || top == "'") {
				// Inside a quoted span only its closing quote matters.
				if token.Text == top {
					nest = nest[:len(nest)-1]
				}
			} else if token.Text == `"` || token.Text == "'" || token.Text == "(" {
				nest = append(nest, token.Text)
			} else if token.Text == ")" {
				if top, ok := peek(nest); ok && top == "(" {
					nest = nest[:len(nest)-1]
				}
			}
		} else {
			if token.Text == block.Text {
				if matchCount == 0 {
					m.Start = token.Start
				}
				matchCount++
				if matchCount == len(p.Blocks) {
					m.End = token.End
					return m, true
				}
				if p.Blocks[matchCount].IsVariable {
					varStart = token.End
				}
			} else {
				matchCount = 0
			}
		}
	}
	return Match{}, false
}

func peek(stack []string) (string, bool) {
	if len(stack) == 0 {
		return "", false
	}
	return stack[len(stack)-1], true
}

// lowerASCII lowercases A-Z only. Unlike strings.ToLower it can never
// change the byte length of the input, so offsets into the lowered
// text are valid offsets into the original.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if 'A' <= ch && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}
	return string(b)
}
