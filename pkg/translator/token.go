package translator

// Token is a minimal lexical unit of SQL text: a maximal run of
// alphanumeric, underscore or '@' characters, or a single special
// character. Start and End are byte offsets (half-open) into the text
// that produced the token and are only meaningful relative to that
// exact text.
type Token struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Tokenize splits sql into tokens. Whitespace and SQL comments ("--"
// through end of line, "/*" through "*/") contribute no tokens.
// Tokenize never fails: any input, including the empty string, yields
// a (possibly empty) token slice.
func Tokenize(sql string) []Token {
	var tokens []Token
	start := 0
	cursor := 0
	lineComment := false  // -- ... end of line
	blockComment := false // /* ... */
	for ; cursor < len(sql); cursor++ {
		ch := sql[cursor]
		switch {
		case lineComment:
			if ch == '\n' {
				lineComment = false
				start = cursor + 1
			}
		case blockComment:
			if ch == '/' && cursor > 0 && sql[cursor-1] == '*' {
				blockComment = false
				start = cursor + 1
			}
		case !isWordByte(ch):
			if cursor > start {
				tokens = append(tokens, Token{Start: start, End: cursor, Text: sql[start:cursor]})
			}
			if ch == '-' && cursor+1 < len(sql) && sql[cursor+1] == '-' {
				lineComment = true
			} else if ch == '/' && cursor+1 < len(sql) && sql[cursor+1] == '*' {
				blockComment = true
			} else if !isSpaceByte(ch) {
				// A lone trailing '-' or '/' lands here: the comment
				// lookahead fails and it is emitted as its own token.
				tokens = append(tokens, Token{Start: cursor, End: cursor + 1, Text: sql[cursor : cursor+1]})
			}
			start = cursor + 1
		}
	}
	if cursor > start && !lineComment && !blockComment {
		tokens = append(tokens, Token{Start: start, End: cursor, Text: sql[start:cursor]})
	}
	return tokens
}

// isWordByte reports whether ch continues an identifier-like run.
// '@' is a word byte so pattern variables tokenize as single tokens.
func isWordByte(ch byte) bool {
	return ch == '_' || ch == '@' ||
		('0' <= ch && ch <= '9') ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z')
}

func isSpaceByte(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
