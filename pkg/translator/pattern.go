package translator

import "fmt"

// Block is one compiled pattern element: a pattern token tagged as a
// literal or a capturing variable. A token is a variable when its
// text starts with '@' and is longer than one byte; a bare "@" stays
// literal.
type Block struct {
	Token
	IsVariable bool
}

// Pattern is a compiled search pattern: an ordered Block sequence.
// The first and last Block are always literals. A Pattern is
// immutable once compiled and safe to reuse across texts and
// goroutines.
type Pattern struct {
	Text   string
	Blocks []Block
}

// InvalidPatternError reports a search pattern the compiler rejected.
// It carries the original pattern text.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %s", e.Pattern, e.Reason)
}

// Compile lowercases and tokenizes pattern, tagging each token as a
// literal or variable Block. It fails when the pattern has no tokens,
// or when its first or last Block is a variable: a variable needs a
// literal on each side to delimit its capture.
func Compile(pattern string) (Pattern, error) {
	tokens := Tokenize(lowerASCII(pattern))
	if len(tokens) == 0 {
		return Pattern{}, &InvalidPatternError{Pattern: pattern, Reason: "pattern has no tokens"}
	}
	blocks := make([]Block, 0, len(tokens))
	for _, token := range tokens {
		blocks = append(blocks, Block{
			Token:      token,
			IsVariable: len(token.Text) > 1 && token.Text[0] == '@',
		})
	}
	if blocks[0].IsVariable || blocks[len(blocks)-1].IsVariable {
		return Pattern{}, &InvalidPatternError{Pattern: pattern, Reason: "pattern cannot start or end with a variable"}
	}
	return Pattern{Text: pattern, Blocks: blocks}, nil
}
