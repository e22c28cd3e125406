package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, pattern string) Pattern {
	t.Helper()
	p, err := Compile(pattern)
	require.NoError(t, err)
	return p
}

// Matching compares lowercased tokens, but the capture slices the
// original text: casing survives, as does the whitespace between the
// delimiting literals.
func TestFindCasePreservingCapture(t *testing.T) {
	p := mustCompile(t, "create table @name (")
	m, ok := Find("CREATE TABLE Foo (id INT)", p)

	require.True(t, ok)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 18, m.End)
	assert.Equal(t, " Foo ", m.Bindings["@name"])
	assert.Equal(t, "Foo", strings.TrimSpace(m.Bindings["@name"]))
}

func TestFindLiteralOnlyPattern(t *testing.T) {
	p := mustCompile(t, "From")
	m, ok := Find("select x FROM t", p)

	require.True(t, ok)
	assert.Equal(t, 9, m.Start)
	assert.Equal(t, 13, m.End)
	assert.Empty(t, m.Bindings)
}

// A comma or closing parenthesis inside f(...) must not end the
// capture; the terminating "from" only counts once the nesting stack
// is empty again.
func TestFindNestingAwareCapture(t *testing.T) {
	p := mustCompile(t, "select @cols from")
	m, ok := Find("select f(a, b), c from t", p)

	require.True(t, ok)
	assert.Equal(t, " f(a, b), c ", m.Bindings["@cols"])
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 22, m.End)
}

// The "and" inside the quoted literal is masked by the quote on the
// nesting stack and absorbed into the capture.
func TestFindQuoteAwareCapture(t *testing.T) {
	p := mustCompile(t, "where x = @val and")
	m, ok := Find("where x = 'a and b' and y = 1", p)

	require.True(t, ok)
	assert.Equal(t, " 'a and b' ", m.Bindings["@val"])
	assert.Equal(t, 23, m.End)
}

// An opener that never closes masks the terminator for the rest of
// the input, so the pattern cannot complete.
func TestFindUnclosedNestingNeverTerminates(t *testing.T) {
	p := mustCompile(t, "select @cols from")
	_, ok := Find("select f(a from t", p)
	assert.False(t, ok)
}

func TestFindNoMatch(t *testing.T) {
	p := mustCompile(t, "delete from @t where")
	m, ok := Find("SELECT 1", p)

	assert.False(t, ok)
	assert.Equal(t, Match{}, m)
}

// On a literal mismatch the cursor resets and scanning resumes at the
// next token; the mismatching token is never retried as a fresh match
// start, so overlapping occurrences can be missed. Long-standing
// engine behavior, asserted here so nobody "fixes" it by accident.
func TestFindDoesNotBacktrack(t *testing.T) {
	p := mustCompile(t, "a b")
	_, ok := Find("a a b", p)
	assert.False(t, ok)

	m, ok := Find("a b", p)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 3, m.End)
}

// When the same variable name appears more than once, the latest
// capture wins.
func TestFindLatestCaptureWins(t *testing.T) {
	p := mustCompile(t, "( @x ) ( @x )")
	m, ok := Find("(1) (2)", p)

	require.True(t, ok)
	assert.Equal(t, map[string]string{"@x": "2"}, m.Bindings)
}

// Captures from an abandoned partial match stay in the bindings map
// until overwritten; the reported span belongs to the completed match.
func TestFindAbandonedPartialMatch(t *testing.T) {
	p := mustCompile(t, "f ( @x ) g")
	m, ok := Find("f (a) x f (b) g", p)

	require.True(t, ok)
	assert.Equal(t, 8, m.Start)
	assert.Equal(t, 15, m.End)
	assert.Equal(t, "b", m.Bindings["@x"])
}

func TestFindOffsetsSliceOriginalText(t *testing.T) {
	p := mustCompile(t, "insert into @table (")
	sql := "INSERT INTO dbo.scratch (id) VALUES (1)"
	m, ok := Find(sql, p)

	require.True(t, ok)
	assert.Equal(t, sql[m.Start:m.End], "INSERT INTO dbo.scratch (")
	assert.Equal(t, " dbo.scratch ", m.Bindings["@table"])
}
