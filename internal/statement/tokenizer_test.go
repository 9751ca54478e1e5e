package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFields_Plain(t *testing.T) {
	fields := SplitFields("a,b,c", ',')
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestSplitFields_QuotedDelimiter(t *testing.T) {
	fields := SplitFields(`one,"two, with comma",three`, ',')
	assert.Equal(t, []string{"one", `"two, with comma"`, "three"}, fields)
}

func TestSplitFields_QuotesAreKept(t *testing.T) {
	fields := SplitFields(`"Transnorda UAB"|123,x`, ',')
	assert.Equal(t, []string{`"Transnorda UAB"|123`, "x"}, fields)
}

func TestSplitFields_UnterminatedQuote(t *testing.T) {
	// The rest of the line is treated as quoted.
	fields := SplitFields(`a,"b,c,d`, ',')
	assert.Equal(t, []string{"a", `"b,c,d`}, fields)
}

func TestSplitFields_EmptyFields(t *testing.T) {
	fields := SplitFields(",,x,", ',')
	assert.Equal(t, []string{"", "", "x", ""}, fields)
}

func TestSplitFields_EmptyLine(t *testing.T) {
	fields := SplitFields("", ',')
	assert.Equal(t, []string{""}, fields)
}
