package statement

import "strings"

// SplitFields splits one statement line on delim. Double quotes toggle an
// inside-quotes mode in which delimiters do not split; the quote characters
// themselves stay in the field text. An unterminated quote causes the rest
// of the line to be treated as quoted.
func SplitFields(line string, delim rune) []string {
	fields := make([]string, 0, minFields)
	var b strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == delim && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}
