package meta

import "strings"

// Split tokenizes a raw LDraw line. Spaces and tabs separate tokens; a
// segment delimited by double quotes becomes a single token with the
// quotes removed, so quoted strings may carry embedded whitespace.
func Split(line string) []string {
	return SplitQuoted(line, '"')
}

// SplitQuoted tokenizes line using quote as the segment delimiter. An
// unterminated segment extends to the end of the line, and an empty
// quoted segment yields an empty token.
func SplitQuoted(line string, quote rune) []string {
	var argv []string
	var b strings.Builder
	inToken := false
	inQuote := false
	for _, r := range line {
		switch {
		case inQuote:
			if r == quote {
				inQuote = false
			} else {
				b.WriteRune(r)
			}
		case r == quote:
			inQuote = true
			inToken = true
		case r == ' ' || r == '\t' || r == '\r':
			if inToken {
				argv = append(argv, b.String())
				b.Reset()
				inToken = false
			}
		default:
			b.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		argv = append(argv, b.String())
	}
	return argv
}
