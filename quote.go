package squill

import (
	"strconv"
	"strings"
)

// QuoteIdentifier quotes an identifier if necessary using dialect-specific
// quoting rules.
func QuoteIdentifier(dialect string, identifier string) string {
	var needsQuoting bool
	switch identifier {
	case "":
		needsQuoting = true
	case "EXCLUDED", "NEW", "OLD":
		needsQuoting = false
	default:
		for i, char := range identifier {
			if i == 0 && (char >= '0' && char <= '9') {
				// first character cannot be a number
				needsQuoting = true
				break
			}
			if char == '_' || (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') {
				continue
			}
			// If there are capital letters, the identifier is quoted to
			// preserve capitalization information (databases fold unquoted
			// identifiers differently per dialect). Any other character also
			// forces quoting; _a-z0-9 is the only portable unquoted set.
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return identifier
	}
	switch dialect {
	case DialectMySQL:
		return "`" + EscapeQuote(identifier, '`') + "`"
	default:
		return `"` + EscapeQuote(identifier, '"') + `"`
	}
}

// EscapeQuote will escape the relevant quote in a string by doubling up on it
// (as per SQL rules).
func EscapeQuote(str string, quote byte) string {
	i := strings.IndexByte(str, quote)
	if i < 0 {
		return str
	}
	var b strings.Builder
	b.Grow(len(str) + strings.Count(str, string(quote)))
	for i >= 0 {
		b.WriteString(str[:i])
		b.WriteByte(quote)
		b.WriteByte(quote)
		str = str[i+1:]
		i = strings.IndexByte(str, quote)
	}
	b.WriteString(str)
	return b.String()
}

// Placeholder returns the parameter placeholder for the dialect. n is
// 1-based.
func Placeholder(dialect string, n int) string {
	switch dialect {
	case DialectPostgres, DialectCockroach:
		return "$" + strconv.Itoa(n)
	default:
		return "?"
	}
}
