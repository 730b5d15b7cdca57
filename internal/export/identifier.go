package export

import (
	"fmt"
	"strings"
)

// toSnakeCase converts a field name to a SQL-safe snake_case identifier,
// dropping characters outside [A-Za-z0-9_]
func toSnakeCase(s string) string {
	var result []rune
	runes := []rune(s)

	for i, r := range runes {
		if !isAlphanumeric(r) && r != '_' {
			if r == ' ' || r == '-' {
				result = append(result, '_')
			}
			continue
		}

		if r >= 'A' && r <= 'Z' {
			if i > 0 && len(result) > 0 {
				prev := runes[i-1]
				if prev >= 'a' && prev <= 'z' {
					result = append(result, '_')
				} else if prev >= 'A' && prev <= 'Z' {
					if i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z' {
						result = append(result, '_')
					}
				}
			}
			result = append(result, r+('a'-'A'))
		} else {
			result = append(result, r)
		}
	}

	// Identifiers must not start with a digit
	if len(result) > 0 && result[0] >= '0' && result[0] <= '9' {
		result = append([]rune{'_'}, result...)
	}

	return string(result)
}

// isAlphanumeric checks if a rune is alphanumeric
func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// quoteIdentifier wraps a SQL identifier in double quotes and escapes
// internal quotes
func quoteIdentifier(identifier string) string {
	escaped := strings.ReplaceAll(identifier, `"`, `""`)
	return fmt.Sprintf(`"%s"`, escaped)
}

// quoteLiteral wraps a SQL string literal in single quotes, doubling
// internal quotes
func quoteLiteral(value string) string {
	escaped := strings.ReplaceAll(value, `'`, `''`)
	return fmt.Sprintf(`'%s'`, escaped)
}
