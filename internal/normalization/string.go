package normalization

import (
	"strings"
)

// ParseInputString trims and lowercases free-form identifiers before matching.
func ParseInputString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	return normalized
}
