package charts

import (
	"path/filepath"
	"strings"
)

// BestMatch picks the candidate filename that best pairs with a chart's base
// name. First a case-insensitive exact match on the candidate's stem, then a
// case-insensitive substring match in either direction (first candidate in
// input order wins). Returns "" when nothing relates; the caller decides
// whether to fall back to the first candidate.
func BestMatch(baseName string, candidates []string) string {
	lowerBase := strings.ToLower(baseName)

	for _, candidate := range candidates {
		if stem(candidate) == lowerBase {
			return candidate
		}
	}

	for _, candidate := range candidates {
		s := stem(candidate)
		if strings.Contains(s, lowerBase) || strings.Contains(lowerBase, s) {
			return candidate
		}
	}

	return ""
}

// stem returns the lower-cased filename without its extension.
func stem(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, ext(name)))
}

func ext(name string) string {
	return filepath.Ext(name)
}
