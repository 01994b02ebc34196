package scaffold

import (
	"sort"
	"strings"
)

// Render substitutes every occurrence of every token in tmpl with its
// value in a single pass. Inserted values are never rescanned, so a value
// that happens to contain a token is emitted literally.
func Render(tmpl string, values map[string]string) string {
	if len(values) == 0 {
		return tmpl
	}

	tokens := make([]string, 0, len(values))
	for token := range values {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	// Longest first so a token that prefixes another cannot shadow it.
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		pairs = append(pairs, token, values[token])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
