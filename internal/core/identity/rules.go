// Package identity decides which schema entities are persistent and which
// of their fields is the primary identifier.
//
// Both decisions share one ordered rule list. Matching is case-insensitive
// on purpose; finder synthesis applies a stricter, case-sensitive test.
//
// The service-request-id rule is never reported: suffix-id outranks it and
// matches every name it does. It stays in the list so the rule set mirrors
// the conventions generated services are known to use.
package identity

import (
	"sort"
	"strings"
)

// Rule is one identifier-shaped naming convention.
type Rule struct {
	Name     string
	Priority int
	Match    func(field string) bool
}

// DefaultRules returns the identifier conventions in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "exact-id", Priority: 1, Match: func(f string) bool {
			return strings.EqualFold(f, "id")
		}},
		{Name: "suffix-id", Priority: 2, Match: func(f string) bool {
			return hasSuffixFold(f, "id")
		}},
		{Name: "suffix-underscore-id", Priority: 3, Match: func(f string) bool {
			return hasSuffixFold(f, "_id")
		}},
		{Name: "service-request-id", Priority: 4, Match: func(f string) bool {
			return strings.EqualFold(f, "serviceRequestId")
		}},
	}
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// sorted returns a copy of rules ordered by ascending priority.
func sorted(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// MatchRule returns the highest-priority rule that matches field.
func MatchRule(rules []Rule, field string) (Rule, bool) {
	for _, r := range rules {
		if r.Match(field) {
			return r, true
		}
	}
	return Rule{}, false
}

// Matches reports whether any rule matches field.
func Matches(rules []Rule, field string) bool {
	_, ok := MatchRule(rules, field)
	return ok
}
