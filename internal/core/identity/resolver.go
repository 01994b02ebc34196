package identity

import "github.com/example/svcscaffold/internal/core/schema"

// Resolution names the chosen key field and how it was chosen.
type Resolution struct {
	Field schema.Field
	// Rule is the matching rule name, or "x-id-field" for an honored override.
	Rule string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRules replaces the default rule list.
func WithRules(rules []Rule) Option {
	return func(r *Resolver) {
		r.rules = sorted(rules)
	}
}

// WithOverride makes an entity's x-id-field extension take precedence
// over the naming heuristic when it names one of the entity's fields.
func WithOverride(honor bool) Option {
	return func(r *Resolver) {
		r.honorOverride = honor
	}
}

// Resolver classifies entities and picks their key fields.
type Resolver struct {
	rules         []Rule
	honorOverride bool
}

// NewResolver creates a Resolver using DefaultRules unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{rules: sorted(DefaultRules())}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rules returns the active rules in priority order.
func (r *Resolver) Rules() []Rule {
	return r.rules
}

// Classify reports whether the entity is persistent: at least one field
// name matches an identifier rule. Malformed entries never are.
func (r *Resolver) Classify(e *schema.Entity) bool {
	if e == nil || e.Malformed {
		return false
	}
	for _, f := range e.Fields {
		if Matches(r.rules, f.Name) {
			return true
		}
	}
	return false
}

// ResolveKey returns the first field, in declared order, matching any
// rule. The result is always one of the entity's own fields.
func (r *Resolver) ResolveKey(e *schema.Entity) (Resolution, bool) {
	if e == nil || e.Malformed {
		return Resolution{}, false
	}

	if r.honorOverride && e.IDOverride != "" {
		if f, ok := e.Field(e.IDOverride); ok {
			return Resolution{Field: f, Rule: schema.IDOverrideKey}, true
		}
	}

	for _, f := range e.Fields {
		if rule, ok := MatchRule(r.rules, f.Name); ok {
			return Resolution{Field: f, Rule: rule.Name}, true
		}
	}
	return Resolution{}, false
}
