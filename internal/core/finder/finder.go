// Package finder synthesizes typed lookup-method signatures for a
// persistent entity from its field names and declared types.
//
// Single-field finders use a stricter test than entity classification:
// the raw declared type must be exactly "string" and the field name must be
// "id" or end in the case-sensitive suffix "Id". A field named "Paid" is an
// identifier to the classifier but never gets a finder here.
package finder

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/example/svcscaffold/internal/core/identity"
	"github.com/example/svcscaffold/internal/core/schema"
)

// TenantField is the discriminator that triggers the composite finder.
const TenantField = "tenantId"

// Param is one method parameter.
type Param struct {
	Type string
	Name string
}

// Method is a synthesized finder signature.
type Method struct {
	Name       string
	ReturnType string
	Params     []Param
}

// Signature renders the method as an interface member declaration.
func (m Method) Signature() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Type + " " + p.Name
	}
	return fmt.Sprintf("%s %s(%s);", m.ReturnType, m.Name, strings.Join(params, ", "))
}

// Synthesizer builds finder methods for entities.
type Synthesizer struct {
	rules []identity.Rule
}

// NewSynthesizer creates a Synthesizer whose composite finder picks its
// leading field with the given identifier rules.
func NewSynthesizer(rules []identity.Rule) *Synthesizer {
	if rules == nil {
		rules = identity.DefaultRules()
	}
	return &Synthesizer{rules: rules}
}

// Synthesize returns single-field finders in declared field order, followed
// by at most one composite finder on the leading identifier and tenantId.
// Names are not de-duplicated; see Collisions.
func (s *Synthesizer) Synthesize(e *schema.Entity) []Method {
	returnType := "Optional<" + e.Name + ">"

	var methods []Method
	for _, f := range e.Fields {
		if !isFinderField(f) {
			continue
		}
		methods = append(methods, Method{
			Name:       "findBy" + capitalize(f.Name),
			ReturnType: returnType,
			Params:     []Param{{Type: f.OutputType(), Name: f.Name}},
		})
	}

	if !e.HasField(TenantField) {
		return methods
	}
	for _, f := range e.Fields {
		if f.Name == TenantField || !identity.Matches(s.rules, f.Name) {
			continue
		}
		methods = append(methods, Method{
			Name:       "findBy" + capitalize(f.Name) + "And" + capitalize(TenantField),
			ReturnType: returnType,
			Params: []Param{
				{Type: f.OutputType(), Name: f.Name},
				{Type: "String", Name: TenantField},
			},
		})
		break
	}
	return methods
}

func isFinderField(f schema.Field) bool {
	if f.DeclaredType != "string" || f.Name == TenantField {
		return false
	}
	return f.Name == "id" || strings.HasSuffix(f.Name, "Id")
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	return inflect.Capitalize(name)
}

// Collisions returns method names emitted more than once, in first-seen order.
func Collisions(methods []Method) []string {
	seen := make(map[string]int, len(methods))
	var dups []string
	for _, m := range methods {
		seen[m.Name]++
		if seen[m.Name] == 2 {
			dups = append(dups, m.Name)
		}
	}
	return dups
}

// Render formats methods as indented interface members separated by a
// blank line.
func Render(methods []Method) string {
	lines := make([]string, len(methods))
	for i, m := range methods {
		lines[i] = "    " + m.Signature()
	}
	return strings.Join(lines, "\n\n")
}
