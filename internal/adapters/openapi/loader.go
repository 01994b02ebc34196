// Package openapi loads API schema documents into ordered mappings.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/svcscaffold/internal/core/schema"
	"github.com/example/svcscaffold/internal/ports/secondary"
	"github.com/example/svcscaffold/internal/scaffold"
)

// Loader implements secondary.SchemaLoader for YAML and JSON documents.
type Loader struct{}

// NewLoader creates a new schema document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the document at path. Key order is preserved.
func (l *Loader) Load(ctx context.Context, path string) (*schema.Mapping, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, scaffold.NewPathError("schema document", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	return Decode(data)
}

// Decode parses raw YAML (or JSON) into a Mapping. An empty document
// decodes to an empty Mapping.
func Decode(data []byte) (*schema.Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return schema.NewMapping(), nil
	}

	v, err := newDecoder().convert(doc.Content[0])
	if err != nil {
		return nil, err
	}
	m, ok := v.(*schema.Mapping)
	if !ok {
		return nil, fmt.Errorf("failed to parse schema document: top level is not a mapping")
	}
	return m, nil
}

// maxAliasExpansions bounds alias dereferences per document.
const maxAliasExpansions = 10000

// decoder converts a node tree, tracking the aliases being expanded.
type decoder struct {
	active     map[*yaml.Node]bool
	expansions int
}

func newDecoder() *decoder {
	return &decoder{active: make(map[*yaml.Node]bool)}
}

func (d *decoder) alias(n *yaml.Node) (any, error) {
	if n.Alias == nil || d.active[n.Alias] {
		return nil, fmt.Errorf("failed to parse schema document: line %d: alias *%s refers to itself", n.Line, n.Value)
	}
	d.expansions++
	if d.expansions > maxAliasExpansions {
		return nil, fmt.Errorf("failed to parse schema document: line %d: more than %d alias expansions", n.Line, maxAliasExpansions)
	}
	d.active[n.Alias] = true
	defer delete(d.active, n.Alias)
	return d.convert(n.Alias)
}

func (d *decoder) convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.convert(n.Content[0])
	case yaml.AliasNode:
		return d.alias(n)
	case yaml.MappingNode:
		m := schema.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Tag == "!!merge" {
				if err := d.mergeInto(m, valueNode); err != nil {
					return nil, err
				}
				continue
			}
			value, err := d.convert(valueNode)
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.convert(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, nil
}

// mergeInto applies a YAML merge key (<<) without overriding explicit keys.
func (d *decoder) mergeInto(dst *schema.Mapping, n *yaml.Node) error {
	v, err := d.convert(n)
	if err != nil {
		return err
	}
	var sources []*schema.Mapping
	switch src := v.(type) {
	case *schema.Mapping:
		sources = append(sources, src)
	case []any:
		for _, item := range src {
			if m, ok := item.(*schema.Mapping); ok {
				sources = append(sources, m)
			}
		}
	}
	for _, src := range sources {
		for _, k := range src.Keys() {
			if _, exists := dst.Get(k); exists {
				continue
			}
			val, _ := src.Get(k)
			dst.Set(k, val)
		}
	}
	return nil
}

var _ secondary.SchemaLoader = (*Loader)(nil)
