// Package model parses generated data-holder classes and renders their
// compact annotation-driven form.
package model

import (
	"fmt"
	"strings"
)

// State is the position of one file in the rewrite lifecycle.
type State int

const (
	StateStart State = iota
	StateParsed
	StateSkippedNoClass
	StateSkippedNoFields
	StateRewritten
	StateError
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateParsed:
		return "parsed"
	case StateSkippedNoClass:
		return "skipped-no-class"
	case StateSkippedNoFields:
		return "skipped-no-fields"
	case StateRewritten:
		return "rewritten"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s >= StateSkippedNoClass
}

// Field is one private field declaration, in source order.
type Field struct {
	Type string
	Name string
}

// File is the parsed shape of one model source file.
type File struct {
	// Namespace is empty when the file declares none.
	Namespace string
	Entity    string
	Fields    []Field

	accessorWire map[string]string
	fieldWire    map[string]string
}

// WireName returns the serialized name for a field. Accessor annotations
// take precedence over field annotations.
func (f *File) WireName(field string) string {
	if w, ok := f.accessorWire[field]; ok {
		return w
	}
	if w, ok := f.fieldWire[field]; ok {
		return w
	}
	return field
}

// Parse reads content line by line. The returned state is StateParsed, or
// one of the skip states when the file must be left alone.
func Parse(content string) (*File, State) {
	f := &File{
		accessorWire: make(map[string]string),
		fieldWire:    make(map[string]string),
	}

	var (
		pendingWire string
		hasPending  bool
		hasPackage  bool
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if hasPending && strings.TrimSpace(line) != "" {
			f.attachWire(pendingWire, line)
			hasPending = false
		}
		if idx := strings.Index(line, "@JsonProperty"); idx >= 0 {
			if wire, rest, ok := parseWireName(line[idx:]); ok {
				if strings.TrimSpace(rest) == "" {
					pendingWire, hasPending = wire, true
				} else {
					f.attachWire(wire, rest)
				}
			}
		}

		if !hasPackage {
			if ns, ok := parsePackage(line); ok {
				f.Namespace, hasPackage = ns, true
			}
		}
		if f.Entity == "" {
			if name, ok := parseClass(line); ok {
				f.Entity = name
			}
		}
		if field, ok := parseField(line); ok {
			f.Fields = append(f.Fields, field)
		}
	}

	if f.Entity == "" {
		return f, StateSkippedNoClass
	}
	if len(f.Fields) == 0 {
		return f, StateSkippedNoFields
	}
	return f, StateParsed
}

func (f *File) attachWire(wire, target string) {
	if accessor, ok := parseAccessor(target); ok {
		f.accessorWire[FieldNameForAccessor(accessor)] = wire
		return
	}
	if field, ok := parseField(target); ok {
		f.fieldWire[field.Name] = wire
	}
}

var canonicalImports = []string{
	"com.fasterxml.jackson.annotation.JsonProperty",
	"lombok.Data",
	"lombok.NoArgsConstructor",
	"lombok.AllArgsConstructor",
	"lombok.Builder",
}

var canonicalMarkers = []string{
	"@Data",
	"@NoArgsConstructor",
	"@AllArgsConstructor",
	"@Builder",
}

// Render produces the canonical compact form of f.
func Render(f *File) string {
	var lines []string
	if f.Namespace != "" {
		lines = append(lines, "package "+f.Namespace+";", "")
	}
	for _, imp := range canonicalImports {
		lines = append(lines, "import "+imp+";")
	}
	lines = append(lines, "")
	lines = append(lines, canonicalMarkers...)
	lines = append(lines, "public class "+f.Entity+" {", "")
	for _, field := range f.Fields {
		lines = append(lines,
			`    @JsonProperty("`+f.WireName(field.Name)+`")`,
			fmt.Sprintf("    private %s %s;", field.Type, field.Name),
			"",
		)
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// Rewrite parses content and renders it when the file qualifies. The
// returned text is empty unless the state is StateParsed.
func Rewrite(content string) (string, *File, State) {
	f, state := Parse(content)
	if state != StateParsed {
		return "", f, state
	}
	return Render(f), f, state
}
