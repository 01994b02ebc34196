package schema

import "strings"

// DefaultCollectionPath is where OpenAPI documents keep named shapes.
var DefaultCollectionPath = []string{"components", "schemas"}

// IDOverrideKey is the schema-level extension naming an explicit key field.
const IDOverrideKey = "x-id-field"

// Kind is the normalized declared type of a field.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindUnknown Kind = "unknown"
)

// Field is one property of an entity, in declared order.
type Field struct {
	Name string
	// DeclaredType is the raw "type" text; empty when absent or not a string.
	DeclaredType string
	Format       string
	Ref          string
}

// Kind returns the normalized declared type. Matching is exact.
func (f Field) Kind() Kind {
	switch Kind(f.DeclaredType) {
	case KindString, KindInteger, KindNumber, KindBoolean, KindObject, KindArray:
		return Kind(f.DeclaredType)
	}
	return KindUnknown
}

// OutputType maps the field onto the generated language's boxed type.
func (f Field) OutputType() string {
	if f.Format == "uuid" {
		return "String"
	}
	switch f.Kind() {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindNumber:
		return "Double"
	case KindBoolean:
		return "Boolean"
	}
	return "String"
}

// Entity is a named shape with its fields in declared order.
type Entity struct {
	Name   string
	Fields []Field
	// IDOverride is the value of the x-id-field extension, if any.
	IDOverride string
	// Malformed is set when the catalog entry was not a mapping.
	Malformed bool
}

// Field looks up a field by exact name.
func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// HasField reports whether a field with exactly this name exists.
func (e *Entity) HasField(name string) bool {
	_, ok := e.Field(name)
	return ok
}

// FieldNames returns the field names in declared order.
func (e *Entity) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	return names
}

// Catalog is the ordered set of entities found in a document.
type Catalog struct {
	entities []*Entity
	byName   map[string]*Entity
}

// ParseCollectionPath splits a dotted path such as "components.schemas".
func ParseCollectionPath(dotted string) []string {
	if strings.TrimSpace(dotted) == "" {
		return DefaultCollectionPath
	}
	return strings.Split(dotted, ".")
}

// NewCatalog extracts the entries under path. A missing path yields an
// empty catalog.
func NewCatalog(doc *Mapping, path []string) *Catalog {
	c := &Catalog{byName: make(map[string]*Entity)}
	if doc == nil {
		return c
	}
	if len(path) == 0 {
		path = DefaultCollectionPath
	}

	schemas, ok := doc.Lookup(path...)
	if !ok {
		return c
	}

	for _, name := range schemas.Keys() {
		raw, _ := schemas.Get(name)
		entity := newEntity(name, raw)
		c.entities = append(c.entities, entity)
		c.byName[name] = entity
	}
	return c
}

func newEntity(name string, raw any) *Entity {
	entity := &Entity{Name: name}

	def, ok := raw.(*Mapping)
	if !ok {
		entity.Malformed = true
		return entity
	}

	entity.IDOverride = def.String(IDOverrideKey)

	props, ok := def.Mapping("properties")
	if !ok {
		return entity
	}
	for _, fieldName := range props.Keys() {
		field := Field{Name: fieldName}
		if fieldDef, ok := props.Mapping(fieldName); ok {
			field.DeclaredType = fieldDef.String("type")
			field.Format = fieldDef.String("format")
			field.Ref = fieldDef.String("$ref")
		}
		entity.Fields = append(entity.Fields, field)
	}
	return entity
}

// Entities returns entities in document order.
func (c *Catalog) Entities() []*Entity {
	return c.entities
}

// Entity looks up an entity by name.
func (c *Catalog) Entity(name string) (*Entity, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Len returns the number of entities.
func (c *Catalog) Len() int {
	return len(c.entities)
}
