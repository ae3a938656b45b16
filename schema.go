package fieldset

import (
	"fmt"
	"sort"
)

// Schema is an immutable description of a record shape: a named, ordered
// list of fields, each either a leaf carrying a value type or a nested
// sub-schema. Schemas are built once via Define, typically assigned to
// package-level vars at startup, and shared by every recorder and change
// referring to that shape.
//
// A schema may appear as a sub-schema of several parents, or several times
// within one parent. Each occurrence contributes its own independent range
// of leaves to the parent.
type Schema struct {
	name         string
	fields       []*Field
	fieldsByName map[string]*Field
	variance     int
	fprint       uint64
}

func (scm *Schema) Name() string   { return scm.name }
func (scm *Schema) String() string { return scm.name }

// Variance is the total number of leaves reachable from the schema,
// counting nested sub-schemas recursively. It is the size of every per-leaf
// structure a recorder allocates for the schema, and the exclusive upper
// bound of flat leaf indices.
func (scm *Schema) Variance() int { return scm.variance }

// Fingerprint is a hash of the schema's shape (field names, types and
// nesting), fixed at definition time. Code generated for a particular
// schema revision can compare fingerprints at startup to detect drift.
func (scm *Schema) Fingerprint() uint64 { return scm.fprint }

func (scm *Schema) Fields() []*Field {
	return append([]*Field(nil), scm.fields...)
}

func (scm *Schema) FieldNamed(name string) *Field {
	return scm.fieldsByName[name]
}

// LeafPath returns the dot-separated path of field names leading to the
// given flat leaf index.
func (scm *Schema) LeafPath(leaf int) string {
	f := scm.fieldOfLeaf(leaf)
	if f.sub == nil {
		return f.name
	}
	return f.name + "." + f.sub.LeafPath(leaf-f.offset)
}

// fieldOfLeaf returns the top-level field whose leaf range covers the given
// flat leaf index.
func (scm *Schema) fieldOfLeaf(leaf int) *Field {
	if leaf < 0 || leaf >= scm.variance {
		panic(fmt.Errorf("leaf %d out of range in schema %s (variance %d)", leaf, scm.name, scm.variance))
	}
	i := sort.Search(len(scm.fields), func(i int) bool { return scm.fields[i].offset > leaf }) - 1
	return scm.fields[i]
}

func (scm *Schema) leafType(leaf int) *Type {
	f := scm.fieldOfLeaf(leaf)
	if f.sub == nil {
		return f.typ
	}
	return f.sub.leafType(leaf - f.offset)
}

// Field is a single slot of a schema. Exactly one of Type and Sub is
// non-nil: leaf fields carry a value type, nested fields carry a
// sub-schema. Field handles are returned by SchemaBuilder and identify
// fields in all recorder and change APIs.
type Field struct {
	scm    *Schema
	name   string
	index  int
	offset int
	typ    *Type
	sub    *Schema
}

func (f *Field) Schema() *Schema { return f.scm }
func (f *Field) Name() string    { return f.name }
func (f *Field) String() string  { return f.scm.name + "." + f.name }

// Index is the position of the field among its schema's fields.
func (f *Field) Index() int { return f.index }

// Offset is the flat index of the field's first leaf within its schema.
func (f *Field) Offset() int { return f.offset }

func (f *Field) IsLeaf() bool { return f.sub == nil }
func (f *Field) Type() *Type  { return f.typ }
func (f *Field) Sub() *Schema { return f.sub }

// Variance is the number of leaves the field contributes to its schema:
// 1 for a leaf, the sub-schema's variance for a nested field.
func (f *Field) Variance() int {
	if f.sub == nil {
		return 1
	}
	return f.sub.variance
}
