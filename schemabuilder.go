package fieldset

import (
	"fmt"
	"math"
)

type SchemaBuilder struct {
	scm  *Schema
	done bool
}

// Define builds a schema by running f against a builder. The returned
// schema is frozen: the builder stops working once Define returns, and no
// fields can be added afterwards. Malformed definitions (empty or duplicate
// names, nil types or sub-schemas) panic inside Define rather than
// surfacing during recording.
//
// Sub-schemas must be defined before the parents that embed them, which
// makes definition cycles impossible.
func Define(name string, f func(b *SchemaBuilder)) *Schema {
	if name == "" {
		panic("schema name missing")
	}
	scm := &Schema{
		name:         name,
		fieldsByName: make(map[string]*Field),
	}
	b := SchemaBuilder{scm: scm}
	if f != nil {
		f(&b)
	}
	b.done = true
	scm.fprint = computeFingerprint(scm)
	return scm
}

// Leaf adds a field holding a single value of the given type.
func (b *SchemaBuilder) Leaf(name string, typ *Type) *Field {
	if typ == nil {
		panic(fmt.Sprintf("Define(%s): field %s: nil type", b.scm.name, name))
	}
	return b.add(name, typ, nil)
}

// Nested adds a field embedding a previously defined schema. The field
// contributes sub's entire leaf range to the parent.
func (b *SchemaBuilder) Nested(name string, sub *Schema) *Field {
	if sub == nil {
		panic(fmt.Sprintf("Define(%s): field %s: nil sub-schema", b.scm.name, name))
	}
	return b.add(name, nil, sub)
}

func (b *SchemaBuilder) add(name string, typ *Type, sub *Schema) *Field {
	scm := b.scm
	if b.done {
		panic(fmt.Errorf("schema %s is already defined", scm.name))
	}
	if name == "" {
		panic(fmt.Errorf("schema %s: field name missing", scm.name))
	}
	if scm.fieldsByName[name] != nil {
		panic(fmt.Errorf("schema %s already has field %s", scm.name, name))
	}
	f := &Field{
		scm:    scm,
		name:   name,
		index:  len(scm.fields),
		offset: scm.variance,
		typ:    typ,
		sub:    sub,
	}
	v := 1
	if sub != nil {
		v = sub.variance
	}
	// Indexed recorders store 1-based leaf positions as uint32.
	if int64(scm.variance)+int64(v) > math.MaxUint32 {
		panic(fmt.Errorf("schema %s: field %s pushes variance past %d leaves", scm.name, name, uint32(math.MaxUint32)))
	}
	scm.variance += v
	scm.fields = append(scm.fields, f)
	scm.fieldsByName[name] = f
	return f
}
