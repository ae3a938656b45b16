package fieldset

import (
	"fmt"
	"iter"
)

// AnyRecorder is the kind-independent surface of a recorder window. A
// window covers one schema: the root window returned by the constructors
// covers the whole recorded schema, and AnySub returns a window for a
// nested field. All windows of a recorder share the same backing storage
// and, for ordered recorders, the same append cursor; a window only shifts
// the leaf range it addresses.
//
// Generated accessors hold an AnyRecorder so that a single veneer works
// with every recorder kind.
type AnyRecorder interface {
	Applier
	Schema() *Schema
	Leaf(f *Field) LeafSink
	AnySub(f *Field) AnyRecorder
}

// applyTo routes a change through the leaf sink of its target field,
// descending into nested windows leaf by leaf. All recorder kinds share
// this dispatch; what varies is what the sinks do with the word.
func applyTo(v AnyRecorder, c Change) {
	if c.scm != v.Schema() {
		panic(fmt.Errorf("cannot apply change of schema %s to a window of %s", c.scm, v.Schema()))
	}
	f := c.Field()
	if f.sub == nil {
		v.Leaf(f).SetWord(c.word)
	} else {
		v.AnySub(f).Apply(c.Sub())
	}
}

func checkLeaf(node *Schema, f *Field) {
	if f.scm != node {
		panic(fmt.Errorf("field %s does not belong to schema %s", f, node))
	}
	if f.sub != nil {
		panic(fmt.Errorf("field %s is nested, not a leaf", f))
	}
}

func checkSub(node *Schema, f *Field) {
	if f.scm != node {
		panic(fmt.Errorf("field %s does not belong to schema %s", f, node))
	}
	if f.sub == nil {
		panic(fmt.Errorf("field %s is a leaf, not nested", f))
	}
}

func drainChanges(changes []Change) iter.Seq[Change] {
	return func(yield func(Change) bool) {
		for _, c := range changes {
			if !yield(c) {
				return
			}
		}
	}
}
