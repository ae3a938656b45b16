package fieldset

import (
	"fmt"
	"iter"

	"github.com/liarokapisv/fieldset/bitset"
)

// OptRecorder records writes into dense per-leaf storage: one value word
// and one presence bit per leaf of the schema. Re-writing a leaf
// overwrites its pending value; draining yields one change per written
// leaf, in declaration order, carrying the last written value. Write order
// is not retained.
//
// OptRecorder is the only recorder kind that survives draining: Drain can
// be repeated, and Reset clears the pending set so the recorder can
// collect a fresh batch.
type OptRecorder struct {
	st   *optState
	node *Schema
	bits bitset.View
}

type optState struct {
	schema *Schema
	words  []uint64
	bits   bitset.Set
}

// NewOptRecorder returns the root window of a fresh opt recorder for the
// given schema. Storage is allocated up front, sized by the schema's
// variance, and never grows.
func NewOptRecorder(scm *Schema) OptRecorder {
	if scm == nil {
		panic("nil schema")
	}
	st := &optState{
		schema: scm,
		words:  make([]uint64, scm.variance),
		bits:   bitset.New(scm.variance),
	}
	return OptRecorder{st, scm, st.bits.Offset(0)}
}

func (m OptRecorder) Schema() *Schema { return m.node }

// Leaf returns the write capability for a leaf field of the window's
// schema.
func (m OptRecorder) Leaf(f *Field) LeafSink {
	checkLeaf(m.node, f)
	return optLeafSink{m.st, m.bits, f.offset}
}

// Sub returns the window for a nested field, sharing the recorder's
// storage and addressing the field's leaf range.
func (m OptRecorder) Sub(f *Field) OptRecorder {
	checkSub(m.node, f)
	return OptRecorder{m.st, f.sub, m.bits.Offset(f.offset)}
}

func (m OptRecorder) AnySub(f *Field) AnyRecorder { return m.Sub(f) }

func (m OptRecorder) Apply(c Change) { applyTo(m, c) }

// Len returns the number of leaves holding a pending value.
func (m OptRecorder) Len() int {
	m.checkRoot("Len")
	return m.st.bits.Count()
}

// Drain yields the pending changes in leaf declaration order, nested
// fields expanded depth-first. Draining does not consume the recorder: the
// sequence can be iterated repeatedly, and reflects writes made in
// between.
func (m OptRecorder) Drain() iter.Seq[Change] {
	m.checkRoot("Drain")
	st := m.st
	return func(yield func(Change) bool) {
		for i := range st.words {
			if st.bits.Test(i) {
				if !yield(Change{st.schema, i, st.words[i]}) {
					return
				}
			}
		}
	}
}

// Reset clears all pending values, returning the recorder to its freshly
// constructed state.
func (m OptRecorder) Reset() {
	m.checkRoot("Reset")
	clear(m.st.words)
	m.st.bits.Reset()
}

func (m OptRecorder) checkRoot(op string) {
	if m.node != m.st.schema {
		panic(fmt.Errorf("cannot %s a nested window of %s", op, m.st.schema))
	}
}

type optLeafSink struct {
	st    *optState
	bits  bitset.View
	local int
}

func (s optLeafSink) SetWord(word uint64) {
	s.st.words[s.bits.Base()+s.local] = word
	s.bits.Set(s.local)
}
