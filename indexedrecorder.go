package fieldset

import (
	"fmt"
	"iter"
)

// IndexedRecorder records writes as an append-only change sequence with
// last-write-wins values. The first write to a leaf appends a change and
// remembers its position in a per-leaf slot table; later writes to the
// same leaf overwrite that change in place, keeping its position in the
// sequence. Draining yields one change per written leaf, in first-write
// order, carrying the last written value.
//
// Slots hold 1-based sequence positions, zero meaning unwritten. The slot
// table is windowed by plain leaf offsets; unlike the guard bits of
// BitRecorder it is not bit-packed. An IndexedRecorder drains once:
// draining consumes it, and further writes or drains panic.
type IndexedRecorder struct {
	st   *indexedState
	node *Schema
	base int
}

type indexedState struct {
	schema  *Schema
	changes []Change
	slots   []uint32
	n       int
	drained bool
}

// NewIndexedRecorder returns the root window of a fresh indexed recorder
// for the given schema. Storage is allocated up front, sized by the
// schema's variance, and never grows.
func NewIndexedRecorder(scm *Schema) IndexedRecorder {
	if scm == nil {
		panic("nil schema")
	}
	st := &indexedState{
		schema:  scm,
		changes: make([]Change, scm.variance),
		slots:   make([]uint32, scm.variance),
	}
	return IndexedRecorder{st, scm, 0}
}

func (m IndexedRecorder) Schema() *Schema { return m.node }

// Leaf returns the write capability for a leaf field of the window's
// schema.
func (m IndexedRecorder) Leaf(f *Field) LeafSink {
	checkLeaf(m.node, f)
	return indexedLeafSink{m.st, m.base + f.offset}
}

// Sub returns the window for a nested field, sharing the recorder's
// buffer, cursor and slot table.
func (m IndexedRecorder) Sub(f *Field) IndexedRecorder {
	checkSub(m.node, f)
	return IndexedRecorder{m.st, f.sub, m.base + f.offset}
}

func (m IndexedRecorder) AnySub(f *Field) AnyRecorder { return m.Sub(f) }

func (m IndexedRecorder) Apply(c Change) { applyTo(m, c) }

// Len returns the number of changes recorded so far.
func (m IndexedRecorder) Len() int {
	m.checkRoot("Len")
	return m.st.n
}

// Drain consumes the recorder and yields one change per written leaf, in
// first-write order, carrying the last written value. Draining again, or
// writing through any window after draining, panics.
func (m IndexedRecorder) Drain() iter.Seq[Change] {
	m.checkRoot("Drain")
	st := m.st
	if st.drained {
		panic(fmt.Errorf("recorder of %s already drained", st.schema))
	}
	st.drained = true
	return drainChanges(st.changes[:st.n])
}

func (m IndexedRecorder) checkRoot(op string) {
	if m.node != m.st.schema {
		panic(fmt.Errorf("cannot %s a nested window of %s", op, m.st.schema))
	}
}

type indexedLeafSink struct {
	st   *indexedState
	leaf int
}

func (s indexedLeafSink) SetWord(word uint64) {
	st := s.st
	if st.drained {
		panic(fmt.Errorf("write to a drained recorder of %s", st.schema))
	}
	if pos := st.slots[s.leaf]; pos != 0 {
		st.changes[pos-1] = Change{st.schema, s.leaf, word}
		return
	}
	st.slots[s.leaf] = uint32(st.n + 1)
	st.changes[st.n] = Change{st.schema, s.leaf, word}
	st.n++
}
