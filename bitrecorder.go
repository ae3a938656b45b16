package fieldset

import (
	"fmt"
	"iter"

	"github.com/liarokapisv/fieldset/bitset"
)

// BitRecorder records writes as an append-only change sequence, keeping
// only the first write to each leaf: a per-leaf guard bit marks leaves
// already recorded, and later writes to them are dropped. Draining yields
// the recorded changes in first-write order, each carrying the leaf's
// first value.
//
// The sequence buffer is sized by the schema's variance and owned by the
// root window; nested windows append to the same buffer through the shared
// cursor, while their guard bits live in a private range of the parent's
// bit store. A BitRecorder drains once: draining consumes it, and further
// writes or drains panic.
type BitRecorder struct {
	st   *bitState
	node *Schema
	bits bitset.View
}

type bitState struct {
	schema  *Schema
	changes []Change
	bits    bitset.Set
	n       int
	drained bool
}

// NewBitRecorder returns the root window of a fresh bit recorder for the
// given schema. Storage is allocated up front, sized by the schema's
// variance, and never grows.
func NewBitRecorder(scm *Schema) BitRecorder {
	if scm == nil {
		panic("nil schema")
	}
	st := &bitState{
		schema:  scm,
		changes: make([]Change, scm.variance),
		bits:    bitset.New(scm.variance),
	}
	return BitRecorder{st, scm, st.bits.Offset(0)}
}

func (m BitRecorder) Schema() *Schema { return m.node }

// Leaf returns the write capability for a leaf field of the window's
// schema.
func (m BitRecorder) Leaf(f *Field) LeafSink {
	checkLeaf(m.node, f)
	return bitLeafSink{m.st, m.bits, f.offset}
}

// Sub returns the window for a nested field, sharing the recorder's
// buffer, cursor and bit store.
func (m BitRecorder) Sub(f *Field) BitRecorder {
	checkSub(m.node, f)
	return BitRecorder{m.st, f.sub, m.bits.Offset(f.offset)}
}

func (m BitRecorder) AnySub(f *Field) AnyRecorder { return m.Sub(f) }

func (m BitRecorder) Apply(c Change) { applyTo(m, c) }

// Len returns the number of changes recorded so far.
func (m BitRecorder) Len() int {
	m.checkRoot("Len")
	return m.st.n
}

// Drain consumes the recorder and yields the recorded changes in
// first-write order. Draining again, or writing through any window after
// draining, panics.
func (m BitRecorder) Drain() iter.Seq[Change] {
	m.checkRoot("Drain")
	st := m.st
	if st.drained {
		panic(fmt.Errorf("recorder of %s already drained", st.schema))
	}
	st.drained = true
	return drainChanges(st.changes[:st.n])
}

func (m BitRecorder) checkRoot(op string) {
	if m.node != m.st.schema {
		panic(fmt.Errorf("cannot %s a nested window of %s", op, m.st.schema))
	}
}

type bitLeafSink struct {
	st    *bitState
	bits  bitset.View
	local int
}

func (s bitLeafSink) SetWord(word uint64) {
	st := s.st
	if st.drained {
		panic(fmt.Errorf("write to a drained recorder of %s", st.schema))
	}
	if s.bits.Test(s.local) {
		return
	}
	s.bits.Set(s.local)
	st.changes[st.n] = Change{st.schema, s.bits.Base() + s.local, word}
	st.n++
}
