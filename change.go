package fieldset

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Change records a single field mutation: the schema it belongs to, the
// flat index of the written leaf, and the written value word. Changes are
// small comparable values, cheap to copy, store and replay. A change to a
// leaf inside a nested sub-schema is identified by its flat index relative
// to the outermost schema; Sub re-bases it one nesting level down.
type Change struct {
	scm  *Schema
	leaf int
	word uint64
}

// NewChange builds a change writing a raw word to a leaf field.
func NewChange(f *Field, word uint64) Change {
	if f.sub != nil {
		panic(fmt.Errorf("field %s is nested, not a leaf", f))
	}
	return Change{f.scm, f.offset, word}
}

func IntChange[T IntegerValue](f *Field, value T) Change {
	if k := leafKind(f); k != KindInt && k != KindUint {
		panic(fmt.Errorf("field %s is %s, not an integer leaf", f, f.typ))
	}
	return NewChange(f, intScalarConverter[T]{}.ValueToScalar(value))
}

func FloatChange[T FloatValue](f *Field, value T) Change {
	if leafKind(f) != KindFloat {
		panic(fmt.Errorf("field %s is %s, not a float leaf", f, f.typ))
	}
	return NewChange(f, floatScalarConverter[T]{}.ValueToScalar(value))
}

func BoolChange(f *Field, value bool) Change {
	if leafKind(f) != KindBool {
		panic(fmt.Errorf("field %s is %s, not a bool leaf", f, f.typ))
	}
	return NewChange(f, boolScalarConverter{}.ValueToScalar(value))
}

func TimeChange(f *Field, value time.Time) Change {
	if leafKind(f) != KindTime {
		panic(fmt.Errorf("field %s is %s, not a time leaf", f, f.typ))
	}
	return NewChange(f, timeScalarConverter{}.ValueToScalar(value))
}

func leafKind(f *Field) Kind {
	if f.sub != nil {
		panic(fmt.Errorf("field %s is nested, not a leaf", f))
	}
	return f.typ.kind
}

// Wrap lifts a change of f's sub-schema into a change of f's schema,
// re-basing the leaf index by f's offset. Wrapping is how snapshots and
// generated accessors compose changes of nested models into parent
// changes.
func (f *Field) Wrap(c Change) Change {
	if f.sub == nil {
		panic(fmt.Errorf("field %s is a leaf, not nested", f))
	}
	if c.scm != f.sub {
		panic(fmt.Errorf("cannot wrap change of schema %s into field %s", c.scm, f))
	}
	return Change{f.scm, f.offset + c.leaf, c.word}
}

func (c Change) Schema() *Schema { return c.scm }

// Leaf is the flat index of the written leaf within the change's schema.
func (c Change) Leaf() int { return c.leaf }

// Word is the raw stored value. Use the typed accessors to decode it.
func (c Change) Word() uint64 { return c.word }

// Field returns the top-level field of the change's schema that the change
// falls into. For changes targeting a leaf of a nested sub-schema, Field
// returns the nested field; use Sub to descend into it.
func (c Change) Field() *Field { return c.scm.fieldOfLeaf(c.leaf) }

// Sub re-bases the change into the sub-schema of its top-level field.
// Panics if the change targets a direct leaf of its schema.
func (c Change) Sub() Change {
	f := c.scm.fieldOfLeaf(c.leaf)
	if f.sub == nil {
		panic(fmt.Errorf("change %s targets a leaf, not a nested field", c))
	}
	return Change{f.sub, c.leaf - f.offset, c.word}
}

func (c Change) Type() *Type  { return c.scm.leafType(c.leaf) }
func (c Change) Path() string { return c.scm.LeafPath(c.leaf) }

func (c Change) Uint64() uint64 {
	c.checkKind(KindUint, "uint64")
	return c.word
}

func (c Change) Int64() int64 {
	c.checkKind(KindInt, "int64")
	return int64(c.word)
}

func (c Change) Float64() float64 {
	c.checkKind(KindFloat, "float64")
	return math.Float64frombits(c.word)
}

func (c Change) Bool() bool {
	c.checkKind(KindBool, "bool")
	return c.word != 0
}

func (c Change) Time() time.Time {
	c.checkKind(KindTime, "time")
	return Uint64ToTime(c.word)
}

func (c Change) checkKind(k Kind, as string) {
	if typ := c.Type(); typ.kind != k {
		panic(fmt.Errorf("change %s is of type %s, cannot read as %s", c.Path(), typ, as))
	}
}

// String renders the change as path=value, formatting the value per the
// leaf's declared type.
func (c Change) String() string {
	return c.Path() + "=" + c.Type().FormatValue(c.word)
}

// LogValue implements slog.LogValuer, so a change logged as an attr value
// expands into a schema/field/value group.
func (c Change) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("schema", c.scm.name),
		slog.String("field", c.Path()),
		slog.String("value", c.Type().FormatValue(c.word)),
	)
}
