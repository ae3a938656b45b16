package fieldset

import "testing"

var (
	KWibble *Field
	KWobble *Field

	MGizmo = Define("gizmo", func(b *SchemaBuilder) {
		KWibble = b.Leaf("wibble", TFloat64)
		KWobble = b.Leaf("wobble", TUint64)
	})

	KQux   *Field
	KQuux  *Field
	KGizmo *Field

	MDoodad = Define("doodad", func(b *SchemaBuilder) {
		KQux = b.Leaf("qux", TFloat64)
		KQuux = b.Leaf("quux", TUint64)
		KGizmo = b.Nested("gizmo", MGizmo)
	})

	KFoo    *Field
	KBar    *Field
	KDoodad *Field

	MWidget = Define("widget", func(b *SchemaBuilder) {
		KFoo = b.Leaf("foo", TFloat64)
		KBar = b.Leaf("bar", TUint64)
		KDoodad = b.Nested("doodad", MDoodad)
	})
)

func TestSchemaVariance(t *testing.T) {
	eq(t, MGizmo.Variance(), 2)
	eq(t, MDoodad.Variance(), 4)
	eq(t, MWidget.Variance(), 6)

	eq(t, Define("empty", nil).Variance(), 0)
}

func TestFieldOffsets(t *testing.T) {
	eq(t, KFoo.Offset(), 0)
	eq(t, KBar.Offset(), 1)
	eq(t, KDoodad.Offset(), 2)
	eq(t, KQux.Offset(), 0)
	eq(t, KGizmo.Offset(), 2)
	eq(t, KWobble.Offset(), 1)

	eq(t, KFoo.Index(), 0)
	eq(t, KBar.Index(), 1)
	eq(t, KDoodad.Index(), 2)

	eq(t, KFoo.Variance(), 1)
	eq(t, KGizmo.Variance(), 2)
	eq(t, KDoodad.Variance(), 4)
}

func TestFieldAccessors(t *testing.T) {
	eq(t, KFoo.Schema(), MWidget)
	eq(t, KFoo.Name(), "foo")
	eq(t, KFoo.String(), "widget.foo")
	eq(t, KQux.String(), "doodad.qux")
	eq(t, KFoo.IsLeaf(), true)
	eq(t, KFoo.Type(), TFloat64)
	eq(t, KDoodad.IsLeaf(), false)
	eq(t, KDoodad.Sub(), MDoodad)
	eq(t, KDoodad.Type(), (*Type)(nil))
	eq(t, KFoo.Sub(), (*Schema)(nil))
}

func TestSchemaLookups(t *testing.T) {
	eq(t, MWidget.Name(), "widget")
	eq(t, MWidget.String(), "widget")
	eq(t, MWidget.FieldNamed("doodad"), KDoodad)
	eq(t, MWidget.FieldNamed("nope"), (*Field)(nil))

	fields := MWidget.Fields()
	eq(t, len(fields), 3)
	eq(t, fields[0], KFoo)
	eq(t, fields[1], KBar)
	eq(t, fields[2], KDoodad)
}

func TestLeafPath(t *testing.T) {
	eq(t, MWidget.LeafPath(0), "foo")
	eq(t, MWidget.LeafPath(1), "bar")
	eq(t, MWidget.LeafPath(2), "doodad.qux")
	eq(t, MWidget.LeafPath(3), "doodad.quux")
	eq(t, MWidget.LeafPath(4), "doodad.gizmo.wibble")
	eq(t, MWidget.LeafPath(5), "doodad.gizmo.wobble")
	eq(t, MGizmo.LeafPath(1), "wobble")
}

func TestSchemaSharing(t *testing.T) {
	var left, right *Field
	pair := Define("pair", func(b *SchemaBuilder) {
		left = b.Nested("left", MGizmo)
		right = b.Nested("right", MGizmo)
	})
	eq(t, pair.Variance(), 4)
	eq(t, left.Offset(), 0)
	eq(t, right.Offset(), 2)
	eq(t, pair.LeafPath(1), "left.wobble")
	eq(t, pair.LeafPath(3), "right.wobble")
}

func TestDefinePanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"empty schema name", func() { Define("", nil) }},
		{"empty field name", func() {
			Define("bad", func(b *SchemaBuilder) { b.Leaf("", TUint64) })
		}},
		{"duplicate field name", func() {
			Define("bad", func(b *SchemaBuilder) {
				b.Leaf("x", TUint64)
				b.Leaf("x", TFloat64)
			})
		}},
		{"nil type", func() {
			Define("bad", func(b *SchemaBuilder) { b.Leaf("x", nil) })
		}},
		{"nil sub-schema", func() {
			Define("bad", func(b *SchemaBuilder) { b.Nested("x", nil) })
		}},
		{"leaf after define", func() {
			var escaped *SchemaBuilder
			Define("bad", func(b *SchemaBuilder) { escaped = b })
			escaped.Leaf("late", TUint64)
		}},
		{"leaf path out of range", func() { MWidget.LeafPath(6) }},
		{"negative leaf path", func() { MWidget.LeafPath(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tt.f()
		})
	}
}
