package fieldset

import (
	"log/slog"
	"testing"
	"time"
)

func TestNewChange(t *testing.T) {
	c := NewChange(KBar, 42)
	eq(t, c.Schema(), MWidget)
	eq(t, c.Leaf(), 1)
	eq(t, c.Word(), 42)
	eq(t, c.Field(), KBar)
	eq(t, c.Path(), "bar")
	eq(t, c.Type(), TUint64)
	eq(t, c.Uint64(), 42)
}

func TestTypedChangeConstructors(t *testing.T) {
	eq(t, FloatChange(KFoo, 1.5).Float64(), 1.5)
	eq(t, IntChange(KBar, uint64(7)).Uint64(), 7)

	var kOn, kAt, kN *Field
	scm := Define("thingamabob", func(b *SchemaBuilder) {
		kOn = b.Leaf("on", TBool)
		kAt = b.Leaf("at", TTime)
		kN = b.Leaf("n", TInt64)
	})
	eq(t, scm.Variance(), 3)
	eq(t, BoolChange(kOn, true).Bool(), true)
	eq(t, IntChange(kN, int64(-3)).Int64(), -3)

	tm := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	eq(t, TimeChange(kAt, tm).Time().Equal(tm), true)
}

func TestWrap(t *testing.T) {
	inner := FloatChange(KWibble, 2.5)
	eq(t, inner.Schema(), MGizmo)
	eq(t, inner.Leaf(), 0)

	mid := KGizmo.Wrap(inner)
	eq(t, mid.Schema(), MDoodad)
	eq(t, mid.Leaf(), 2)

	outer := KDoodad.Wrap(mid)
	eq(t, outer.Schema(), MWidget)
	eq(t, outer.Leaf(), 4)
	eq(t, outer.Path(), "doodad.gizmo.wibble")
	eq(t, outer.Field(), KDoodad)
	eq(t, outer.Float64(), 2.5)

	back := outer.Sub()
	eq(t, back, mid)
	eq(t, back.Field(), KGizmo)
	eq(t, back.Sub(), inner)
}

func TestChangeString(t *testing.T) {
	eq(t, FloatChange(KFoo, 1.5).String(), "foo=1.5")
	eq(t, IntChange(KBar, uint64(6)).String(), "bar=6")
	c := KDoodad.Wrap(KGizmo.Wrap(FloatChange(KWibble, 2.5)))
	eq(t, c.String(), "doodad.gizmo.wibble=2.5")
}

func TestChangeLogValue(t *testing.T) {
	v := FloatChange(KFoo, 1.5).LogValue()
	eq(t, v.Kind(), slog.KindGroup)
	attrs := v.Group()
	eq(t, len(attrs), 3)
	eq(t, attrs[0].Key, "schema")
	eq(t, attrs[0].Value.String(), "widget")
	eq(t, attrs[1].Key, "field")
	eq(t, attrs[1].Value.String(), "foo")
	eq(t, attrs[2].Key, "value")
	eq(t, attrs[2].Value.String(), "1.5")
}

func TestChangePanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"change to nested field", func() { NewChange(KDoodad, 1) }},
		{"float change to uint leaf", func() { FloatChange(KBar, 1.5) }},
		{"int change to float leaf", func() { IntChange(KFoo, 1) }},
		{"bool change to uint leaf", func() { BoolChange(KBar, true) }},
		{"time change to uint leaf", func() { TimeChange(KBar, time.Now()) }},
		{"wrap through leaf field", func() { KFoo.Wrap(FloatChange(KWibble, 1.5)) }},
		{"wrap foreign schema", func() { KGizmo.Wrap(FloatChange(KFoo, 1.5)) }},
		{"sub of leaf change", func() { NewChange(KBar, 1).Sub() }},
		{"float read of uint change", func() { _ = NewChange(KBar, 1).Float64() }},
		{"uint read of float change", func() { _ = FloatChange(KFoo, 1.5).Uint64() }},
		{"int read of uint change", func() { _ = NewChange(KBar, 1).Int64() }},
		{"bool read of uint change", func() { _ = NewChange(KBar, 1).Bool() }},
		{"time read of uint change", func() { _ = NewChange(KBar, 1).Time() }},
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
