package fieldset

import (
	"fmt"
	"strconv"
	"time"
)

// Kind classifies the word interpretation of a leaf type. Typed accessors on
// Change check the kind before decoding, so a change recorded through a
// float sink cannot be silently misread as an integer.
type Kind int

const (
	KindUnknown Kind = iota
	KindUint
	KindInt
	KindFloat
	KindBool
	KindTime
)

type (
	IntegerValue interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
	FloatValue interface {
		~float32 | ~float64
	}
)

// Type describes a leaf value type: which kind of scalar the stored word
// encodes, and how to format it for humans. All leaf values travel as uint64
// words; Type is what gives those words meaning.
type Type struct {
	name      string
	kind      Kind
	formatter func(v uint64) string
}

func (typ *Type) Name() string                { return typ.name }
func (typ *Type) String() string              { return typ.name }
func (typ *Type) Kind() Kind                  { return typ.kind }
func (typ *Type) FormatValue(v uint64) string { return typ.formatter(v) }

func NewScalarType[T any](name string, kind Kind, formatter func(v uint64) string) *Type {
	if name == "" {
		panic("type name missing")
	}
	if formatter == nil {
		panic(fmt.Sprintf("type %s: formatter missing", name))
	}
	return &Type{
		name:      name,
		kind:      kind,
		formatter: formatter,
	}
}

func NewIntType[T IntegerValue](name string, formatter func(v T) string) *Type {
	conv := intScalarConverter[T]{}
	return NewScalarType[T](name, KindInt, func(v uint64) string {
		return formatter(conv.ScalarToValue(v))
	})
}

func NewUintType[T IntegerValue](name string, formatter func(v T) string) *Type {
	conv := intScalarConverter[T]{}
	return NewScalarType[T](name, KindUint, func(v uint64) string {
		return formatter(conv.ScalarToValue(v))
	})
}

func NewFloatType[T FloatValue](name string, formatter func(v T) string) *Type {
	conv := floatScalarConverter[T]{}
	return NewScalarType[T](name, KindFloat, func(v uint64) string {
		return formatter(conv.ScalarToValue(v))
	})
}

var (
	TInt64 = NewIntType[int64]("int64", func(v int64) string {
		return strconv.FormatInt(v, 10)
	})
	TUint64 = NewUintType[uint64]("uint64", func(v uint64) string {
		return strconv.FormatUint(v, 10)
	})
	TUint64Hex = NewUintType[uint64]("uint64_hex", func(v uint64) string {
		return "0x" + strconv.FormatUint(v, 16)
	})
	TFloat64 = NewFloatType[float64]("float64", func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	})

	TTime = NewScalarType[time.Time]("time", KindTime, func(v uint64) string {
		return Uint64ToTime(v).UTC().Format(time.RFC3339)
	})

	TBool = NewScalarType[bool]("bool", KindBool, func(v uint64) string {
		switch v {
		case 0:
			return "false"
		case 1:
			return "true"
		default:
			return fmt.Sprintf("?bool(0x%x)", v)
		}
	})
)
