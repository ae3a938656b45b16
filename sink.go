package fieldset

import "time"

// Sink is the write capability for a single field of some model. Generated
// accessors return sinks; the caller sets values without knowing whether
// the writes land in live state or in a recorder.
type Sink[T any] interface {
	Set(value T)
}

// LeafSink is the untyped per-leaf write capability handed out by
// recorders. A recorder stores every value as a uint64 word; typed sinks
// are built by wrapping a LeafSink with one of the facade constructors
// below.
type LeafSink interface {
	SetWord(word uint64)
}

// Direct returns a sink that overwrites *p unconditionally. It is what
// live models hand out from their accessors, and what replay ultimately
// writes through.
func Direct[T any](p *T) Sink[T] {
	return directSink[T]{p}
}

type directSink[T any] struct{ p *T }

func (s directSink[T]) Set(value T) { *s.p = value }

func IntSink[T IntegerValue](leaf LeafSink) Sink[T] {
	return scalarSink[T]{leaf, intScalarConverter[T]{}}
}

func FloatSink[T FloatValue](leaf LeafSink) Sink[T] {
	return scalarSink[T]{leaf, floatScalarConverter[T]{}}
}

func BoolSink(leaf LeafSink) Sink[bool] {
	return scalarSink[bool]{leaf, boolScalarConverter{}}
}

func TimeSink(leaf LeafSink) Sink[time.Time] {
	return scalarSink[time.Time]{leaf, timeScalarConverter{}}
}

type scalarSink[T any] struct {
	leaf LeafSink
	conv ScalarConverter[T]
}

func (s scalarSink[T]) Set(value T) { s.leaf.SetWord(s.conv.ValueToScalar(value)) }
