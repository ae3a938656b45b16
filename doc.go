/*
Package fieldset records field mutations of hierarchical models as compact
change sequences, and replays them elsewhere.

A model's shape is described by a Schema: a named list of fields, each
either a leaf holding a single scalar value, or a nested sub-schema built
from another Schema. Callers mutate fields through Sinks handed out by
accessors, without knowing where the writes land. Depending on what stands
behind the sinks, the same mutation code either updates a live model in
place, or records changes into one of three recorder kinds:

1. OptRecorder, dense per-leaf storage: keeps the last value per field,
drains in declaration order, can be reset and reused.

2. BitRecorder, an append-only sequence that keeps the first write to each
field and drops re-writes.

3. IndexedRecorder, an append-only sequence that keeps first-write order
but last-written values.

Recorded changes are fed to another model, or another recorder, with
Replay, which dispatches each change through the target's Apply.

# Technical Details

**Words.**
All leaf values travel as uint64 words. Types (see Type) declare how words
are encoded and formatted: integers are converted, floats are stored as
IEEE bits, times as offset microseconds. This keeps recorder storage
uniform and writes allocation-free.

**Variance and flat leaf indices.**
Every schema knows its variance, the recursive count of its leaves. Leaves
are addressed by flat indices in declaration order, with nested sub-schemas
occupying contiguous ranges. Recorders allocate every per-leaf structure up
front, sized by the variance.

**Windows.**
A recorder is used through windows. The root window covers the whole
schema; Sub returns a window for a nested field that shares the root's
storage and append cursor but addresses only that field's leaf range. Guard
bits are windowed at bit granularity via bitset.View; slot tables and value
arrays are windowed by plain leaf offsets.

**Contract violations panic.**
Mixing schemas, writing through a foreign field handle, draining twice, or
writing after a drain are programming errors, not runtime conditions, so
they panic instead of returning errors. Malformed schema definitions are
rejected by Define before any recording starts.
*/
package fieldset
