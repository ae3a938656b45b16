package fieldset

import "iter"

// Applier accepts changes one at a time. Recorder windows are appliers;
// live models implement Applier in their generated veneer by dispatching
// on Change.Field and descending into nested models via Change.Sub.
type Applier interface {
	Apply(c Change)
}

// Replay feeds every change of a sequence into dst in order. Replaying a
// drained recorder onto a fresh model rebuilds the state the recorded
// writes would have produced; replaying onto another recorder re-records
// the changes under that recorder's policy.
func Replay(dst Applier, changes iter.Seq[Change]) {
	for c := range changes {
		dst.Apply(c)
	}
}
