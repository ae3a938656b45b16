package fieldset

import "time"

// TimeOffsetMicros is the offset to Time.UnixMicro() used for stored time
// words, chosen such that time.Time{}.UnixMicro() = -TimeOffsetMicros. With
// this offset, a zero word corresponds to zero time instead of Unix epoch,
// and all representable times order correctly as unsigned integers.
const TimeOffsetMicros = 62_135_596_800_000_000

func TimeToUint64(t time.Time) uint64 {
	return uint64(t.UnixMicro()) + TimeOffsetMicros
}

func Uint64ToTime(u uint64) time.Time {
	return time.UnixMicro(int64(u) - TimeOffsetMicros)
}
