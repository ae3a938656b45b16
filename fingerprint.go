package fieldset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// computeFingerprint hashes the canonical shape of a schema: its name, its
// fields in declaration order, leaf type names and kinds, and the shapes of
// nested sub-schemas recursively. Two schemas defined identically hash the
// same; any rename, reorder or type change produces a different value.
func computeFingerprint(scm *Schema) uint64 {
	var hash xxhash.Digest
	hash.Reset()
	hashSchema(&hash, scm)
	return hash.Sum64()
}

func hashSchema(hash *xxhash.Digest, scm *Schema) {
	var buf [2]byte
	hashString(hash, scm.name)
	hashInt(hash, len(scm.fields))
	for _, f := range scm.fields {
		hashString(hash, f.name)
		if f.sub != nil {
			buf[0] = 1
			hash.Write(buf[:1])
			hashSchema(hash, f.sub)
		} else {
			buf[0] = 0
			buf[1] = byte(f.typ.kind)
			hash.Write(buf[:2])
			hashString(hash, f.typ.name)
		}
	}
}

func hashString(hash *xxhash.Digest, s string) {
	hashInt(hash, len(s))
	hash.WriteString(s)
}

func hashInt(hash *xxhash.Digest, n int) {
	var buf [binary.MaxVarintLen64]byte
	hash.Write(buf[:binary.PutUvarint(buf[:], uint64(n))])
}
