// Package oracle provides concrete HashOracle implementations for the
// cuckoo filter packages. The core never hard-wires a particular hash
// family; it consumes anything satisfying Hasher.
package oracle

import (
	"hash/fnv"

	murmur "github.com/aviddiviner/go-murmur"
	"github.com/cespare/xxhash/v2"
)

// Hasher computes a well-distributed, deterministic 64-bit hash of an
// element. Implementations carry no per-filter state beyond their seed
// and may be shared across many filters.
type Hasher interface {
	Sum64(data []byte) uint64
}

// Murmur64 hashes with MurmurHash64A, the same hash the reference
// implementation's own filter uses to derive (index, fingerprint) pairs.
type Murmur64 struct {
	Seed uint64
}

// Sum64 implements Hasher.
func (m Murmur64) Sum64(data []byte) uint64 {
	return murmur.MurmurHash64A(data, m.Seed)
}

// FNV64 hashes with the standard library's FNV-1a, for callers that want
// a hash family distinct from Murmur64 without taking on another
// dependency (e.g. to exercise the partner-index math against a second
// avalanche profile in tests).
type FNV64 struct{}

// Sum64 implements Hasher.
func (FNV64) Sum64(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// XXHash64 hashes with xxHash, as used by the cuckoo filter in
// rishabhverma17/HyperCache. Offered as a third option so callers can
// compare false-positive behavior against a non-Murmur hash family.
type XXHash64 struct{}

// Sum64 implements Hasher.
func (XXHash64) Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Default returns the oracle used when a caller doesn't supply one: the
// same MurmurHash64A the reference filter's buildParams uses.
func Default() Hasher {
	return Murmur64{Seed: 0}
}
