package core

// golden64 is the 64-bit golden-ratio constant used to mix two hashes.
const golden64 = 0x9e3779b97f4a7c15

// HashInt64 hashes an int64 with the MurmurHash3 fmix64 finalizer.
//
// The identity function would be a valid hash for int64, but a poor one for
// bucketing near-sequential vertex numbers; the finalizer spreads low-entropy
// inputs across the whole 64-bit range.
// Complexity: O(1)
func HashInt64(x int64) uint64 {
	h := uint64(x)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33

	return h
}

// CombineHashes mixes two hash values into one. Same scheme as boost's
// 32-bit hash_combine, with a 64-bit magic number.
// Complexity: O(1)
func CombineHashes(h1, h2 uint64) uint64 {
	return h1 ^ (h2 + golden64 + (h1 << 6) + (h1 >> 2))
}

// Hash returns the hash value of the edge, acting on the normalized form.
// Complexity: O(1)
func (e UndirectedEdge) Hash() uint64 {
	return CombineHashes(HashInt64(int64(e.First)), HashInt64(int64(e.Second)))
}
