package searcher

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"knapdist/knapsack"
)

// StateKey is a canonical fingerprint of a subproblem: remaining capacity
// plus the set of items still available. It is independent of the inclusion
// order that reached the subproblem, which is what lets nodes merge across
// paths. A SHA-256 digest truncated to 128 bits keeps the key stable across
// runs and processes.
type StateKey [16]byte

// stateKey canonicalizes (capacity, available). available must already be in
// canonical order (ascending item ID).
func stateKey(capacity float64, available []knapsack.Item) StateKey {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(capacity))
	h.Write(buf[:])
	for _, item := range available {
		binary.BigEndian.PutUint64(buf[:], item.Fingerprint())
		h.Write(buf[:])
	}
	var key StateKey
	copy(key[:], h.Sum(nil))
	return key
}

// Fingerprint is the key truncated to 64 bits, for compact export.
func (k StateKey) Fingerprint() uint64 {
	return binary.BigEndian.Uint64(k[:8])
}

func (k StateKey) String() string {
	return hex.EncodeToString(k[:])
}
