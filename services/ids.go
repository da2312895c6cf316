package services

import "math/rand"

// AllocateID draws a uniformly random 32-bit identifier not present in
// existing, retrying on collision. The space is 2^32 against a tiny occupancy,
// so retries are effectively never needed. The caller passes the current key
// set of whichever collection the identifier is for; there is no global
// counter.
func AllocateID(rng *rand.Rand, existing map[uint32]struct{}) uint32 {
	for {
		id := uint32(rng.Int63())
		if _, taken := existing[id]; !taken {
			return id
		}
	}
}
